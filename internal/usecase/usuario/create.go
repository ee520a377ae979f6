package usuario

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	usuarioDomain "github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
)

type CreateUsuario struct {
	usuarios *services.UsuarioService
	audit    *audit.Dispatcher
}

func NewCreateUsuario(usuarios *services.UsuarioService, audit *audit.Dispatcher) *CreateUsuario {
	return &CreateUsuario{usuarios: usuarios, audit: audit}
}

// Execute crea un usuario suelto en el gimnasio del admin que llama. Un
// id_gimnasio distinto en el cuerpo se rechaza.
func (uc *CreateUsuario) Execute(
	ctx context.Context,
	in dto.CrearUsuarioDTO,
	caller *models.Usuario,
) (*models.Usuario, error) {

	if caller == nil {
		return nil, httperr.New(http.StatusUnauthorized, "unauthenticated", "Usuario no autenticado")
	}

	// Un admin solo da de alta usuarios en su propio gimnasio.
	if in.IDGimnasio != nil && !usuarioDomain.SameGimnasio(caller, in.IDGimnasio) {
		return nil, usuarioDomain.ErrOtherGimnasio()
	}
	in.IDGimnasio = caller.IDGimnasio

	rol, err := usuarioDomain.NormalizeRol(in.Rol)
	if err != nil {
		return nil, err
	}
	in.Rol = rol

	u, err := uc.usuarios.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	var idGimnasio uint
	if u.IDGimnasio != nil {
		idGimnasio = *u.IDGimnasio
	}

	uc.audit.Dispatch(ctx, audit.Event{
		IDGimnasio: idGimnasio,
		IDUsuario:  audit.Ptr(caller.ID),
		Action:     audit.ActionUsuarioCreated,
		Entity:     audit.EntityUsuario,
		EntityID:   audit.Ptr(u.ID),
		Metadata:   map[string]any{"username": u.Username, "rol": u.Rol},
	})

	return u, nil
}
