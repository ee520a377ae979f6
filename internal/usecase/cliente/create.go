package cliente

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
	"github.com/BruksfildServices01/gym-manager/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateCliente struct {
	repo     clienteDomain.Repository
	usuarios *services.UsuarioService
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCreateCliente(
	repo clienteDomain.Repository,
	usuarios *services.UsuarioService,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateCliente {
	if now == nil {
		now = timezone.Now
	}
	return &CreateCliente{
		repo:     repo,
		usuarios: usuarios,
		audit:    audit,
		now:      now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute da de alta un cliente en el gimnasio del admin que llama y le
// crea un login con nombre = contraseña = nombre del cliente. Todo ocurre
// en una transacción: si falla cualquier paso no queda nada guardado.
func (uc *CreateCliente) Execute(
	ctx context.Context,
	in dto.CrearClienteDTO,
	caller *models.Usuario,
) (*models.Cliente, error) {

	if caller == nil {
		return nil, httperr.New(http.StatusUnauthorized, "unauthenticated", "Usuario no autenticado")
	}

	var created *models.Cliente

	err := uc.repo.Transaction(ctx, func(tx clienteDomain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Gimnasio del admin que da el alta
		// --------------------------------------------------
		idGimnasio, err := tx.FindIDGimnasioByIDUsuario(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return clienteDomain.ErrCallerWithoutGym(caller.ID)
			}
			return err
		}

		// --------------------------------------------------
		// 2️⃣ Usuario: su id será el del cliente
		// --------------------------------------------------
		u, err := uc.usuarios.WithRepository(tx.Usuarios()).Create(ctx, dto.CrearUsuarioDTO{
			Username:   in.Nombre,
			Password:   in.Nombre,
			Rol:        models.RolCliente,
			IDGimnasio: &idGimnasio,
		})
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Cliente (gimnasio y fecha los pone el servidor)
		// --------------------------------------------------
		nuevo := dto.ToCliente(in)
		nuevo.ID = u.ID
		nuevo.IDGimnasio = idGimnasio
		nuevo.FechaInscripcion = timezone.FormatFecha(uc.now())

		if err := tx.Create(ctx, &nuevo); err != nil {
			return err
		}

		// --------------------------------------------------
		// 4️⃣ Comprobación posterior a la escritura
		// --------------------------------------------------
		saved, err := tx.FindByID(ctx, nuevo.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return clienteDomain.ErrCreationFailed(clienteDomain.ErrNotFound(nuevo.ID))
			}
			return err
		}

		created = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(ctx, audit.Event{
		IDGimnasio: created.IDGimnasio,
		IDUsuario:  audit.Ptr(caller.ID),
		Action:     audit.ActionClienteCreated,
		Entity:     audit.EntityCliente,
		EntityID:   audit.Ptr(created.ID),
	})

	log.Info().
		Uint("id_cliente", created.ID).
		Uint("id_gimnasio", created.IDGimnasio).
		Uint("admin", caller.ID).
		Msg("cliente created")

	return created, nil
}
