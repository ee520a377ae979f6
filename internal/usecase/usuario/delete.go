package usuario

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	usuarioDomain "github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
)

type DeleteUsuario struct {
	clientes clienteDomain.Repository
	usuarios *services.UsuarioService
	audit    *audit.Dispatcher
}

func NewDeleteUsuario(
	clientes clienteDomain.Repository,
	usuarios *services.UsuarioService,
	audit *audit.Dispatcher,
) *DeleteUsuario {
	return &DeleteUsuario{clientes: clientes, usuarios: usuarios, audit: audit}
}

// Execute borra un usuario que no es cliente junto con sus registros
// horarios. Solo usuarios del gimnasio del actor; los usuarios de clientes
// se borran desde /api/cliente.
func (uc *DeleteUsuario) Execute(ctx context.Context, id uint, actor *models.Usuario) error {
	var borrado *models.Usuario

	err := uc.clientes.Transaction(ctx, func(tx clienteDomain.Repository) error {
		usuarios := uc.usuarios.WithRepository(tx.Usuarios())

		u, err := usuarios.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return usuarioDomain.ErrIDNotFound(id)
			}
			return err
		}

		if actor != nil && !usuarioDomain.SameGimnasio(u, actor.IDGimnasio) {
			return usuarioDomain.ErrOtherGimnasio()
		}

		if _, err := tx.FindByID(ctx, id); err == nil {
			return usuarioDomain.ErrHasCliente(id)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if _, err := tx.Registros().DeleteByIDUsuario(ctx, id); err != nil {
			return err
		}

		if err := usuarios.DeleteByID(ctx, id); err != nil {
			return err
		}

		borrado = u
		return nil
	})
	if err != nil {
		return err
	}

	var (
		idGimnasio uint
		actorID    *uint
	)
	if borrado.IDGimnasio != nil {
		idGimnasio = *borrado.IDGimnasio
	}
	if actor != nil {
		actorID = audit.Ptr(actor.ID)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		IDGimnasio: idGimnasio,
		IDUsuario:  actorID,
		Action:     audit.ActionUsuarioDeleted,
		Entity:     audit.EntityUsuario,
		EntityID:   audit.Ptr(id),
	})

	return nil
}
