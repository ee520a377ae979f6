package cliente

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
)

type DeleteCliente struct {
	repo     clienteDomain.Repository
	usuarios *services.UsuarioService
	audit    *audit.Dispatcher
}

func NewDeleteCliente(
	repo clienteDomain.Repository,
	usuarios *services.UsuarioService,
	audit *audit.Dispatcher,
) *DeleteCliente {
	return &DeleteCliente{
		repo:     repo,
		usuarios: usuarios,
		audit:    audit,
	}
}

// Execute borra, en este orden y en una sola transacción, los registros
// horarios del cliente, el cliente y su usuario. Si el cliente no existe
// no se toca nada.
func (uc *DeleteCliente) Execute(
	ctx context.Context,
	id uint,
	actor *models.Usuario,
) error {

	var (
		borrado   *models.Cliente
		registros int64
	)

	err := uc.repo.Transaction(ctx, func(tx clienteDomain.Repository) error {
		c, err := tx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return clienteDomain.ErrNotFound(id)
			}
			return err
		}

		if registros, err = tx.Registros().DeleteByIDUsuario(ctx, id); err != nil {
			return err
		}

		if err := tx.Delete(ctx, c); err != nil {
			return err
		}

		if err := uc.usuarios.WithRepository(tx.Usuarios()).DeleteByID(ctx, id); err != nil {
			return err
		}

		borrado = c
		return nil
	})
	if err != nil {
		return err
	}

	var actorID *uint
	if actor != nil {
		actorID = audit.Ptr(actor.ID)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		IDGimnasio: borrado.IDGimnasio,
		IDUsuario:  actorID,
		Action:     audit.ActionClienteDeleted,
		Entity:     audit.EntityCliente,
		EntityID:   audit.Ptr(id),
		Metadata:   map[string]any{"registros_borrados": registros},
	})

	log.Info().Uint("id_cliente", id).Int64("registros", registros).Msg("cliente deleted")

	return nil
}
