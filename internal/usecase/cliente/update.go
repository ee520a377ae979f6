package cliente

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type UpdateCliente struct {
	repo  clienteDomain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCliente(
	repo clienteDomain.Repository,
	audit *audit.Dispatcher,
) *UpdateCliente {
	return &UpdateCliente{
		repo:  repo,
		audit: audit,
	}
}

// Execute reemplaza los campos editables del cliente id. El id, el
// gimnasio y la fecha de inscripción se conservan siempre.
func (uc *UpdateCliente) Execute(
	ctx context.Context,
	id uint,
	in dto.EditarClienteDTO,
	actor *models.Usuario,
) (*models.Cliente, error) {

	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, clienteDomain.ErrNotFound(id)
		}
		return nil, err
	}

	dto.ApplyEdit(c, in)

	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	var actorID *uint
	if actor != nil {
		actorID = audit.Ptr(actor.ID)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		IDGimnasio: c.IDGimnasio,
		IDUsuario:  actorID,
		Action:     audit.ActionClienteUpdated,
		Entity:     audit.EntityCliente,
		EntityID:   audit.Ptr(c.ID),
	})

	return c, nil
}
