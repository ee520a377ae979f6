package cliente

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type GetCliente struct {
	repo clienteDomain.Repository
}

func NewGetCliente(repo clienteDomain.Repository) *GetCliente {
	return &GetCliente{repo: repo}
}

func (uc *GetCliente) Execute(ctx context.Context, id uint) (*models.Cliente, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, clienteDomain.ErrNotFound(id)
		}
		return nil, err
	}
	return c, nil
}
