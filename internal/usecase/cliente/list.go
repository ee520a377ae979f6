package cliente

import (
	"context"

	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
)

type ListClientes struct {
	repo clienteDomain.Repository
}

func NewListClientes(repo clienteDomain.Repository) *ListClientes {
	return &ListClientes{repo: repo}
}

// Execute devuelve todos los clientes por id ascendente. Una lista vacía
// es un error NotFound, no un 200 vacío.
func (uc *ListClientes) Execute(ctx context.Context) ([]dto.InfoClienteDTO, error) {
	clientes, err := uc.repo.FindAllByOrderByIDAsc(ctx)
	if err != nil {
		return nil, err
	}

	if len(clientes) == 0 {
		return nil, clienteDomain.ErrEmpty()
	}

	return dto.ToInfoClientes(clientes), nil
}
