package registro

import (
	"context"

	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.RegistroHorario) error

	Update(ctx context.Context, r *models.RegistroHorario) error

	FindOpenByIDUsuario(ctx context.Context, idUsuario uint) (*models.RegistroHorario, error)

	ListByIDUsuario(ctx context.Context, idUsuario uint) ([]models.RegistroHorario, error)

	DeleteByIDUsuario(ctx context.Context, idUsuario uint) (int64, error)
}
