package gimnasio

import (
	"context"

	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Gimnasio, error)

	Create(ctx context.Context, g *models.Gimnasio) error
}
