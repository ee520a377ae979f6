package usuario

import (
	"context"

	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Usuario, error)

	FindByUsername(ctx context.Context, username string) (*models.Usuario, error)

	Create(ctx context.Context, u *models.Usuario) error

	// DeleteByID devuelve domain.ErrNotFound si no se borró ninguna fila.
	DeleteByID(ctx context.Context, id uint) error
}
