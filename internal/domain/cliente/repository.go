package cliente

import (
	"context"

	"github.com/BruksfildServices01/gym-manager/internal/domain/registro"
	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type Repository interface {
	// -------- Cliente --------
	FindAllByOrderByIDAsc(ctx context.Context) ([]models.Cliente, error)

	FindByID(ctx context.Context, id uint) (*models.Cliente, error)

	Create(ctx context.Context, c *models.Cliente) error

	Save(ctx context.Context, c *models.Cliente) error

	Delete(ctx context.Context, c *models.Cliente) error

	// -------- Gimnasio --------
	FindIDGimnasioByIDUsuario(ctx context.Context, idUsuario uint) (uint, error)

	// -------- Repositorios ligados a la misma conexión / transacción --------
	Usuarios() usuario.Repository

	Registros() registro.Repository

	// Transaction ejecuta fn con un Repository ligado a una transacción.
	// Si fn devuelve error se hace rollback de todo.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
