package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	"github.com/BruksfildServices01/gym-manager/internal/domain/registro"
	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type ClienteGormRepository struct {
	db *gorm.DB
}

func NewClienteGormRepository(db *gorm.DB) *ClienteGormRepository {
	return &ClienteGormRepository{db: db}
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *ClienteGormRepository) FindAllByOrderByIDAsc(
	ctx context.Context,
) ([]models.Cliente, error) {

	var clientes []models.Cliente
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *ClienteGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var c models.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *ClienteGormRepository) Create(
	ctx context.Context,
	c *models.Cliente,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClienteGormRepository) Save(
	ctx context.Context,
	c *models.Cliente,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClienteGormRepository) Delete(
	ctx context.Context,
	c *models.Cliente,
) error {
	res := r.db.WithContext(ctx).Delete(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Gimnasio
// --------------------------------------------------

func (r *ClienteGormRepository) FindIDGimnasioByIDUsuario(
	ctx context.Context,
	idUsuario uint,
) (uint, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Select("id", "id_gimnasio").
		First(&u, idUsuario).Error; err != nil {
		return 0, notFound(err)
	}

	if u.IDGimnasio == nil || *u.IDGimnasio == 0 {
		return 0, domain.ErrNotFound
	}
	return *u.IDGimnasio, nil
}

// --------------------------------------------------
// Repositorios hermanos / transacción
// --------------------------------------------------

func (r *ClienteGormRepository) Usuarios() usuario.Repository {
	return NewUsuarioGormRepository(r.db)
}

func (r *ClienteGormRepository) Registros() registro.Repository {
	return NewRegistroGormRepository(r.db)
}

func (r *ClienteGormRepository) Transaction(
	ctx context.Context,
	fn func(tx clienteDomain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ClienteGormRepository{db: tx})
	})
}

// Compile-time check
var _ clienteDomain.Repository = (*ClienteGormRepository)(nil)
