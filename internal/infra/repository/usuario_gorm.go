package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	usuarioDomain "github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type UsuarioGormRepository struct {
	db *gorm.DB
}

func NewUsuarioGormRepository(db *gorm.DB) *UsuarioGormRepository {
	return &UsuarioGormRepository{db: db}
}

func (r *UsuarioGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UsuarioGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UsuarioGormRepository) Create(
	ctx context.Context,
	u *models.Usuario,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UsuarioGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Usuario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ usuarioDomain.Repository = (*UsuarioGormRepository)(nil)
