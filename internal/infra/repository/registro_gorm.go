package repository

import (
	"context"

	"gorm.io/gorm"

	registroDomain "github.com/BruksfildServices01/gym-manager/internal/domain/registro"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type RegistroGormRepository struct {
	db *gorm.DB
}

func NewRegistroGormRepository(db *gorm.DB) *RegistroGormRepository {
	return &RegistroGormRepository{db: db}
}

func (r *RegistroGormRepository) Create(
	ctx context.Context,
	reg *models.RegistroHorario,
) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistroGormRepository) Update(
	ctx context.Context,
	reg *models.RegistroHorario,
) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *RegistroGormRepository) FindOpenByIDUsuario(
	ctx context.Context,
	idUsuario uint,
) (*models.RegistroHorario, error) {

	var reg models.RegistroHorario
	if err := r.db.WithContext(ctx).
		Where("id_usuario = ? AND salida IS NULL", idUsuario).
		Order("entrada DESC").
		First(&reg).Error; err != nil {
		return nil, notFound(err)
	}
	return &reg, nil
}

func (r *RegistroGormRepository) ListByIDUsuario(
	ctx context.Context,
	idUsuario uint,
) ([]models.RegistroHorario, error) {

	var regs []models.RegistroHorario
	if err := r.db.WithContext(ctx).
		Where("id_usuario = ?", idUsuario).
		Order("entrada DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *RegistroGormRepository) DeleteByIDUsuario(
	ctx context.Context,
	idUsuario uint,
) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id_usuario = ?", idUsuario).
		Delete(&models.RegistroHorario{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ registroDomain.Repository = (*RegistroGormRepository)(nil)
