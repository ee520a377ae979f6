package repository

import (
	"context"

	"gorm.io/gorm"

	gimnasioDomain "github.com/BruksfildServices01/gym-manager/internal/domain/gimnasio"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type GimnasioGormRepository struct {
	db *gorm.DB
}

func NewGimnasioGormRepository(db *gorm.DB) *GimnasioGormRepository {
	return &GimnasioGormRepository{db: db}
}

func (r *GimnasioGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Gimnasio, error) {

	var g models.Gimnasio
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

func (r *GimnasioGormRepository) Create(
	ctx context.Context,
	g *models.Gimnasio,
) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// Compile-time check
var _ gimnasioDomain.Repository = (*GimnasioGormRepository)(nil)
