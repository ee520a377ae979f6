package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
