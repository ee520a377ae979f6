package services

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

// UserDetailsService resuelve el principal autenticado a partir del
// nombre de usuario o del id que viaja en el token.
type UserDetailsService struct {
	usuarios *UsuarioService
}

func NewUserDetailsService(usuarios *UsuarioService) *UserDetailsService {
	return &UserDetailsService{usuarios: usuarios}
}

func (s *UserDetailsService) LoadUserByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	u, err := s.usuarios.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, usuario.ErrUsernameNotFound(username)
	}
	return u, err
}

func (s *UserDetailsService) LoadUserByID(ctx context.Context, id uint) (*models.Usuario, error) {
	u, err := s.usuarios.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, usuario.ErrIDNotFound(id)
	}
	return u, err
}
