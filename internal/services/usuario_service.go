package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

type UsuarioService struct {
	repo       usuario.Repository
	bcryptCost int
}

func NewUsuarioService(repo usuario.Repository, bcryptCost int) *UsuarioService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UsuarioService{repo: repo, bcryptCost: bcryptCost}
}

// WithRepository devuelve una copia del servicio que trabaja sobre repo,
// típicamente un repositorio ligado a una transacción.
func (s *UsuarioService) WithRepository(repo usuario.Repository) *UsuarioService {
	return &UsuarioService{repo: repo, bcryptCost: s.bcryptCost}
}

// Create guarda el usuario con la contraseña hasheada. No comprueba antes
// si el nombre existe: el índice único lo rechaza.
func (s *UsuarioService) Create(ctx context.Context, in dto.CrearUsuarioDTO) (*models.Usuario, error) {
	rol, err := usuario.NormalizeRol(in.Rol)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.Usuario{
		Username:     in.Username,
		PasswordHash: string(hashed),
		Rol:          rol,
		IDGimnasio:   in.IDGimnasio,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, usuario.ErrUsernameTaken(in.Username)
		}
		return nil, fmt.Errorf("create usuario: %w", err)
	}

	log.Debug().Uint("id_usuario", u.ID).Str("username", u.Username).Msg("usuario created")
	return u, nil
}

func (s *UsuarioService) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UsuarioService) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UsuarioService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return usuario.ErrIDNotFound(id)
		}
		return fmt.Errorf("delete usuario %d: %w", id, err)
	}
	return nil
}

// Authenticate compara la contraseña con el hash guardado. Usuario
// inexistente y contraseña errónea dan el mismo error.
func (s *UsuarioService) Authenticate(ctx context.Context, username, password string) (*models.Usuario, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, usuario.ErrInvalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, usuario.ErrInvalidCredentials()
	}

	return u, nil
}
