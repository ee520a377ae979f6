package registro

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	registroDomain "github.com/BruksfildServices01/gym-manager/internal/domain/registro"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

// ======================================================
// ENTRADA
// ======================================================

type RegistrarEntrada struct {
	repo registroDomain.Repository
	now  func() time.Time
}

func NewRegistrarEntrada(repo registroDomain.Repository, now func() time.Time) *RegistrarEntrada {
	if now == nil {
		now = time.Now
	}
	return &RegistrarEntrada{repo: repo, now: now}
}

// Execute abre un registro. Solo puede haber uno abierto por usuario.
func (uc *RegistrarEntrada) Execute(ctx context.Context, idUsuario uint) (*models.RegistroHorario, error) {
	open, err := uc.repo.FindOpenByIDUsuario(ctx, idUsuario)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if registroDomain.IsOpen(open) {
		return nil, registroDomain.ErrAlreadyOpen()
	}

	r := &models.RegistroHorario{
		IDUsuario: idUsuario,
		Entrada:   uc.now(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		// Otra entrada concurrente ganó el índice idx_registro_abierto
		if httperr.IsUniqueViolation(err) {
			return nil, registroDomain.ErrAlreadyOpen()
		}
		return nil, err
	}

	log.Debug().Uint("id_usuario", idUsuario).Uint("id_registro", r.ID).Msg("entrada registrada")
	return r, nil
}

// ======================================================
// SALIDA
// ======================================================

type RegistrarSalida struct {
	repo registroDomain.Repository
	now  func() time.Time
}

func NewRegistrarSalida(repo registroDomain.Repository, now func() time.Time) *RegistrarSalida {
	if now == nil {
		now = time.Now
	}
	return &RegistrarSalida{repo: repo, now: now}
}

func (uc *RegistrarSalida) Execute(ctx context.Context, idUsuario uint) (*models.RegistroHorario, error) {
	open, err := uc.repo.FindOpenByIDUsuario(ctx, idUsuario)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, registroDomain.ErrNoneOpen()
		}
		return nil, err
	}

	if err := registroDomain.Close(open, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, open); err != nil {
		return nil, err
	}
	return open, nil
}

// ======================================================
// LISTADO
// ======================================================

type ListRegistros struct {
	repo registroDomain.Repository
}

func NewListRegistros(repo registroDomain.Repository) *ListRegistros {
	return &ListRegistros{repo: repo}
}

func (uc *ListRegistros) Execute(ctx context.Context, idUsuario uint) ([]models.RegistroHorario, error) {
	regs, err := uc.repo.ListByIDUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []models.RegistroHorario{}
	}
	return regs, nil
}
