package audit

import (
	"context"

	"github.com/rs/zerolog/log"
)

const (
	ActionClienteCreated = "cliente_created"
	ActionClienteUpdated = "cliente_updated"
	ActionClienteDeleted = "cliente_deleted"
	ActionUsuarioCreated = "usuario_created"
	ActionUsuarioDeleted = "usuario_deleted"

	EntityCliente = "cliente"
	EntityUsuario = "usuario"
)

type Event struct {
	IDGimnasio uint
	IDUsuario  *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher escribe la auditoría después del commit. Un fallo aquí se
// registra pero nunca rompe la petición.
type Dispatcher struct {
	logger *Logger
}

func NewDispatcher(logger *Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil || d.logger == nil {
		return
	}

	if err := d.logger.Log(ctx, ev); err != nil {
		log.Warn().Err(err).
			Str("action", ev.Action).
			Str("entity", ev.Entity).
			Msg("audit write failed")
	}
}

func Ptr(id uint) *uint {
	return &id
}
