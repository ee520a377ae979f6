package registro

import (
	"net/http"
	"time"

	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

const (
	CodeAlreadyOpen = "registro_already_open"
	CodeNoneOpen    = "registro_not_open"
)

func ErrAlreadyOpen() error {
	return httperr.New(http.StatusConflict, CodeAlreadyOpen, "Ya hay una entrada abierta")
}

func ErrNoneOpen() error {
	return httperr.New(http.StatusNotFound, CodeNoneOpen, "No hay ninguna entrada abierta")
}

func IsOpen(r *models.RegistroHorario) bool {
	return r != nil && r.Salida == nil
}

// Close marca la salida. La salida nunca queda antes de la entrada.
func Close(r *models.RegistroHorario, now time.Time) error {
	if !IsOpen(r) {
		return ErrNoneOpen()
	}
	if now.Before(r.Entrada) {
		now = r.Entrada
	}
	r.Salida = &now
	return nil
}
