package cliente

import (
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/gym-manager/internal/httperr"
)

const (
	CodeNotFound         = "cliente_not_found"
	CodeNoClientes       = "no_clientes"
	CodeCreationFailed   = "failed_to_create_client"
	CodeCallerWithoutGym = "caller_without_gym"
)

func ErrNotFound(id uint) error {
	return httperr.New(
		http.StatusNotFound,
		CodeNotFound,
		fmt.Sprintf("Cliente con id %d no encontrado", id),
	)
}

func ErrEmpty() error {
	return httperr.New(http.StatusNotFound, CodeNoClientes, "No hay clientes registrados")
}

// ErrCreationFailed envuelve la causa (normalmente ErrNotFound) cuando la
// comprobación posterior al alta no encuentra el cliente.
func ErrCreationFailed(cause error) error {
	return httperr.Wrap(
		http.StatusInternalServerError,
		CodeCreationFailed,
		"Fallo en el alta del cliente",
		cause,
	)
}

func ErrCallerWithoutGym(idUsuario uint) error {
	return httperr.New(
		http.StatusForbidden,
		CodeCallerWithoutGym,
		fmt.Sprintf("El usuario %d no está asociado a ningún gimnasio", idUsuario),
	)
}
