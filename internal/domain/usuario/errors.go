package usuario

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

const (
	CodeNotFound        = "user_not_found"
	CodeHasCliente      = "usuario_has_cliente"
	CodeInvalidPassword = "invalid_credentials"
	CodeDuplicate       = "username_already_exists"
	CodeInvalidRol      = "invalid_rol"
	CodeOtherGimnasio   = "forbidden_gimnasio"
)

func ErrUsernameNotFound(username string) error {
	return httperr.New(
		http.StatusNotFound,
		CodeNotFound,
		fmt.Sprintf("Usuario %s no encontrado", username),
	)
}

func ErrIDNotFound(id uint) error {
	return httperr.New(
		http.StatusNotFound,
		CodeNotFound,
		fmt.Sprintf("Usuario con id %d no encontrado", id),
	)
}

func ErrHasCliente(id uint) error {
	return httperr.New(
		http.StatusConflict,
		CodeHasCliente,
		fmt.Sprintf("El usuario %d pertenece a un cliente; bórralo desde /api/cliente/%d", id, id),
	)
}

func ErrInvalidCredentials() error {
	return httperr.New(http.StatusUnauthorized, CodeInvalidPassword, "Credenciales inválidas")
}

func ErrUsernameTaken(username string) error {
	return httperr.New(
		http.StatusConflict,
		CodeDuplicate,
		fmt.Sprintf("Ya existe un usuario con nombre %q", username),
	)
}

func ErrInvalidRol(rol string) error {
	return httperr.New(
		http.StatusBadRequest,
		CodeInvalidRol,
		fmt.Sprintf("Rol %q no válido (admin o cliente)", rol),
	)
}

func ErrOtherGimnasio() error {
	return httperr.New(
		http.StatusForbidden,
		CodeOtherGimnasio,
		"El usuario pertenece a otro gimnasio",
	)
}

// NormalizeRol acepta admin o cliente sin distinguir mayúsculas. Vacío =
// cliente.
func NormalizeRol(rol string) (string, error) {
	switch r := strings.ToLower(strings.TrimSpace(rol)); r {
	case "":
		return models.RolCliente, nil
	case models.RolAdmin, models.RolCliente:
		return r, nil
	default:
		return "", ErrInvalidRol(rol)
	}
}

// SameGimnasio indica si u pertenece al gimnasio idGimnasio.
func SameGimnasio(u *models.Usuario, idGimnasio *uint) bool {
	if u == nil || u.IDGimnasio == nil || idGimnasio == nil {
		return false
	}
	return *u.IDGimnasio == *idGimnasio
}
