package domain

import "errors"

// ErrNotFound lo devuelven los repositorios cuando la fila no existe.
var ErrNotFound = errors.New("record not found")
