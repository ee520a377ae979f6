package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// BusinessError es un error de dominio con código estable y el status HTTP
// al que se traduce. Cause permite encadenar (errors.Is / errors.As).
type BusinessError struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Cause
}

func New(status int, code, message string) error {
	return BusinessError{Code: code, Message: message, Status: status}
}

func Wrap(status int, code, message string, cause error) error {
	return BusinessError{Code: code, Message: message, Status: status, Cause: cause}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

const pgUniqueViolation = "23505"

// IsUniqueViolation reconoce claves duplicadas tanto traducidas por gorm
// como devueltas directamente por pgx.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
