package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	notFound := New(http.StatusNotFound, "cliente_not_found", "Cliente con id 7 no encontrado")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"business", notFound, http.StatusNotFound, "cliente_not_found", "Cliente con id 7 no encontrado"},
		{"wrapped business", fmt.Errorf("tx: %w", notFound), http.StatusNotFound, "cliente_not_found", "Cliente con id 7 no encontrado"},
		{"code only", BusinessError{Code: "invalid_state", Status: http.StatusBadRequest}, http.StatusBadRequest, "invalid_state", "invalid_state"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error", "Error interno del servidor."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := New(http.StatusNotFound, "cliente_not_found", "no existe")
	err := Wrap(http.StatusInternalServerError, "failed_to_create_client", "fallo en alta", cause)

	assert.True(t, IsBusiness(err, "failed_to_create_client"))
	assert.True(t, errors.Is(err, cause))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}
