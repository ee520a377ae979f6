package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/middleware"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

// pathID lee :id. Si no es un entero positivo responde 400 y devuelve false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return 0, false
	}
	return uint(id), true
}

// caller devuelve el principal o responde 401.
func caller(c *gin.Context) (*models.Usuario, bool) {
	u := middleware.CurrentUser(c)
	if u == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Usuario no autenticado.")
		return nil, false
	}
	return u, true
}
