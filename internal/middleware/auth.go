package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-manager/internal/auth"
	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

const (
	ContextUsuario   = "usuario"
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextRequestID = "request_id"
)

// PrincipalLoader resuelve el usuario que viaja en el token.
type PrincipalLoader interface {
	LoadUserByID(ctx context.Context, id uint) (*models.Usuario, error)
}

func AuthMiddleware(tokens *auth.TokenIssuer, users PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Falta la cabecera Authorization")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabecera Authorization mal formada")
			c.Abort()
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido o caducado")
			c.Abort()
			return
		}

		u, err := users.LoadUserByID(c.Request.Context(), userID)
		if err != nil {
			if httperr.IsBusiness(err, usuario.CodeNotFound) {
				httperr.Unauthorized(c, usuario.CodeNotFound, err.Error())
				c.Abort()
				return
			}
			httperr.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUsuario, u)
		c.Set(ContextUserID, u.ID)
		c.Set(ContextUserRole, u.Rol)

		c.Next()
	}
}

// RequireAdmin va siempre detrás de AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			httperr.Unauthorized(c, "user_not_in_context", "Usuario no autenticado")
			c.Abort()
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{
				Code:    "forbidden",
				Message: "No tienes permiso para esta operación",
			})
			return
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) *models.Usuario {
	v, ok := c.Get(ContextUsuario)
	if !ok {
		return nil
	}
	u, _ := v.(*models.Usuario)
	return u
}
