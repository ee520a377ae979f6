package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/httpresp"
	"github.com/BruksfildServices01/gym-manager/internal/middleware"
	ucUsuario "github.com/BruksfildServices01/gym-manager/internal/usecase/usuario"
)

type UsuarioHandler struct {
	create *ucUsuario.CreateUsuario
	delete *ucUsuario.DeleteUsuario
}

func NewUsuarioHandler(create *ucUsuario.CreateUsuario, del *ucUsuario.DeleteUsuario) *UsuarioHandler {
	return &UsuarioHandler{create: create, delete: del}
}

func (h *UsuarioHandler) GetMe(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.ToUsuarioDTO(u))
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CrearUsuarioDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), req, u)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.ToUsuarioDTO(created))
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
