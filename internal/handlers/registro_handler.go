package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/httpresp"
	ucRegistro "github.com/BruksfildServices01/gym-manager/internal/usecase/registro"
)

type RegistroHandler struct {
	entrada *ucRegistro.RegistrarEntrada
	salida  *ucRegistro.RegistrarSalida
	list    *ucRegistro.ListRegistros
}

func NewRegistroHandler(
	entrada *ucRegistro.RegistrarEntrada,
	salida *ucRegistro.RegistrarSalida,
	list *ucRegistro.ListRegistros,
) *RegistroHandler {
	return &RegistroHandler{entrada: entrada, salida: salida, list: list}
}

func (h *RegistroHandler) Entrada(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	r, err := h.entrada.Execute(c.Request.Context(), u.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *RegistroHandler) Salida(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	r, err := h.salida.Execute(c.Request.Context(), u.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RegistroHandler) ListMe(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	regs, err := h.list.Execute(c.Request.Context(), u.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, regs)
}
