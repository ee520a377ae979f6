package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/httpresp"
	"github.com/BruksfildServices01/gym-manager/internal/middleware"
	ucCliente "github.com/BruksfildServices01/gym-manager/internal/usecase/cliente"
)

// ======================================================
// HANDLER
// ======================================================

type ClienteHandler struct {
	list   *ucCliente.ListClientes
	get    *ucCliente.GetCliente
	create *ucCliente.CreateCliente
	update *ucCliente.UpdateCliente
	delete *ucCliente.DeleteCliente
}

func NewClienteHandler(
	list *ucCliente.ListClientes,
	get *ucCliente.GetCliente,
	create *ucCliente.CreateCliente,
	update *ucCliente.UpdateCliente,
	del *ucCliente.DeleteCliente,
) *ClienteHandler {
	return &ClienteHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
	}
}

// ======================================================
// READ
// ======================================================

func (h *ClienteHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cli, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, cli)
}

func (h *ClienteHandler) GetMe(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	cli, err := h.get.Execute(c.Request.Context(), u.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, cli)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClienteHandler) Create(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CrearClienteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	cli, err := h.create.Execute(c.Request.Context(), req, u)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, cli)
}

// ======================================================
// UPDATE
// ======================================================

// Update reemplaza el registro del propio usuario.
func (h *ClienteHandler) Update(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}
	h.replace(c, u.ID)
}

func (h *ClienteHandler) UpdateByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.replace(c, id)
}

func (h *ClienteHandler) replace(c *gin.Context, id uint) {
	var req dto.EditarClienteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	cli, err := h.update.Execute(c.Request.Context(), id, req, middleware.CurrentUser(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, cli)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClienteHandler) Delete(c *gin.Context) {
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
