package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-manager/internal/domain"
	"github.com/BruksfildServices01/gym-manager/internal/domain/gimnasio"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/httpresp"
)

type GimnasioHandler struct {
	repo gimnasio.Repository
}

func NewGimnasioHandler(repo gimnasio.Repository) *GimnasioHandler {
	return &GimnasioHandler{repo: repo}
}

func (h *GimnasioHandler) GetMe(c *gin.Context) {
	u, ok := caller(c)
	if !ok {
		return
	}

	if u.IDGimnasio == nil {
		httperr.NotFound(c, "gimnasio_not_found", "Gimnasio no encontrado.")
		return
	}

	g, err := h.repo.FindByID(c.Request.Context(), *u.IDGimnasio)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "gimnasio_not_found", "Gimnasio no encontrado.")
			return
		}
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, g)
}
