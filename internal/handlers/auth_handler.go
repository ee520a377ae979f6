package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/gym-manager/internal/auth"
	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/ratelimit"
	"github.com/BruksfildServices01/gym-manager/internal/services"
)

type AuthHandler struct {
	usuarios *services.UsuarioService
	tokens   *auth.TokenIssuer
	limiter  ratelimit.Limiter
}

func NewAuthHandler(
	usuarios *services.UsuarioService,
	tokens *auth.TokenIssuer,
	limiter ratelimit.Limiter,
) *AuthHandler {
	return &AuthHandler{usuarios: usuarios, tokens: tokens, limiter: limiter}
}

// --------- Responses ---------

type LoginResponse struct {
	Token   string         `json:"token"`
	Usuario dto.UsuarioDTO `json:"usuario"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ctx := c.Request.Context()
	key := ratelimit.Key(strings.ToLower(strings.TrimSpace(req.Username)), c.ClientIP())

	// Si el contador no responde se deja pasar: el login no depende de redis.
	allowed, err := h.limiter.Allow(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("login limiter unavailable")
		allowed = true
	}
	if !allowed {
		httperr.TooManyRequests(c, "too_many_attempts", "Demasiados intentos. Prueba más tarde.")
		return
	}

	u, err := h.usuarios.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, usuario.CodeInvalidPassword) {
			if ferr := h.limiter.Fail(ctx, key); ferr != nil {
				log.Warn().Err(ferr).Msg("login limiter unavailable")
			}
		}
		httperr.FromError(c, err)
		return
	}

	if err := h.limiter.Reset(ctx, key); err != nil {
		log.Warn().Err(err).Msg("login limiter unavailable")
	}

	token, err := h.tokens.Generate(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Usuario: dto.ToUsuarioDTO(u),
	})
}
