package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pedroQM1/MrService/internal/config"
	"github.com/pedroQM1/MrService/internal/credentials"
	"github.com/pedroQM1/MrService/internal/interaction"
	"github.com/pedroQM1/MrService/internal/middleware"
	"github.com/pedroQM1/MrService/internal/provider"
	"github.com/pedroQM1/MrService/internal/session"
)

// Handler drives the interactive account flows: password login, the
// cascading logout, and registration. Protocol work is delegated to
// the interaction service; credential checks to the credentials
// service.
type Handler struct {
	engine      interaction.Service
	returnURL   *interaction.ReturnURLValidator
	credentials *credentials.Service
	issuer      *session.Issuer
	terminators *provider.Registry
	cfg         *config.Config
}

func NewHandler(
	engine interaction.Service,
	returnURL *interaction.ReturnURLValidator,
	creds *credentials.Service,
	issuer *session.Issuer,
	terminators *provider.Registry,
	cfg *config.Config,
) *Handler {
	return &Handler{
		engine:      engine,
		returnURL:   returnURL,
		credentials: creds,
		issuer:      issuer,
		terminators: terminators,
		cfg:         cfg,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	r.GET("/account/login", h.LoginGet)
	r.POST("/account/login", h.LoginPost)
	r.GET("/account/logout", h.LogoutGet)
	r.POST("/account/logout", h.LogoutPost)
	r.GET("/account/register", h.RegisterGet)
	r.POST("/account/register", h.RegisterPost)
	r.GET("/account/session", middleware.GinRequireAuth(auth), h.SessionGet)
}
