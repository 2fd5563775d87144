package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroQM1/MrService/internal/config"
	"github.com/pedroQM1/MrService/internal/credentials"
	"github.com/pedroQM1/MrService/internal/handler"
	"github.com/pedroQM1/MrService/internal/identity"
	"github.com/pedroQM1/MrService/internal/interaction"
	"github.com/pedroQM1/MrService/internal/logger"
	"github.com/pedroQM1/MrService/internal/middleware"
	"github.com/pedroQM1/MrService/internal/provider"
	provideroidc "github.com/pedroQM1/MrService/internal/provider/oidc"
	"github.com/pedroQM1/MrService/internal/seed"
	"github.com/pedroQM1/MrService/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := identity.NewPostgresStore(infra.DB)

	// seed before the server accepts any request
	seed.New(userStore, &cfg).Seed(ctx)

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	issuer := session.NewIssuer(sessionStore)
	creds := credentials.NewService(userStore)

	engine := interaction.NewInMemoryService("/", interaction.DefaultClients()...)
	returnURL := interaction.NewReturnURLValidator(engine)

	terminators := setupTerminators(ctx, cfg)

	accountHandler := handler.NewHandler(
		engine,
		returnURL,
		creds,
		issuer,
		terminators,
		&cfg,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.GinResolveSession(authMiddleware))
	router.SetHTMLTemplate(handler.Templates())

	// ----------------------------
	// Routes
	// ----------------------------

	accountHandler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", nil)
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

// setupTerminators builds the federated sign-out registry. A provider
// that fails discovery is logged and left unregistered; logout then
// treats it as a missing terminator.
func setupTerminators(ctx context.Context, cfg config.Config) *provider.Registry {
	if cfg.OIDCProviderScheme == "" {
		return provider.NewRegistry()
	}

	t, err := provideroidc.New(ctx, cfg.OIDCProviderScheme, cfg.OIDCIssuer, cfg.OIDCClientID)
	if err != nil {
		logger.Error("failed to init oidc terminator", map[string]any{
			"scheme": cfg.OIDCProviderScheme,
			"error":  err.Error(),
		})
		return provider.NewRegistry()
	}

	return provider.NewRegistry(t)
}
