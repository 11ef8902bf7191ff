package handlers

import (
	"ItemKeeper/internal/auth"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	verifier auth.TokenVerifier,
	db Pinger,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()
	resp := responder{legacy: config.LegacyResponses, logger: logger}

	r.Use(chimw.Recoverer)
	r.Use(middleware.GzipWith(resp.invalidGzipBody))
	r.Use(middleware.WithLogging)
	r.NotFound(resp.notFoundRoute)
	r.MethodNotAllowed(resp.methodNotAllowed)

	requireAuth := middleware.WithAuth(verifier, resp.unauthorized)

	// Handlers
	itemHandler := NewItemHandler(itemService, logger, config)
	userItemsHandler := NewUserItemsHandler(itemService, logger, config.LegacyResponses)
	healthHandler := &HealthHandler{DB: db, Logger: logger}

	r.Get("/healthz", healthHandler.Health)
	r.Get("/openapi.yaml", OpenAPI)

	// Item routes
	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Get("/{id}", itemHandler.Get)
		r.With(requireAuth).Post("/", itemHandler.Create)
		r.With(requireAuth).Put("/{id}", itemHandler.Update)
		if config.StrictDelete {
			r.With(requireAuth).Delete("/{id}", itemHandler.Delete)
		} else {
			r.Delete("/{id}", itemHandler.Delete)
		}

		r.Mount("/users", userItemsHandler.Routes())
	})

	return &Handler{Router: r}
}
