package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dtroode/grocery-server/docs" // registers the OpenAPI document
	"github.com/dtroode/grocery-server/internal/api/http/handler"
	"github.com/dtroode/grocery-server/internal/api/http/middleware"
	"github.com/dtroode/grocery-server/internal/config"
	"github.com/dtroode/grocery-server/internal/logger"
	"github.com/dtroode/grocery-server/internal/model"
)

// Router wires HTTP routes to handlers and middleware.
type Router struct {
	authService    handler.AuthService
	groceryService handler.GroceryService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	pinger         handler.Pinger
	cors           config.CORS
	exportEnabled  bool
	logger         *logger.Logger
}

// Option customizes a Router.
type Option func(*Router)

// WithCORS sets the cross-origin policy applied to every route.
func WithCORS(cfg config.CORS) Option {
	return func(r *Router) {
		r.cors = cfg
	}
}

// WithExport registers POST /grocery/export.
func WithExport() Option {
	return func(r *Router) {
		r.exportEnabled = true
	}
}

// New creates a new HTTP Router.
func New(
	authService handler.AuthService,
	groceryService handler.GroceryService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	pinger handler.Pinger,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		authService:    authService,
		groceryService: groceryService,
		tokenService:   tokenService,
		contextManager: contextManager,
		pinger:         pinger,
		logger:         logger,
		cors: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds the handler tree.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)

	r.registerHealthRoutes(mux)
	r.registerAuthRoutes(mux)

	mux.Route("/grocery", func(gr chi.Router) {
		gr.Use(authenticate.Handle)
		r.registerGroceryRoutes(gr)
	})

	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: r.cors.AllowedOrigins,
		AllowedMethods: r.cors.AllowedMethods,
		AllowedHeaders: r.cors.AllowedHeaders,
	})

	return c.Handler(mux)
}

func (r *Router) registerHealthRoutes(mux chi.Router) {
	h := handler.NewHealth(r.pinger)
	mux.Get("/", h.Root)
	mux.Get("/healthz", h.HealthCheck)
	mux.Get("/livez", h.LivenessCheck)
	mux.Get("/readyz", h.ReadinessCheck)
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	h := handler.NewAuth(r.authService, r.logger)
	for _, prefix := range []string{"", "/user"} {
		mux.Post(prefix+"/register", h.Register)
		mux.Post(prefix+"/login", h.Login)
	}
}

func (r *Router) registerGroceryRoutes(gr chi.Router) {
	h := handler.NewGrocery(r.groceryService, r.contextManager, r.logger)
	gr.Get("/", h.List)
	gr.Post("/", h.Create)
	if r.exportEnabled {
		gr.Post("/export", h.Export)
	}
	gr.Put("/{id}", h.Update)
	gr.Delete("/{id}", h.Delete)
}
