package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/ccrayp/portfolio-api/internal/api/middleware"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
)

// idParam restricts {id} to integers. Negative ids still route so the
// handler can answer 400.
const idParam = "{id:-?[0-9]+}"

// RouterDeps are the handlers and services the router is assembled from.
type RouterDeps struct {
	Auth         *AuthHandler
	Posts        *PostHandler
	Projects     *ProjectHandler
	Technologies *TechnologyHandler
	JWTService   auth.JWTService
	Logger       *slog.Logger
}

// NewRouter creates the application router with all routes and middleware.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Set before any Route call so mounted subrouters inherit them.
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(d.Logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(d.JWTService)

	r.HandleFunc("/", Root)
	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/ping", Ping)
		r.Post("/login", d.Auth.Login)
		r.Get("/post/list", d.Posts.List)
		r.Get("/project/list", d.Projects.List)
		r.Get("/technology/list", d.Technologies.List)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/protected", d.Auth.Protected)

			r.Post("/post/new", d.Posts.Create)
			r.Put("/post/update/"+idParam, d.Posts.Update)
			r.Get("/post/"+idParam, d.Posts.Get)
			r.Delete("/post/delete/"+idParam, d.Posts.Delete)

			r.Post("/project/new", d.Projects.Create)
			r.Put("/project/update/"+idParam, d.Projects.Update)
			r.Get("/project/"+idParam, d.Projects.Get)
			r.Delete("/project/delete/"+idParam, d.Projects.Delete)

			r.Post("/technology/new", d.Technologies.Create)
			r.Put("/technology/update/"+idParam, d.Technologies.Update)
			r.Get("/technology/"+idParam, d.Technologies.Get)
			r.Get("/technology/list/{group}", d.Technologies.ListByGroup)
			r.Delete("/technology/delete/"+idParam, d.Technologies.Delete)
		})
	})

	return r
}
