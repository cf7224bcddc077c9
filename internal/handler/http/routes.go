package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)

		r.Post("/users", h.createUser)
	})

	// routes behind the bearer token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/posts", h.createPost)
		r.Put("/posts/{id}", h.updatePost)
		r.Delete("/posts/{id}", h.deletePost)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
