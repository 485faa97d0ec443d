package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/avdeenkov/shopview/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the storefront API.
//
// Routes:
//
//	POST /auth/login  → authHandler.Login
//	GET  /products    → productHandler.List
//	POST /users/add   → authHandler.Register
//
// The product listing is public, matching the upstream service this API
// mirrors; only the paths and payload shapes are contractual.
func NewRouter(
	authHandler *AuthHandler,
	productHandler *ProductHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/products", productHandler.List)

	// Only allow JSON bodies on the mutating endpoints
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))
		r.Post("/auth/login", authHandler.Login)
		r.Post("/users/add", authHandler.Register)
	})

	return r
}
