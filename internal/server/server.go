// Package server is the JSON presentation layer over the application
// controller.
//
// Every mutating endpoint responds with the fresh render view, so a
// thin client can treat each request as one UI event followed by one
// re-render. Destructive admin endpoints (category and user deletion)
// demand an explicit confirm=true query parameter; without it the
// request never reaches the controller.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/roach88/quickcart/internal/app"
)

// Server serves the storefront API.
type Server struct {
	ctrl *app.Controller
}

// New creates a server over the given controller.
func New(ctrl *app.Controller) *Server {
	return &Server{ctrl: ctrl}
}

// Router builds the chi router with logging and CORS for local
// single-page-app development.
func (s *Server) Router() *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.Logger)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5500", "http://localhost:3000", "http://127.0.0.1:5500", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Get("/view", s.handleView)

	mux.Route("/session", func(sr chi.Router) {
		sr.Post("/login", s.handleLogin)
		sr.Post("/register", s.handleRegister)
		sr.Post("/logout", s.handleLogout)
	})

	mux.Post("/tabs/select", s.handleSelectTab)
	mux.Post("/categories/select", s.handleSelectCategory)

	mux.Route("/cart", func(sr chi.Router) {
		sr.Post("/items", s.handleAddToCart)
		sr.Patch("/items/{productID}", s.handleUpdateQuantity)
		sr.Delete("/items/{productID}", s.handleRemoveFromCart)
		sr.Post("/close", s.handleCloseCart)
	})

	mux.Post("/delivery", s.handleSetDelivery)
	mux.Post("/checkout", s.handleCheckout)

	mux.Route("/admin", func(sr chi.Router) {
		sr.Post("/products", s.handleAddProduct)
		sr.Delete("/products/{productID}", s.handleDeleteProduct)
		sr.Post("/categories", s.handleAddCategory)
		sr.Delete("/categories/{name}", s.handleDeleteCategory)
		sr.Get("/users", s.handleListUsers)
		sr.Delete("/users/{userID}", s.handleDeleteUser)
		sr.Post("/view", s.handleSetAdminView)
	})

	return mux
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

// confirmed reports whether the request carries the explicit
// affirmative for a destructive action.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
