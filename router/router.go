package router

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"lingerie-shop/handlers"
)

func SetupRoutes(h *handlers.Handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Root).Methods("GET")
	router.HandleFunc("/test", h.TestDatabase).Methods("GET")

	// Product routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products/sample", h.SeedSampleProducts).Methods("GET")
	api.HandleFunc("/products", h.ListProducts).Methods("GET")
	api.HandleFunc("/products", h.CreateProduct).Methods("POST")

	return router
}

// WithCORS wraps the router with a permissive cross-origin policy, matching
// what browser clients of the shop frontend expect.
func WithCORS(next http.Handler) http.Handler {
	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(next)
}
