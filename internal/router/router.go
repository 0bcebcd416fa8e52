package router

import (
	"net/http"
	"strings"

	"github.com/Vic2rious/backend-server/internal/handler"
	"github.com/Vic2rious/backend-server/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		hasID := strings.HasPrefix(r.URL.Path, "/api/products/") && r.URL.Path != "/api/products/"

		switch {
		case r.Method == http.MethodGet && hasID:
			productHandler.GetByID(w, r)
		case r.Method == http.MethodGet:
			productHandler.GetAll(w, r)
		case r.Method == http.MethodPost && !hasID:
			productHandler.Create(w, r)
		case r.Method == http.MethodPut && hasID:
			productHandler.Update(w, r)
		case r.Method == http.MethodDelete && hasID:
			productHandler.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		hasID := strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/"

		switch {
		case r.Method == http.MethodGet && hasID:
			orderHandler.GetByID(w, r)
		case r.Method == http.MethodGet:
			orderHandler.GetAll(w, r)
		case r.Method == http.MethodPost && !hasID:
			orderHandler.Create(w, r)
		case r.Method == http.MethodPut && hasID:
			orderHandler.Update(w, r)
		case r.Method == http.MethodDelete && hasID:
			orderHandler.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS.
	// RequestID sits outside Logging so log lines carry the correlation id.
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
