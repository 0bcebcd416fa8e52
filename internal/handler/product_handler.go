package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vic2rious/backend-server/internal/model"
	"github.com/Vic2rious/backend-server/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with skip/take pagination.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	skip := 0
	if raw := r.URL.Query().Get("skip"); raw != "" {
		var err error
		skip, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, model.NewInvalidArgument("invalid skip parameter"), h.logger)
			return
		}
	}

	// take omitted or non-positive means the full catalog
	take := 0
	if raw := r.URL.Query().Get("take"); raw != "" {
		var err error
		take, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, model.NewInvalidArgument("invalid take parameter"), h.logger)
			return
		}
	}

	page, err := h.service.GetAll(r.Context(), skip, take)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, model.NewInvalidArgument("invalid request body"), h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req model.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, model.NewInvalidArgument("invalid request body"), h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r.URL.Path, "/api/products/")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	product, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
