package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestorpj/payroll-backend-go/internal/domain/provider"
	"github.com/gestorpj/payroll-backend-go/internal/handler/http/response"
)

type ProviderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProviderHandlerImpl struct {
	providerService provider.ProviderService
}

func NewProviderHandler(providerService provider.ProviderService) ProviderHandler {
	return &ProviderHandlerImpl{providerService: providerService}
}

// Create implements ProviderHandler.
func (h *ProviderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq provider.CreateProviderRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create provider decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	providerResponse, err := h.providerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create provider service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Provider created successfully", providerResponse)
}

// Get implements ProviderHandler.
func (h *ProviderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	providerResponse, err := h.providerService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get provider service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, providerResponse)
}

// List implements ProviderHandler.
func (h *ProviderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	providers, err := h.providerService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List providers service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, providers)
}

// Update implements ProviderHandler.
func (h *ProviderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq provider.UpdateProviderRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update provider decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	providerResponse, err := h.providerService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update provider service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Provider updated successfully", providerResponse)
}

// Delete implements ProviderHandler.
func (h *ProviderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.providerService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete provider service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Provider deactivated successfully", nil)
}
