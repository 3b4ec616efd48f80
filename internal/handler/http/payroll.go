package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	Calendar(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// periodFromQuery parses the month and year query parameters. Missing or
// malformed values surface as zero and fail period validation downstream.
func periodFromQuery(r *http.Request) (month, year int) {
	month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	return month, year
}

// Calendar implements PayrollHandler.
func (h *PayrollHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	month, year := periodFromQuery(r)

	calendarResponse, err := h.payrollService.ResolveCalendar(month, year)
	if err != nil {
		slog.Error("Calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, calendarResponse)
}

// Preview implements PayrollHandler.
func (h *PayrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var previewReq payroll.PreviewRequest

	if err := json.NewDecoder(r.Body).Decode(&previewReq); err != nil {
		slog.Error("Preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	previewResponse, err := h.payrollService.Preview(r.Context(), previewReq)
	if err != nil {
		slog.Error("Preview service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, previewResponse)
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	recordResponse, err := h.payrollService.CreateRecord(r.Context(), createReq)
	if err != nil {
		slog.Error("Create payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll record created successfully", recordResponse)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payroll.Filter

	query := r.URL.Query()
	if v, err := strconv.Atoi(query.Get("month")); err == nil {
		filter.PeriodMonth = &v
	}
	if v, err := strconv.Atoi(query.Get("year")); err == nil {
		filter.PeriodYear = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("provider_id"); v != "" {
		filter.ProviderID = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	listResponse, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		slog.Error("List payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((listResponse.TotalCount + int64(listResponse.Limit) - 1) / int64(listResponse.Limit))
	response.SuccessWithMeta(w, listResponse.Data, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages,
	})
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recordResponse, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		slog.Error("Get payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, recordResponse)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq payroll.UpdateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	recordResponse, err := h.payrollService.UpdateRecord(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record updated successfully", recordResponse)
}

// Finalize implements PayrollHandler.
func (h *PayrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var finalizeReq payroll.FinalizeRequest

	if err := json.NewDecoder(r.Body).Decode(&finalizeReq); err != nil {
		slog.Error("Finalize payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.Finalize(r.Context(), finalizeReq); err != nil {
		slog.Error("Finalize payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll records finalized successfully", nil)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("Delete payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

// Summary implements PayrollHandler.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month, year := periodFromQuery(r)

	summaryResponse, err := h.payrollService.GetSummary(r.Context(), month, year)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaryResponse)
}

// Export implements PayrollHandler.
func (h *PayrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	month, year := periodFromQuery(r)

	fileName, data, err := h.payrollService.ExportRecords(r.Context(), month, year)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, fileName, xlsxContentType, data)
}
