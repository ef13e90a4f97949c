package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/report"
	"shift-wage-bot/pkg/logger"
)

type Handler struct {
	Wages    domain.WageService
	Location *time.Location
	Now      func() time.Time
}

func NewHandler(wages domain.WageService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{Wages: wages, Location: loc, Now: time.Now}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ShiftWage handles GET /api/employees/{id}/shifts/{shiftID}/wage
func (h *Handler) ShiftWage(w http.ResponseWriter, r *http.Request) {
	empID, err := employeeID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id", err)
		return
	}
	res, err := h.Wages.CalculateShift(r.Context(), empID, chi.URLParam(r, "shiftID"))
	if err != nil {
		writeDomainError(w, "failed to calculate shift wage", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Summary handles GET /api/employees/{id}/summary?month=YYYY-MM
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	empID, year, month, ok := h.summaryParams(w, r)
	if !ok {
		return
	}
	summary, err := h.Wages.MonthlySummary(r.Context(), empID, year, month)
	if err != nil {
		writeDomainError(w, "failed to build summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ReportPDF handles GET /api/employees/{id}/report.pdf?month=YYYY-MM
func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	empID, year, month, ok := h.summaryParams(w, r)
	if !ok {
		return
	}
	summary, err := h.Wages.MonthlySummary(r.Context(), empID, year, month)
	if err != nil {
		writeDomainError(w, "failed to build summary", err)
		return
	}
	data, err := report.RenderPDF(summary)
	if err != nil {
		writeDomainError(w, "failed to render report", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="salary-%04d-%02d.pdf"`, year, int(month)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) summaryParams(w http.ResponseWriter, r *http.Request) (int64, int, time.Month, bool) {
	empID, err := employeeID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id", err)
		return 0, 0, 0, false
	}
	now := h.Now().In(h.Location)
	year, month := now.Year(), now.Month()
	if raw := r.URL.Query().Get("month"); raw != "" {
		t, err := time.Parse("2006-01", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "month must be YYYY-MM", err)
			return 0, 0, 0, false
		}
		year, month = t.Year(), t.Month()
	}
	return empID, year, month, true
}

func employeeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case domain.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case domain.IsValidation(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		logger.WithError(err).Error(message)
		writeError(w, http.StatusInternalServerError, message, nil)
	}
}
