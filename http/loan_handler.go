package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"loan-amortizer/chart"
	"loan-amortizer/domain"
	"loan-amortizer/export"
	"loan-amortizer/report"
	"loan-amortizer/service"
)

type LoanHandler struct {
	service         *service.LoanService
	exportPrecision int
}

func NewLoanHandler(service *service.LoanService, exportPrecision int) *LoanHandler {
	return &LoanHandler{service: service, exportPrecision: exportPrecision}
}

func (h *LoanHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if errors.Is(err, domain.ErrInvalidFrequency) {
			writeError(w, r, err)
			return
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateSchedule(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *LoanHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSchedule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.service.GetSchedule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSchedule(&buf, result.Schedule, export.Options{
		Format:    format,
		Precision: h.exportPrecision,
	}); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="amortization-%s%s"`, result.ID, format.Extension()))
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("error writing export")
	}
}

func (h *LoanHandler) Report(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSchedule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, report.Text(result.Summary))
	case "html":
		var buf bytes.Buffer
		if err := report.WriteHTML(&buf, result.Summary); err != nil {
			writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			log.WithError(err).Warn("error writing report")
		}
	default:
		http.Error(w, "format must be text or html", http.StatusBadRequest)
	}
}

func (h *LoanHandler) Chart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, err := chart.ParseKind(vars["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	result, err := h.service.GetSchedule(r.Context(), vars["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := chart.For(kind, result.Schedule)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, data)
		return
	}

	png, err := chart.RenderPNG(data, chart.DefaultStyle())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		log.WithError(err).Warn("error writing chart")
	}
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written response behind.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("error writing response")
	}
}
