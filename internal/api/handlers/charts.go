package handlers

import (
	"bytes"
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/ports"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ChartHandler serves the dashboard charts as images.
type ChartHandler struct {
	Reporter ports.CostReporter
	Renderer ports.ChartRenderer
}

// PNG renders /charts/{name}.png for the filter in the query string.
func (h *ChartHandler) PNG(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rep, err := h.Reporter.Report(r.Context(), parseFilter(r))
	if err != nil {
		writeInternal(w, r, "chart", err)
		return
	}

	// Render fully before writing so a failure can still set the status.
	var buf bytes.Buffer
	err = h.Renderer.Render(&buf, name, rep)
	switch {
	case errors.Is(err, domain.ErrUnknownChart):
		writeError(w, r, http.StatusNotFound, "unknown chart: "+name)
		return
	case errors.Is(err, domain.ErrNoChartData):
		writeError(w, r, http.StatusNotFound, "no data for chart: "+name)
		return
	case err != nil:
		writeInternal(w, r, "chart", err)
		return
	}

	w.Header().Set("Content-Type", h.Renderer.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
