package handlers

import (
	"bytes"
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/ports"
	"cost-intelligence-service/internal/report"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"inr":   report.FormatINR,
			"ratio": report.FormatRatio,
			"count": report.FormatCount,
			"label": report.Label,
		}).
		ParseFS(templateFS, "templates/dashboard.html"),
)

// DashboardHandler renders the HTML dashboard.
type DashboardHandler struct {
	Reporter ports.CostReporter
	Charts   ports.ChartRenderer
}

type option struct {
	Value    string
	Selected bool
}

type dashboardView struct {
	Report     *domain.Report
	Priorities []option
	Categories []option
	Charts     []string

	// Pre-encoded query string appended to chart and export links.
	Query template.URL
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	f := parseFilter(r)

	priorities, categories, err := h.Reporter.FilterOptions(r.Context())
	if err != nil {
		writeInternal(w, r, "dashboard", err)
		return
	}

	rep, err := h.Reporter.Report(r.Context(), f)
	if err != nil {
		writeInternal(w, r, "dashboard", err)
		return
	}

	view := dashboardView{
		Report:     rep,
		Priorities: options(priorities, f.Priorities),
		Categories: options(categories, f.Categories),
		Charts:     h.Charts.Names(),
		Query:      filterQuery(f),
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		writeInternal(w, r, "dashboard", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func options(all, selected []string) []option {
	out := make([]option, 0, len(all))
	for _, v := range all {
		out = append(out, option{Value: v, Selected: slices.Contains(selected, v)})
	}
	return out
}

// filterQuery encodes f so chart and export links keep the selection.
func filterQuery(f domain.Filter) template.URL {
	q := url.Values{}
	if len(f.Priorities) > 0 {
		q.Set("priority", strings.Join(f.Priorities, ","))
	}
	if len(f.Categories) > 0 {
		q.Set("category", strings.Join(f.Categories, ","))
	}
	return template.URL(q.Encode())
}
