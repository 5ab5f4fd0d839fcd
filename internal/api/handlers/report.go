package handlers

import (
	"cost-intelligence-service/internal/api/dto"
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/ports"
	"cost-intelligence-service/internal/services"
	"fmt"
	"net/http"
)

// ReportHandler exposes the cost analysis as JSON and CSV.
type ReportHandler struct {
	Reporter ports.CostReporter
}

// Filters lists the values the dashboard offers in its selectors.
func (h *ReportHandler) Filters(w http.ResponseWriter, r *http.Request) {
	priorities, categories, err := h.Reporter.FilterOptions(r.Context())
	if err != nil {
		writeInternal(w, r, "filters", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FilterResponse{
		Priorities: nonNil(priorities),
		Categories: nonNil(categories),
	})
}

func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Reporter.Report(r.Context(), parseFilter(r))
	if err != nil {
		writeInternal(w, r, "report", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toReportResponse(rep))
}

func (h *ReportHandler) Leakage(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Reporter.Report(r.Context(), parseFilter(r))
	if err != nil {
		writeInternal(w, r, "leakage", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toLeakageResponse(rep))
}

// Export downloads the filtered enriched table as CSV.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Reporter.Report(r.Context(), parseFilter(r))
	if err != nil {
		writeInternal(w, r, "export", err)
		return
	}

	body, err := services.ExportCSV(rep)
	if err != nil {
		writeInternal(w, r, "export", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func toReportResponse(rep *domain.Report) dto.ReportResponse {
	res := dto.ReportResponse{
		Filter: dto.FilterResponse{
			Priorities: nonNil(rep.Filter.Priorities),
			Categories: nonNil(rep.Filter.Categories),
		},
		KPIs: dto.KPIResponse{
			TotalCost:          rep.KPIs.TotalCost,
			OrderCount:         rep.KPIs.OrderCount,
			IncompleteOrders:   rep.KPIs.IncompleteOrders,
			UndefinedCostPerKM: rep.KPIs.UndefinedCostPerDistance,
		},
		CostByRoute:    toCategoryValues(rep.CostByRoute),
		CostByDistance: make([]dto.DistancePointResponse, 0, len(rep.CostByDistance)),
		Composition:    toCategoryValues(rep.Composition),
		DelayVsCost:    make([]dto.ScatterPointResponse, 0, len(rep.DelayVsCost)),
		Leakage:        toLeakageResponse(rep),
	}
	if rep.KPIs.HasMeanCostPerDistance {
		mean := rep.KPIs.MeanCostPerDistance
		res.KPIs.MeanCostPerKM = &mean
	}

	for _, p := range rep.CostByDistance {
		res.CostByDistance = append(res.CostByDistance, dto.DistancePointResponse{
			DistanceKM:    p.DistanceKM,
			MeanTotalCost: p.MeanTotalCost,
		})
	}
	for _, p := range rep.DelayVsCost {
		res.DelayVsCost = append(res.DelayVsCost, dto.ScatterPointResponse{
			OrderID:             p.OrderID,
			TrafficDelayMinutes: p.TrafficDelayMinutes,
			TotalCost:           p.TotalCost,
		})
	}

	return res
}

func toLeakageResponse(rep *domain.Report) dto.LeakageResponse {
	res := dto.LeakageResponse{
		Orders: make([]dto.LeakageRowResponse, 0, len(rep.Leakage)),
	}
	if rep.HasLeakageThreshold {
		threshold := rep.LeakageThreshold
		res.Threshold = &threshold
	}

	for _, l := range rep.Leakage {
		res.Orders = append(res.Orders, dto.LeakageRowResponse{
			OrderID:             l.OrderID,
			Route:               l.Route,
			CostPerKM:           l.CostPerKM,
			TrafficDelayMinutes: l.TrafficDelayMinutes,
		})
	}
	return res
}

func toCategoryValues(in []domain.CategoryValue) []dto.CategoryValueResponse {
	out := make([]dto.CategoryValueResponse, 0, len(in))
	for _, c := range in {
		out = append(out, dto.CategoryValueResponse{Label: c.Label, Value: c.Value})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
