package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go-purchase-analytics/internal/engine"
	"go-purchase-analytics/internal/model"
)

// KPISource reads the live purchase documents table.
type KPISource interface {
	ReadEnriched(ctx context.Context) (*model.Table, error)
}

// DashboardHandler serves the dashboard KPI envelope from live data.
type DashboardHandler struct {
	source KPISource
	calc   *engine.Calculator
}

func NewDashboardHandler(source KPISource) *DashboardHandler {
	return &DashboardHandler{source: source, calc: engine.New()}
}

// GetKPIs computes dashboard KPIs over the live dataset
// @Summary Get dashboard KPIs
// @Description Compute the full KPI envelope over live purchase documents, enriched with materials master data when available
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "KPI envelope"
// @Failure 500 {object} map[string]interface{} "Data read or computation failure"
// @Router /dashboard/kpis [get]
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	fmt.Println("🚀 Fetching enriched dashboard data")

	table, err := h.source.ReadEnriched(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read live data: %v", err))
		return
	}
	if table.Len() == 0 {
		writeError(w, http.StatusInternalServerError, "no data available")
		return
	}

	fmt.Printf("📊 Processing %d records for dashboard\n", table.Len())
	kpis, err := h.calc.Compute(table)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute KPIs: %v", err))
		return
	}

	fmt.Println("✅ Dashboard KPIs calculated successfully")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(kpis)
}

// Health reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "purchase-analytics",
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	fmt.Printf("❌ %s\n", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"error": message})
}
