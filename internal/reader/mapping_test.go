package reader

import (
	"testing"
	"time"

	"go-purchase-analytics/internal/model"
)

func TestPurchaseMappingCoversEngineColumns(t *testing.T) {
	mapped := map[string]bool{}
	for _, m := range purchaseColumns {
		if m.Technical == "" || m.Business == "" {
			t.Fatalf("incomplete mapping %+v", m)
		}
		if mapped[m.Business] {
			t.Fatalf("duplicate business column %q", m.Business)
		}
		mapped[m.Business] = true
	}
	for _, col := range []string{
		model.ColDocNumber, model.ColCompany, model.ColPlant, model.ColMaterial,
		model.ColRequestedQty, model.ColDeliveredQty,
		model.ColRequestedDate, model.ColActualDate,
		model.ColPlannedDays, model.ColActualDays,
		model.ColDeliveryCompleted, model.ColDeletion,
		model.ColDocType, model.ColDocCategory, model.ColDocStatus,
		model.ColMovementType, model.ColOrderUoM,
		model.ColDocDate, model.ColManufactureDate,
	} {
		if !mapped[col] {
			t.Errorf("no technical field mapped to %q", col)
		}
	}
}

func TestMaterialMappingCoversMarkers(t *testing.T) {
	mapped := map[string]bool{}
	for _, m := range materialColumns {
		mapped[m.Business] = true
	}
	for _, marker := range model.EnrichmentMarkers {
		if !mapped[marker] {
			t.Errorf("no technical field mapped to enrichment marker %q", marker)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	if got := normalizeValue([]byte("NB")); got != "NB" {
		t.Errorf("bytes: %v", got)
	}
	if got := normalizeValue(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)); got != "2025-03-01" {
		t.Errorf("time: %v", got)
	}
	if got := normalizeValue(42.5); got != 42.5 {
		t.Errorf("passthrough: %v", got)
	}
	if got := normalizeValue(nil); got != nil {
		t.Errorf("nil: %v", got)
	}
}
