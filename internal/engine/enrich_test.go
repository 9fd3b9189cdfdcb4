package engine

import (
	"strings"
	"testing"

	"go-purchase-analytics/internal/model"
)

func TestEnrichmentAbsent(t *testing.T) {
	rows := []model.Record{
		poRow("D1", "C1", "P1", "M1", 100, 50),
	}
	env, err := New().Compute(model.NewTable(rows, "", ""))
	if err != nil {
		t.Fatal(err)
	}
	s := env[model.KeySummary].(map[string]interface{})
	if s["enriched_with_materials"] != false {
		t.Errorf("enriched_with_materials = %v, want false", s["enriched_with_materials"])
	}
	if s["materials_columns_count"] != 0 {
		t.Errorf("materials_columns_count = %v, want 0", s["materials_columns_count"])
	}
	for _, key := range []string{
		model.KeyMaterialTypes, model.KeyMaterialGroups, model.KeyProductHierarchy,
		model.KeyTopMaterialsByDesc, model.KeyBaseUnits, model.KeyMaterialStatus,
		model.KeyEANAnalysis, model.KeyOldMaterialNumbers,
	} {
		if _, ok := env[key]; ok {
			t.Errorf("envelope must not carry %q without enrichment columns", key)
		}
	}
}

func TestEnrichmentPresent(t *testing.T) {
	rows := []model.Record{
		poRow("D1", "C1", "P1", "M1", 100, 50),
		poRow("D2", "C1", "P1", "M2", 200, 100),
		poRow("D3", "C1", "P1", "M2", 50, 50),
	}
	rows[0][model.ColMaterialType] = "ROH"
	rows[1][model.ColMaterialType] = "ROH"
	rows[2][model.ColMaterialType] = "FERT"
	rows[0][model.ColMaterialDesc] = "Steel sheet"
	rows[1][model.ColMaterialDesc] = "Copper wire"
	rows[2][model.ColMaterialDesc] = "Copper wire"
	rows[0][model.ColEAN] = "4006381333931"
	rows[1][model.ColEAN] = nil
	rows[2][model.ColEAN] = nil

	env, err := New().Compute(model.NewTable(rows, "EKPO", "SAPHANADB"))
	if err != nil {
		t.Fatal(err)
	}
	s := env[model.KeySummary].(map[string]interface{})
	if s["enriched_with_materials"] != true {
		t.Errorf("enriched_with_materials = %v, want true", s["enriched_with_materials"])
	}
	if s["materials_columns_count"] != 2 {
		t.Errorf("materials_columns_count = %v, want 2", s["materials_columns_count"])
	}
	if s["data_source"] != "EKPO" || s["schema"] != "SAPHANADB" {
		t.Errorf("provenance = %v / %v", s["data_source"], s["schema"])
	}

	types := env[model.KeyMaterialTypes].(map[string]int)
	if types["ROH"] != 2 || types["FERT"] != 1 {
		t.Errorf("material_types = %v", types)
	}

	byDesc := env[model.KeyTopMaterialsByDesc].(map[string]model.MaterialStats)
	if byDesc["Copper wire"].RequestedQty != 250 || byDesc["Copper wire"].PurchaseOrders != 2 {
		t.Errorf("Copper wire = %+v", byDesc["Copper wire"])
	}

	ean := env[model.KeyEANAnalysis].(map[string]interface{})
	if ean["with_ean"] != 1 || ean["without_ean"] != 2 {
		t.Errorf("ean_analysis = %v", ean)
	}
	if rate := ean["ean_coverage"].(float64); rate < 33.3 || rate > 33.4 {
		t.Errorf("ean_coverage = %v", rate)
	}

	// Group and hierarchy columns were never provided, so their keys
	// stay off the envelope even though enrichment is active.
	if _, ok := env[model.KeyMaterialGroups]; ok {
		t.Error("material_groups should be absent")
	}
}

func TestEnrichmentMarkerSubstringMatch(t *testing.T) {
	rows := []model.Record{
		{"Material type (MTART)": "ROH"},
	}
	table := model.NewTable(rows, "", "")
	matched := enrichmentColumns(table)
	if len(matched) != 1 {
		t.Fatalf("matched = %v, want the aliased column", matched)
	}
}

func TestTopMaterialsDescriptionTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	rows := []model.Record{
		{model.ColMaterialDesc: long, model.ColRequestedQty: 10, model.ColDocNumber: "D1"},
	}
	out := topMaterialsByDescription(model.NewTable(rows, "", ""))
	if len(out) != 1 {
		t.Fatalf("got %d entries", len(out))
	}
	for key := range out {
		if len(key) != 50 {
			t.Errorf("key length = %d, want 50", len(key))
		}
	}
}
