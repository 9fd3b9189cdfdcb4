package engine

import (
	"strings"

	"go-purchase-analytics/internal/model"
)

// enrichmentColumns returns the table columns contributed by the
// materials master join, detected by marker-name substring so aliased
// variants still match.
func enrichmentColumns(t *model.Table) []string {
	var matched []string
	for _, name := range t.ColumnNames() {
		for _, marker := range model.EnrichmentMarkers {
			if strings.Contains(name, marker) {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched
}

// applyEnrichment appends the materials metric set when enrichment
// columns are present and annotates the summary either way, so callers
// can always read enriched_with_materials off the envelope.
func (c *Calculator) applyEnrichment(t *model.Table, env model.Envelope) {
	matched := enrichmentColumns(t)

	s := summary(env)
	s["enriched_with_materials"] = len(matched) > 0
	s["materials_columns_count"] = len(matched)
	if t.Source != "" {
		s["data_source"] = t.Source
	}
	if t.Schema != "" {
		s["schema"] = t.Schema
	}
	if len(matched) == 0 {
		return
	}

	if t.HasColumns(model.ColMaterialType) {
		env[model.KeyMaterialTypes] = ValueCounts(t, model.ColMaterialType, 10, unknownBucket)
	}
	if t.HasColumns(model.ColMaterialGroup) {
		env[model.KeyMaterialGroups] = ValueCounts(t, model.ColMaterialGroup, 10, unknownBucket)
	}
	if t.HasColumns(model.ColProductHierarchy) {
		env[model.KeyProductHierarchy] = ValueCounts(t, model.ColProductHierarchy, 10, unknownBucket)
	}
	if t.HasColumns(model.ColMaterialDesc, model.ColRequestedQty) {
		env[model.KeyTopMaterialsByDesc] = topMaterialsByDescription(t)
	}
	if t.HasColumns(model.ColBaseUoM) {
		env[model.KeyBaseUnits] = ValueCounts(t, model.ColBaseUoM, 10, unknownBucket)
	}
	if t.HasColumns(model.ColMaterialStatus) {
		env[model.KeyMaterialStatus] = ValueCounts(t, model.ColMaterialStatus, 10, unknownBucket)
	}
	if t.HasColumns(model.ColEAN) {
		env[model.KeyEANAnalysis] = coverage(t, model.ColEAN, "with_ean", "without_ean", "ean_coverage")
	}
	if t.HasColumns(model.ColOldMaterial) {
		env[model.KeyOldMaterialNumbers] = coverage(t, model.ColOldMaterial, "with_old_number", "without_old_number", "old_number_usage")
	}
}

// topMaterialsByDescription groups by material description, descending
// by requested quantity, top 10. Long descriptions are cut to 50
// characters for display.
func topMaterialsByDescription(t *model.Table) map[string]model.MaterialStats {
	groups := groupRows(t, model.ColMaterialDesc)
	top := topKGroups(groups, func(g rowGroup) float64 {
		return sumColumn(g.rows, model.ColRequestedQty)
	}, false, 10)

	out := make(map[string]model.MaterialStats, len(top))
	for _, g := range top {
		key := g.key
		if len(key) > 50 {
			key = key[:50]
		}
		out[key] = model.MaterialStats{
			RequestedQty:   sumColumn(g.rows, model.ColRequestedQty),
			DeliveredQty:   sumColumn(g.rows, model.ColDeliveredQty),
			PurchaseOrders: distinctCount(g.rows, model.ColDocNumber),
		}
	}
	return out
}

// coverage reports how many rows carry a value in an optional
// identifier column, and the percentage that do.
func coverage(t *model.Table, col, presentKey, missingKey, rateKey string) map[string]interface{} {
	var present, missing int
	for _, row := range t.Rows {
		if v, ok := row[col]; ok && v != nil {
			present++
		} else {
			missing++
		}
	}
	return map[string]interface{}{
		presentKey: present,
		missingKey: missing,
		rateKey:    Ratio(float64(present), float64(present+missing)) * 100,
	}
}
