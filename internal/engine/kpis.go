package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go-purchase-analytics/internal/model"
)

// Calculator derives the KPI envelope from one record table. It holds
// no state across calls; Now is swappable for the aging computation.
type Calculator struct {
	Now func() time.Time
}

// New returns a Calculator using the wall clock.
func New() *Calculator {
	return &Calculator{Now: time.Now}
}

// metricDef is one independently computable piece of the envelope: a
// name, the columns it needs, and the computation. A metric runs iff
// every required column is present; absence leaves its key at the
// empty default and never aborts the other metrics.
type metricDef struct {
	name     string
	requires []string
	compute  func(t *model.Table, env model.Envelope)
}

// Compute runs the full KPI catalogue over the table and, when
// materials enrichment columns are detected, appends the materials
// metric set. Callers get either a complete envelope or a single
// error; there is no partial-failure result.
func (c *Calculator) Compute(t *model.Table) (model.Envelope, error) {
	if t == nil {
		return nil, fmt.Errorf("kpi computation: nil record table")
	}

	env := newEnvelope(t)
	for _, m := range c.catalogue() {
		if !t.HasColumns(m.requires...) {
			continue
		}
		m.compute(t, env)
	}
	c.applyEnrichment(t, env)
	return env, nil
}

// newEnvelope builds the fixed-key envelope with every base metric at
// its empty default, so callers always see the same top-level shape.
func newEnvelope(t *model.Table) model.Envelope {
	return model.Envelope{
		model.KeySummary: map[string]interface{}{
			"total_records":            t.Len(),
			"total_purchase_documents": 0,
			"unique_companies":         0,
			"unique_plants":            0,
			"unique_materials":         0,
			"total_requested_quantity": 0.0,
			"total_delivered_quantity": 0.0,
		},
		model.KeyCompanyAnalysis:      map[string]model.CompanyStats{},
		model.KeyDeliveryCompletion:   map[string]int{},
		model.KeyPlantPerformance:     map[string]model.PlantStats{},
		model.KeyDeliveryTimeTrends:   map[string]model.TrendStats{},
		model.KeyDocumentTypes:        map[string]int{},
		model.KeyMaterialAnalysis:     map[string]model.MaterialStats{},
		model.KeyOnTimeDelivery:       map[string]interface{}{},
		model.KeyLeadTimeAnalysis:     map[string]interface{}{},
		model.KeyDeletionStats:        map[string]int{},
		model.KeyStatusDistribution:   map[string]int{},
		model.KeyCategoryDistribution: map[string]int{},
		model.KeyMovementTypes:        map[string]int{},
		model.KeyUoMDistribution:      map[string]int{},
		model.KeyOpenOrdersAging:      map[string]int{},
		model.KeyMaterialFillRate:     map[string]model.FillRateStats{},
		model.KeyFreshnessAnalysis:    map[string]interface{}{},
	}
}

func (c *Calculator) catalogue() []metricDef {
	return []metricDef{
		{"summary_documents", []string{model.ColDocNumber}, summaryDocuments},
		{"summary_companies", []string{model.ColCompany}, summaryCompanies},
		{"summary_plants", []string{model.ColPlant}, summaryPlants},
		{"summary_materials", []string{model.ColMaterial}, summaryMaterials},
		{"summary_requested_qty", []string{model.ColRequestedQty}, summaryRequestedQty},
		{"summary_delivered_qty", []string{model.ColDeliveredQty}, summaryDeliveredQty},
		{model.KeyCompanyAnalysis, []string{model.ColCompany, model.ColDocNumber, model.ColRequestedQty, model.ColDeliveredQty}, companyAnalysis},
		{model.KeyDeliveryCompletion, []string{model.ColDeliveryCompleted}, deliveryCompletion},
		{model.KeyPlantPerformance, []string{model.ColPlant, model.ColDocNumber, model.ColRequestedQty, model.ColDeliveredQty, model.ColActualDays}, plantPerformance},
		{model.KeyDeliveryTimeTrends, []string{model.ColActualDate, model.ColActualDays}, deliveryTimeTrends},
		{model.KeyDocumentTypes, []string{model.ColDocType}, documentTypes},
		{model.KeyMaterialAnalysis, []string{model.ColMaterial, model.ColDocNumber, model.ColRequestedQty, model.ColDeliveredQty}, materialAnalysis},
		{model.KeyMaterialFillRate, []string{model.ColMaterial, model.ColRequestedQty, model.ColDeliveredQty}, materialFillRate},
		{model.KeyOnTimeDelivery, []string{model.ColRequestedDate, model.ColActualDate}, onTimeDelivery},
		{model.KeyLeadTimeAnalysis, []string{model.ColPlannedDays, model.ColActualDays}, leadTimeAnalysis},
		{model.KeyDeletionStats, []string{model.ColDeletion}, deletionStats},
		{model.KeyStatusDistribution, []string{model.ColDocStatus}, statusDistribution},
		{model.KeyCategoryDistribution, []string{model.ColDocCategory}, categoryDistribution},
		{model.KeyMovementTypes, []string{model.ColMovementType}, movementTypes},
		{model.KeyUoMDistribution, []string{model.ColOrderUoM}, uomDistribution},
		{model.KeyOpenOrdersAging, []string{model.ColDeliveryCompleted, model.ColDocDate}, c.openOrdersAging},
		{model.KeyFreshnessAnalysis, []string{model.ColManufactureDate, model.ColActualDate}, freshnessAnalysis},
	}
}

func summary(env model.Envelope) map[string]interface{} {
	return env[model.KeySummary].(map[string]interface{})
}

func summaryDocuments(t *model.Table, env model.Envelope) {
	summary(env)["total_purchase_documents"] = distinctCount(t.Rows, model.ColDocNumber)
}

func summaryCompanies(t *model.Table, env model.Envelope) {
	summary(env)["unique_companies"] = distinctCount(t.Rows, model.ColCompany)
}

func summaryPlants(t *model.Table, env model.Envelope) {
	summary(env)["unique_plants"] = distinctCount(t.Rows, model.ColPlant)
}

func summaryMaterials(t *model.Table, env model.Envelope) {
	summary(env)["unique_materials"] = distinctCount(t.Rows, model.ColMaterial)
}

func summaryRequestedQty(t *model.Table, env model.Envelope) {
	summary(env)["total_requested_quantity"] = sumColumn(t.Rows, model.ColRequestedQty)
}

func summaryDeliveredQty(t *model.Table, env model.Envelope) {
	summary(env)["total_delivered_quantity"] = sumColumn(t.Rows, model.ColDeliveredQty)
}

// companyAnalysis breaks orders down per company, top 10 by distinct
// document count. A single-company dataset keeps the empty mapping: a
// one-row breakdown tells the dashboard nothing.
func companyAnalysis(t *model.Table, env model.Envelope) {
	if distinctCount(t.Rows, model.ColCompany) <= 1 {
		return
	}
	groups := groupRows(t, model.ColCompany)
	top := topKGroups(groups, func(g rowGroup) float64 {
		return float64(distinctCount(g.rows, model.ColDocNumber))
	}, false, 10)

	out := env[model.KeyCompanyAnalysis].(map[string]model.CompanyStats)
	for _, g := range top {
		requested := sumColumn(g.rows, model.ColRequestedQty)
		delivered := sumColumn(g.rows, model.ColDeliveredQty)
		out[g.key] = model.CompanyStats{
			PurchaseOrders: distinctCount(g.rows, model.ColDocNumber),
			RequestedQty:   requested,
			DeliveredQty:   delivered,
			DeliveryRate:   Ratio(delivered, requested) * 100,
		}
	}
}

func deliveryCompletion(t *model.Table, env model.Envelope) {
	env[model.KeyDeliveryCompletion] = ValueCounts(t, model.ColDeliveryCompleted, 0, "")
}

func plantPerformance(t *model.Table, env model.Envelope) {
	groups := groupRows(t, model.ColPlant)
	top := topKGroups(groups, func(g rowGroup) float64 {
		return sumColumn(g.rows, model.ColRequestedQty)
	}, false, 15)

	out := env[model.KeyPlantPerformance].(map[string]model.PlantStats)
	for _, g := range top {
		avgDays := meanNonNil(g.rows, model.ColActualDays)
		if avgDays <= 0 {
			avgDays = 0
		}
		out[g.key] = model.PlantStats{
			PurchaseOrders:  distinctCount(g.rows, model.ColDocNumber),
			RequestedQty:    sumColumn(g.rows, model.ColRequestedQty),
			DeliveredQty:    sumColumn(g.rows, model.ColDeliveredQty),
			AvgDeliveryDays: avgDays,
		}
	}
}

// deliveryTimeTrends buckets actual delivery times by calendar month
// and keeps the most recent 12 months. Rows whose delivery date does
// not parse, or whose day count is missing, are excluded rather than
// counted as zero.
func deliveryTimeTrends(t *model.Table, env model.Envelope) {
	type bucket struct {
		values []float64
	}
	months := make(map[string]*bucket)
	for _, row := range t.Rows {
		date, ok := ToDate(row[model.ColActualDate])
		if !ok {
			continue
		}
		days, present := row[model.ColActualDays]
		if !present || days == nil {
			continue
		}
		key := date.Format("2006-01")
		b := months[key]
		if b == nil {
			b = &bucket{}
			months[key] = b
		}
		b.values = append(b.values, ToNumber(days))
	}
	if len(months) == 0 {
		return
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 12 {
		keys = keys[len(keys)-12:]
	}

	out := env[model.KeyDeliveryTimeTrends].(map[string]model.TrendStats)
	for _, k := range keys {
		values := months[k].values
		out[k] = model.TrendStats{
			AvgDays:    mean(values),
			OrderCount: len(values),
			StdDev:     sampleStdDev(values),
		}
	}
}

func documentTypes(t *model.Table, env model.Envelope) {
	env[model.KeyDocumentTypes] = ValueCounts(t, model.ColDocType, 10, unknownBucket)
}

func materialAnalysis(t *model.Table, env model.Envelope) {
	groups := groupRows(t, model.ColMaterial)
	top := topKGroups(groups, func(g rowGroup) float64 {
		return sumColumn(g.rows, model.ColRequestedQty)
	}, false, 10)

	out := env[model.KeyMaterialAnalysis].(map[string]model.MaterialStats)
	for _, g := range top {
		out[g.key] = model.MaterialStats{
			RequestedQty:   sumColumn(g.rows, model.ColRequestedQty),
			DeliveredQty:   sumColumn(g.rows, model.ColDeliveredQty),
			PurchaseOrders: distinctCount(g.rows, model.ColDocNumber),
		}
	}
}

// materialFillRate lists the ten WORST-filled materials: ascending by
// delivered/requested, the inverse of the material_analysis ordering.
// The dashboard uses it as a shortage watchlist.
func materialFillRate(t *model.Table, env model.Envelope) {
	groups := groupRows(t, model.ColMaterial)
	worst := topKGroups(groups, func(g rowGroup) float64 {
		return Ratio(sumColumn(g.rows, model.ColDeliveredQty), sumColumn(g.rows, model.ColRequestedQty))
	}, true, 10)

	out := env[model.KeyMaterialFillRate].(map[string]model.FillRateStats)
	for _, g := range worst {
		requested := sumColumn(g.rows, model.ColRequestedQty)
		delivered := sumColumn(g.rows, model.ColDeliveredQty)
		out[g.key] = model.FillRateStats{
			FillRate:     Ratio(delivered, requested),
			RequestedQty: requested,
			DeliveredQty: delivered,
		}
	}
}

// onTimeDelivery compares actual against requested delivery dates over
// rows where both parse. The average delay only counts late rows.
func onTimeDelivery(t *model.Table, env model.Envelope) {
	var total, onTime, late int
	var delaySum float64
	var delayCount int
	for _, row := range t.Rows {
		requested, okReq := ToDate(row[model.ColRequestedDate])
		actual, okAct := ToDate(row[model.ColActualDate])
		if !okReq || !okAct {
			continue
		}
		total++
		delay := daysBetween(requested, actual)
		if delay <= 0 {
			onTime++
		} else {
			late++
			delaySum += float64(delay)
			delayCount++
		}
	}

	avgDelay := 0.0
	if delayCount > 0 {
		avgDelay = delaySum / float64(delayCount)
	}
	env[model.KeyOnTimeDelivery] = map[string]interface{}{
		"total_evaluated": total,
		"on_time":         onTime,
		"late":            late,
		"on_time_rate":    Ratio(float64(onTime), float64(total)) * 100,
		"avg_delay_days":  avgDelay,
	}
}

func leadTimeAnalysis(t *model.Table, env model.Envelope) {
	if t.Len() == 0 {
		return
	}
	var plannedSum, actualSum float64
	for _, row := range t.Rows {
		plannedSum += ToNumber(row[model.ColPlannedDays])
		actualSum += ToNumber(row[model.ColActualDays])
	}
	n := float64(t.Len())
	env[model.KeyLeadTimeAnalysis] = map[string]interface{}{
		"avg_planned_days":  plannedSum / n,
		"avg_actual_days":   actualSum / n,
		"avg_variance_days": (actualSum - plannedSum) / n,
	}
}

func deletionStats(t *model.Table, env model.Envelope) {
	env[model.KeyDeletionStats] = ValueCounts(t, model.ColDeletion, 0, "")
}

func statusDistribution(t *model.Table, env model.Envelope) {
	env[model.KeyStatusDistribution] = ValueCounts(t, model.ColDocStatus, 10, unknownBucket)
}

func categoryDistribution(t *model.Table, env model.Envelope) {
	env[model.KeyCategoryDistribution] = ValueCounts(t, model.ColDocCategory, 10, unknownBucket)
}

func movementTypes(t *model.Table, env model.Envelope) {
	env[model.KeyMovementTypes] = ValueCounts(t, model.ColMovementType, 10, unknownBucket)
}

func uomDistribution(t *model.Table, env model.Envelope) {
	env[model.KeyUoMDistribution] = ValueCounts(t, model.ColOrderUoM, 10, unknownBucket)
}

// openOrdersAging classifies still-open orders (blank completion
// indicator) by days elapsed since the document date. Boundary days
// fall in the lower bucket: an order exactly 30 days old is "0-30".
func (c *Calculator) openOrdersAging(t *model.Table, env model.Envelope) {
	buckets := map[string]int{"0-30": 0, "31-60": 0, "61-90": 0, "90+": 0}
	today := dateOnly(c.Now())
	for _, row := range t.Rows {
		if v := row[model.ColDeliveryCompleted]; v != nil && fmt.Sprintf("%v", v) != "" {
			continue
		}
		docDate, ok := ToDate(row[model.ColDocDate])
		if !ok {
			continue
		}
		age := daysBetween(docDate, today)
		switch {
		case age <= 30:
			buckets["0-30"]++
		case age <= 60:
			buckets["31-60"]++
		case age <= 90:
			buckets["61-90"]++
		default:
			buckets["90+"]++
		}
	}
	env[model.KeyOpenOrdersAging] = buckets
}

// freshnessAnalysis measures the day span between manufacture and
// actual delivery, over rows where both dates parse.
func freshnessAnalysis(t *model.Table, env model.Envelope) {
	var spans []int
	for _, row := range t.Rows {
		manufactured, okMan := ToDate(row[model.ColManufactureDate])
		delivered, okDel := ToDate(row[model.ColActualDate])
		if !okMan || !okDel {
			continue
		}
		spans = append(spans, daysBetween(manufactured, delivered))
	}
	if len(spans) == 0 {
		return
	}
	minDays, maxDays := spans[0], spans[0]
	var sum float64
	for _, d := range spans {
		sum += float64(d)
		if d < minDays {
			minDays = d
		}
		if d > maxDays {
			maxDays = d
		}
	}
	env[model.KeyFreshnessAnalysis] = map[string]interface{}{
		"avg_days":  sum / float64(len(spans)),
		"min_days":  minDays,
		"max_days":  maxDays,
		"evaluated": len(spans),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation; 0 for fewer than two
// samples.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(values)-1))
}
