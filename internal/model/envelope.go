package model

// Envelope is the nested KPI result returned to callers. The base keys
// below are always present, possibly as empty maps; enrichment keys are
// added only when materials columns were detected.
type Envelope map[string]interface{}

// Base envelope keys, always initialized.
const (
	KeySummary              = "summary"
	KeyCompanyAnalysis      = "company_analysis"
	KeyDeliveryCompletion   = "delivery_completion"
	KeyPlantPerformance     = "plant_performance"
	KeyDeliveryTimeTrends   = "delivery_time_trends"
	KeyDocumentTypes        = "document_types"
	KeyMaterialAnalysis     = "material_analysis"
	KeyOnTimeDelivery       = "on_time_delivery"
	KeyLeadTimeAnalysis     = "lead_time_analysis"
	KeyDeletionStats        = "deletion_stats"
	KeyStatusDistribution   = "status_distribution"
	KeyCategoryDistribution = "category_distribution"
	KeyMovementTypes        = "movement_types"
	KeyUoMDistribution      = "uom_distribution"
	KeyOpenOrdersAging      = "open_orders_aging"
	KeyMaterialFillRate     = "material_fill_rate"
	KeyFreshnessAnalysis    = "freshness_analysis"
)

// Enrichment envelope keys, present only for materials-enriched tables.
const (
	KeyMaterialTypes      = "material_types"
	KeyMaterialGroups     = "material_groups"
	KeyProductHierarchy   = "product_hierarchy"
	KeyTopMaterialsByDesc = "top_materials_by_description"
	KeyBaseUnits          = "base_units_of_measure"
	KeyMaterialStatus     = "material_status"
	KeyEANAnalysis        = "ean_analysis"
	KeyOldMaterialNumbers = "old_material_numbers"
)

// CompanyStats is one company_analysis entry.
type CompanyStats struct {
	PurchaseOrders int     `json:"purchase_orders"`
	RequestedQty   float64 `json:"requested_qty"`
	DeliveredQty   float64 `json:"delivered_qty"`
	DeliveryRate   float64 `json:"delivery_rate"`
}

// PlantStats is one plant_performance entry.
type PlantStats struct {
	PurchaseOrders  int     `json:"purchase_orders"`
	RequestedQty    float64 `json:"requested_qty"`
	DeliveredQty    float64 `json:"delivered_qty"`
	AvgDeliveryDays float64 `json:"avg_delivery_days"`
}

// TrendStats is one delivery_time_trends month entry.
type TrendStats struct {
	AvgDays    float64 `json:"avg_days"`
	OrderCount int     `json:"order_count"`
	StdDev     float64 `json:"std_dev"`
}

// MaterialStats is one material_analysis or top_materials_by_description entry.
type MaterialStats struct {
	RequestedQty   float64 `json:"requested_qty"`
	DeliveredQty   float64 `json:"delivered_qty"`
	PurchaseOrders int     `json:"purchase_orders"`
}

// FillRateStats is one material_fill_rate entry.
type FillRateStats struct {
	FillRate     float64 `json:"fill_rate"`
	RequestedQty float64 `json:"requested_qty"`
	DeliveredQty float64 `json:"delivered_qty"`
}
