package model

// Business-friendly column names for the purchase documents schema.
// The upstream reader maps SAP technical names (EBELN, WERKS, ...) to
// these before the engine ever sees a row. None of them are guaranteed
// to be present: every metric checks for its own columns.
const (
	ColDocNumber    = "Purchasing Document Number"
	ColCompany      = "Company Code"
	ColPlant        = "Plant"
	ColMaterial     = "Material Number"
	ColRequestedQty = "Purchase Order Quantity (Requested)"
	ColDeliveredQty = "Purchase Order Quantity (Delivered)"

	ColRequestedDate = "Delivery Date (Requested)"
	ColActualDate    = "Delivery Date (Actual)"
	ColPlannedDays   = "Planned Delivery Time in Days"
	ColActualDays    = "Actual Delivery Time in Days"

	ColDeliveryCompleted = `"Delivery Completed" Indicator`
	ColDeletion          = "Deletion Indicator in Purchasing Document"
	ColDocType           = "Purchasing Document Type"
	ColDocCategory       = "Purchasing Document Category"
	ColDocStatus         = "Status of Purchasing Document"
	ColMovementType      = "Movement type (inventory management)"
	ColOrderUoM          = "Purchase Order Unit of Measure"
	ColDocDate           = "Purchasing Document Date"
	ColManufactureDate   = "Date of Manufacture"
)

// Columns contributed by the materials master enrichment join.
const (
	ColMaterialDesc     = "Material Description"
	ColMaterialGroup    = "Material Group"
	ColMaterialType     = "Material type"
	ColProductHierarchy = "Product hierarchy"
	ColBaseUoM          = "Base Unit of Measure"
	ColMaterialStatus   = "Cross-plant Material Status"
	ColEAN              = "International Article Number (EAN/UPC)"
	ColOldMaterial      = "Old material number"
)

// EnrichmentMarkers are the column-name fragments whose presence means
// the table was enriched with materials master data. Matching is by
// substring so joined column variants ("Material Description (MAKTX)")
// still count.
var EnrichmentMarkers = []string{
	ColMaterialDesc,
	ColMaterialGroup,
	ColMaterialType,
	ColProductHierarchy,
}
