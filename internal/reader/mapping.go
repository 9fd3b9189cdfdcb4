package reader

import "go-purchase-analytics/internal/model"

// columnMapping pairs a SAP technical field name with the business
// column name the engine keys its metrics on.
type columnMapping struct {
	Technical string
	Business  string
}

// purchaseColumns is the projection read from the purchase documents
// table, in the order the SELECT lists them.
var purchaseColumns = []columnMapping{
	{"EBELN", model.ColDocNumber},
	{"BUKRS", model.ColCompany},
	{"WERKS", model.ColPlant},
	{"MATNR", model.ColMaterial},
	{"MENGE", model.ColRequestedQty},
	{"WEMNG", model.ColDeliveredQty},
	{"EINDT", model.ColRequestedDate},
	{"WADAT", model.ColActualDate},
	{"PLIFZ", model.ColPlannedDays},
	{"WEBAZ", model.ColActualDays},
	{"ELIKZ", model.ColDeliveryCompleted},
	{"LOEKZ", model.ColDeletion},
	{"BSART", model.ColDocType},
	{"BSTYP", model.ColDocCategory},
	{"STATU", model.ColDocStatus},
	{"BWART", model.ColMovementType},
	{"BPRME", model.ColOrderUoM},
	{"BEDAT", model.ColDocDate},
	{"HSDAT", model.ColManufactureDate},
}

// materialColumns is the projection joined in from the materials
// master table.
var materialColumns = []columnMapping{
	{"MAKTX", model.ColMaterialDesc},
	{"MATKL", model.ColMaterialGroup},
	{"MTART", model.ColMaterialType},
	{"PRDHA", model.ColProductHierarchy},
	{"MEINS", model.ColBaseUoM},
	{"MSTAE", model.ColMaterialStatus},
	{"EAN11", model.ColEAN},
	{"BISMT", model.ColOldMaterial},
}
