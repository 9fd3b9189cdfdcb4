package model

import "time"

// SheetInfo describes one sheet of an uploaded workbook.
type SheetInfo struct {
	Name        string   `json:"name"`
	Rows        int      `json:"rows"`
	Columns     int      `json:"columns"`
	ColumnNames []string `json:"column_names"`
	Sample      []Record `json:"sample,omitempty"`
}

// DatasetMeta is the stored metadata for one uploaded file.
type DatasetMeta struct {
	FileID       string      `json:"file_id"`
	Filename     string      `json:"filename"`
	UploadTime   time.Time   `json:"upload_time"`
	Sheets       []SheetInfo `json:"sheets"`
	TotalRows    int         `json:"total_rows"`
	TotalColumns int         `json:"total_columns"`
}

// Dataset pairs upload metadata with the parsed sheet tables.
type Dataset struct {
	Meta   DatasetMeta
	Sheets map[string]*Table
}

// FirstSheet returns the name of the first sheet, or "" for an empty
// dataset. Sheet order follows the metadata, not the map.
func (d *Dataset) FirstSheet() string {
	if len(d.Meta.Sheets) == 0 {
		return ""
	}
	return d.Meta.Sheets[0].Name
}
