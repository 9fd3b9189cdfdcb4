package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	data := strings.Join([]string{
		` Material Number ,Plant,"Purchase Order Quantity (Requested)"`,
		`M1,P1,100`,
		`M2,P2,25.5`,
		`,,`,
		`M3,,10`,
	}, "\n")

	ds, err := ParseCSV(strings.NewReader(data), "orders.csv")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if ds.Meta.TotalRows != 3 {
		t.Errorf("TotalRows = %d, want 3 (blank row dropped)", ds.Meta.TotalRows)
	}
	info := ds.Meta.Sheets[0]
	if info.ColumnNames[0] != "Material Number" {
		t.Errorf("header not cleaned: %q", info.ColumnNames[0])
	}

	table := ds.Sheets[csvSheetName]
	if table.Rows[0]["Material Number"] != "M1" {
		t.Errorf("row 0 = %v", table.Rows[0])
	}
	if table.Rows[0]["Purchase Order Quantity (Requested)"] != 100 {
		t.Errorf("quantity not parsed as number: %v", table.Rows[0])
	}
	if table.Rows[1]["Purchase Order Quantity (Requested)"] != 25.5 {
		t.Errorf("float not parsed: %v", table.Rows[1])
	}
	if table.Rows[2]["Plant"] != nil {
		t.Errorf("empty cell should be nil, got %v", table.Rows[2]["Plant"])
	}
}

func TestParseWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"Material Number", "Plant", "Purchase Order Quantity (Requested)"},
		{"M1", "P1", 100},
		{"M2", "P2", 50},
	}
	for i, row := range cells {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	ds, err := ParseWorkbook(&buf, "orders.xlsx")
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if ds.Meta.FileID == "" {
		t.Error("dataset must get a file id")
	}
	if ds.Meta.TotalRows != 2 || ds.Meta.TotalColumns != 3 {
		t.Errorf("meta = %+v", ds.Meta)
	}
	table := ds.Sheets[sheet]
	if table == nil || table.Len() != 2 {
		t.Fatalf("sheet table = %v", table)
	}
	if table.Rows[0]["Material Number"] != "M1" {
		t.Errorf("row 0 = %v", table.Rows[0])
	}
	if len(ds.Meta.Sheets[0].Sample) != 2 {
		t.Errorf("sample = %d rows", len(ds.Meta.Sheets[0].Sample))
	}
}

func TestParseUploadDispatch(t *testing.T) {
	if _, err := ParseUpload(strings.NewReader("x"), "notes.txt"); err == nil {
		t.Error("unsupported extension must fail")
	}
	if _, err := ParseUpload(strings.NewReader("A,B\n1,2\n"), "data.csv"); err != nil {
		t.Errorf("csv dispatch: %v", err)
	}
}
