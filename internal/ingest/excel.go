package ingest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"go-purchase-analytics/internal/model"
	"go-purchase-analytics/pkg/utils"
)

// previewRows is how many parsed rows each sheet keeps as its sample.
const previewRows = 5

// ParseUpload parses an uploaded spreadsheet into a dataset,
// dispatching on the filename extension. CSV uploads become a
// single-sheet dataset.
func ParseUpload(r io.Reader, filename string) (*model.Dataset, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return ParseCSV(r, filename)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xlsm"), strings.HasSuffix(name, ".xls"):
		return ParseWorkbook(r, filename)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filename)
	}
}

// ParseWorkbook reads every sheet of an Excel workbook into record
// tables. Fully blank rows are dropped; blank header cells get a
// positional name so their column values survive.
func ParseWorkbook(r io.Reader, filename string) (*model.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	ds := &model.Dataset{
		Meta: model.DatasetMeta{
			FileID:     uuid.New().String(),
			Filename:   filename,
			UploadTime: time.Now().UTC(),
		},
		Sheets: map[string]*model.Table{},
	}

	for _, sheet := range f.GetSheetList() {
		headers, records, err := readSheet(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		table := model.NewTable(records, filename, "")
		ds.Sheets[sheet] = table

		info := model.SheetInfo{
			Name:        sheet,
			Rows:        len(records),
			Columns:     len(headers),
			ColumnNames: headers,
		}
		if len(records) > previewRows {
			info.Sample = records[:previewRows]
		} else {
			info.Sample = records
		}
		ds.Meta.Sheets = append(ds.Meta.Sheets, info)
		ds.Meta.TotalRows += len(records)
		if len(headers) > ds.Meta.TotalColumns {
			ds.Meta.TotalColumns = len(headers)
		}
		fmt.Printf("📄 Sheet %q: %d rows, %d columns\n", sheet, len(records), len(headers))
	}

	if len(ds.Meta.Sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}
	return ds, nil
}

func readSheet(f *excelize.File, sheet string) ([]string, []model.Record, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var headers []string
	var records []model.Record
	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			return nil, nil, err
		}
		if allBlank(cells) {
			continue
		}
		if headers == nil {
			headers = cleanHeaders(cells)
			continue
		}
		record := make(model.Record, len(headers))
		for i, h := range headers {
			if i < len(cells) && strings.TrimSpace(cells[i]) != "" {
				record[h] = utils.ParseValue(cells[i])
			} else {
				record[h] = nil
			}
		}
		records = append(records, record)
	}
	return headers, records, rows.Error()
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cleanHeaders trims whitespace and quotes from header cells and
// names blank ones by position.
func cleanHeaders(cells []string) []string {
	headers := make([]string, len(cells))
	for i, c := range cells {
		h := strings.TrimSpace(c)
		h = strings.ReplaceAll(h, `"`, "")
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		headers[i] = h
	}
	return headers
}
