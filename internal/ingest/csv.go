package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"go-purchase-analytics/internal/model"
	"go-purchase-analytics/pkg/utils"
)

// csvSheetName labels the single logical sheet of a CSV upload.
const csvSheetName = "Sheet1"

// ParseCSV reads a CSV upload into a single-sheet dataset.
func ParseCSV(r io.Reader, filename string) (*model.Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	rawHeaders, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	headers := cleanHeaders(rawHeaders)

	var records []model.Record
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		if allBlank(row) {
			continue
		}
		record := make(model.Record, len(headers))
		for i, h := range headers {
			if i < len(row) && row[i] != "" {
				record[h] = utils.ParseValue(row[i])
			} else {
				record[h] = nil
			}
		}
		records = append(records, record)
	}
	fmt.Printf("📄 CSV %s: %d records read\n", filename, len(records))

	table := model.NewTable(records, filename, "")
	info := model.SheetInfo{
		Name:        csvSheetName,
		Rows:        len(records),
		Columns:     len(headers),
		ColumnNames: headers,
	}
	if len(records) > previewRows {
		info.Sample = records[:previewRows]
	} else {
		info.Sample = records
	}

	return &model.Dataset{
		Meta: model.DatasetMeta{
			FileID:       uuid.New().String(),
			Filename:     filename,
			UploadTime:   time.Now().UTC(),
			Sheets:       []model.SheetInfo{info},
			TotalRows:    len(records),
			TotalColumns: len(headers),
		},
		Sheets: map[string]*model.Table{csvSheetName: table},
	}, nil
}
