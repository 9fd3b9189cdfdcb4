package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"go-purchase-analytics/internal/model"
)

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		filename TEXT,
		upload_time DATETIME,
		meta TEXT
	);
	`
	sheetTable := `
	CREATE TABLE IF NOT EXISTS dataset_sheets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT,
		sheet_name TEXT,
		rows TEXT,
		FOREIGN KEY (dataset_id) REFERENCES datasets(id)
	);
	`

	if _, err := db.Exec(datasetTable); err != nil {
		return err
	}
	if _, err := db.Exec(sheetTable); err != nil {
		return err
	}

	return nil
}

// SaveDataset stores an uploaded dataset with all its parsed sheets.
func SaveDataset(ds *model.Dataset) error {
	metaJSON, err := json.Marshal(ds.Meta)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO datasets (id, filename, upload_time, meta) VALUES (?, ?, ?, ?)`,
		ds.Meta.FileID, ds.Meta.Filename, ds.Meta.UploadTime.UTC(), metaJSON)
	if err != nil {
		return err
	}

	for _, info := range ds.Meta.Sheets {
		table := ds.Sheets[info.Name]
		if table == nil {
			continue
		}
		rowsJSON, err := json.Marshal(table.Rows)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT INTO dataset_sheets (dataset_id, sheet_name, rows) VALUES (?, ?, ?)`,
			ds.Meta.FileID, info.Name, rowsJSON)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetDatasetMeta fetches metadata for one dataset.
func GetDatasetMeta(fileID string) (*model.DatasetMeta, error) {
	var metaJSON string
	err := db.QueryRow(`SELECT meta FROM datasets WHERE id = ?`, fileID).Scan(&metaJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dataset %s not found", fileID)
	}
	if err != nil {
		return nil, err
	}

	var meta model.DatasetMeta
	if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// GetSheet fetches one parsed sheet as a record table. An empty sheet
// name resolves to the dataset's first sheet.
func GetSheet(fileID, sheetName string) (*model.Table, error) {
	meta, err := GetDatasetMeta(fileID)
	if err != nil {
		return nil, err
	}
	if sheetName == "" {
		if len(meta.Sheets) == 0 {
			return nil, fmt.Errorf("dataset %s has no sheets", fileID)
		}
		sheetName = meta.Sheets[0].Name
	}

	var rowsJSON string
	err = db.QueryRow(`SELECT rows FROM dataset_sheets WHERE dataset_id = ? AND sheet_name = ?`,
		fileID, sheetName).Scan(&rowsJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sheet %q not found in dataset %s", sheetName, fileID)
	}
	if err != nil {
		return nil, err
	}

	var rows []model.Record
	if err := json.Unmarshal([]byte(rowsJSON), &rows); err != nil {
		return nil, err
	}
	return model.NewTable(rows, meta.Filename, ""), nil
}

// ListDatasets returns metadata for all stored datasets, newest first.
func ListDatasets() ([]model.DatasetMeta, error) {
	rows, err := db.Query(`SELECT meta FROM datasets ORDER BY upload_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []model.DatasetMeta
	for rows.Next() {
		var metaJSON string
		if err := rows.Scan(&metaJSON); err != nil {
			return nil, err
		}
		var meta model.DatasetMeta
		if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// DeleteDataset removes a dataset and its sheets. Deleting an unknown
// id reports an error rather than succeeding silently.
func DeleteDataset(fileID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM dataset_sheets WHERE dataset_id = ?`, fileID); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM datasets WHERE id = ?`, fileID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("dataset %s not found", fileID)
	}
	return tx.Commit()
}
