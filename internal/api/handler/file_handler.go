package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go-purchase-analytics/internal/chat"
	"go-purchase-analytics/internal/engine"
	"go-purchase-analytics/internal/ingest"
	"go-purchase-analytics/internal/store"
)

// maxUploadBytes caps multipart uploads at 32MB.
const maxUploadBytes = 32 << 20

const filesPrefix = "/api/v1/files/"

// FileHandler manages uploaded spreadsheet datasets.
type FileHandler struct {
	assistant *chat.Assistant
	calc      *engine.Calculator
}

func NewFileHandler(assistant *chat.Assistant) *FileHandler {
	return &FileHandler{assistant: assistant, calc: engine.New()}
}

// Upload accepts a spreadsheet and stores its parsed sheets
// @Summary Upload a spreadsheet
// @Description Parse an Excel or CSV upload into record tables and store them for analysis
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file (.xlsx, .xlsm, .xls, .csv)"
// @Success 200 {object} model.DatasetMeta "Parsed dataset metadata"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /files [post]
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File field is required")
		return
	}
	defer file.Close()

	fmt.Printf("🚀 Processing upload: %s\n", header.Filename)
	ds, err := ingest.ParseUpload(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := store.SaveDataset(ds); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save dataset")
		return
	}

	fmt.Printf("✅ Stored dataset %s (%d rows)\n", ds.Meta.FileID, ds.Meta.TotalRows)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ds.Meta)
}

// List returns all uploaded datasets
// @Summary List uploaded files
// @Tags files
// @Produce json
// @Success 200 {object} map[string]interface{} "Dataset list"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /files [get]
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	metas, err := store.ListDatasets()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch datasets")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"files": metas,
		"count": len(metas),
	})
}

// Get returns metadata for one dataset
// @Summary Get file metadata
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} model.DatasetMeta "Dataset metadata"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /files/{id} [get]
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	fileID := fileIDFromPath(r.URL.Path, "")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	meta, err := store.GetDatasetMeta(fileID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meta)
}

// Preview returns the stored sample rows per sheet
// @Summary Preview file contents
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} map[string]interface{} "Sheet previews"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /files/{id}/preview [get]
func (h *FileHandler) Preview(w http.ResponseWriter, r *http.Request) {
	fileID := fileIDFromPath(r.URL.Path, "/preview")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	meta, err := store.GetDatasetMeta(fileID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"file_id":  meta.FileID,
		"filename": meta.Filename,
		"sheets":   meta.Sheets,
	})
}

// KPIs computes the KPI envelope over one stored sheet
// @Summary Compute KPIs over an uploaded file
// @Description Run the full KPI catalogue over a stored sheet; only metrics whose columns exist are populated
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Param sheet query string false "Sheet name (defaults to the first sheet)"
// @Success 200 {object} map[string]interface{} "KPI envelope"
// @Failure 404 {object} map[string]interface{} "Dataset or sheet not found"
// @Failure 500 {object} map[string]interface{} "Computation failure"
// @Router /files/{id}/kpis [get]
func (h *FileHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	fileID := fileIDFromPath(r.URL.Path, "/kpis")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	table, err := store.GetSheet(fileID, r.URL.Query().Get("sheet"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	kpis, err := h.calc.Compute(table)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(kpis)
}

// AnalyzeRequest is the POST /files/{id}/analyze payload.
type AnalyzeRequest struct {
	Question string `json:"question"`
	Sheet    string `json:"sheet,omitempty"`
}

// Analyze answers a question about one stored dataset
// @Summary Analyze an uploaded file
// @Description Ask a natural-language question about a stored sheet; the answer is grounded on its computed KPIs
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Param request body AnalyzeRequest true "Question"
// @Success 200 {object} ChatResponse "Assistant answer"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 404 {object} map[string]interface{} "Dataset or sheet not found"
// @Failure 500 {object} map[string]interface{} "Assistant failure"
// @Router /files/{id}/analyze [post]
func (h *FileHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	fileID := fileIDFromPath(r.URL.Path, "/analyze")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	table, err := store.GetSheet(fileID, req.Sheet)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	answer, err := h.assistant.AskDataset(r.Context(), table, req.Question)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Response: answer})
}

// Delete removes a dataset and its sheets
// @Summary Delete an uploaded file
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /files/{id} [delete]
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fileID := fileIDFromPath(r.URL.Path, "")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, "File ID is required")
		return
	}
	if err := store.DeleteDataset(fileID); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Dataset deleted successfully",
		"file_id": fileID,
	})
}

// fileIDFromPath slices the file id out of /api/v1/files/{id}{suffix}.
func fileIDFromPath(path, suffix string) string {
	if !strings.HasPrefix(path, filesPrefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(filesPrefix) : len(path)-len(suffix)]
}
