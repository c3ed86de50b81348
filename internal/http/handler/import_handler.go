package handler

import (
	"net/http"

	"github.com/kardex/offerfunnel-api/internal/service"
	"go.uber.org/zap"
)

// maxWorkbookSize bounds uploaded workbook size to 20 MB
const maxWorkbookSize = 20 << 20

// ImportHandler accepts workbook uploads for the legacy data importer
type ImportHandler struct {
	importService *service.ImportService
	logger        *zap.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *service.ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{importService: importService, logger: logger}
}

// ImportWorkbook godoc
// @Summary Import workbook
// @Description Upload an Excel workbook with offer sheets per salesperson and an optional Customers sheet (admin only)
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Excel workbook (.xlsx)"
// @Param dryRun query bool false "Validate and report without writing"
// @Success 200 {object} importer.Stats
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /import/workbook [post]
func (h *ImportHandler) ImportWorkbook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWorkbookSize)
	if err := r.ParseMultipartForm(maxWorkbookSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	dryRun := r.URL.Query().Get("dryRun") == "true"

	stats, err := h.importService.ImportWorkbook(r.Context(), header.Filename, file, dryRun)
	if err != nil {
		h.logger.Error("workbook import failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Import failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
