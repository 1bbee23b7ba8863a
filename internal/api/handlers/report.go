package handlers

import (
	"fmt"
	"net/http"

	"dispatch-report/internal/api/models"
	"dispatch-report/internal/report"
	"dispatch-report/internal/store"
	"dispatch-report/internal/table"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles report build and download requests
type ReportHandler struct {
	store           *store.Store
	defaultFilename string
}

// NewReportHandler creates a new report handler
func NewReportHandler(st *store.Store, defaultFilename string) *ReportHandler {
	return &ReportHandler{store: st, defaultFilename: defaultFilename}
}

// BuildReport handles POST /api/v1/report.
// It builds the workbook, stores it for later download, and returns its
// id and manifest.
func (h *ReportHandler) BuildReport(c *gin.Context) {
	in, filename, ok := h.bindInputs(c)
	if !ok {
		return
	}

	blob, err := report.Build(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_WRITE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	entry := h.store.Put(filename, report.Manifest(in), blob)
	c.JSON(http.StatusOK, models.ReportResponse{
		ID:        entry.ID,
		Filename:  entry.Filename,
		SizeBytes: len(entry.Data),
		Sheets:    convertSheets(entry.Sheets),
		CreatedAt: entry.CreatedAt,
		ExpiresAt: entry.ExpiresAt,
	})
}

// DownloadReport handles POST /api/v1/report/download.
// One-shot build: the workbook bytes come straight back as the response body.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	in, filename, ok := h.bindInputs(c)
	if !ok {
		return
	}

	blob, err := report.Build(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_WRITE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType, blob)
}

// GetStoredReport handles GET /api/v1/report/:id/download
func (h *ReportHandler) GetStoredReport(c *gin.Context) {
	entry, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_NOT_FOUND",
				Message: "Report is unknown or has expired. Rebuild it via POST /api/v1/report.",
			},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entry.Filename))
	c.Data(http.StatusOK, report.ContentType, entry.Data)
}

// Manifest handles POST /api/v1/report/manifest.
// It reports the sheet set the request would produce, without building.
func (h *ReportHandler) Manifest(c *gin.Context) {
	in, _, ok := h.bindInputs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ManifestResponse{
		Sheets: convertSheets(report.Manifest(in)),
	})
}

// bindInputs decodes and converts the request payload. On failure it writes
// the error response itself and returns ok=false.
func (h *ReportHandler) bindInputs(c *gin.Context) (report.Inputs, string, bool) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return report.Inputs{}, "", false
	}

	in := report.Inputs{KPIs: req.KPIs}
	payloads := []struct {
		name string
		p    *models.TablePayload
		dst  **table.Table
	}{
		{"prices", req.Prices, &in.Prices},
		{"dispatch", req.Dispatch, &in.Dispatch},
		{"battery", req.Battery, &in.Battery},
	}
	for _, tp := range payloads {
		if tp.p == nil {
			continue
		}
		t, err := toTable(tp.p)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_TABLE",
					Message: fmt.Sprintf("%s: %v", tp.name, err),
				},
			})
			return report.Inputs{}, "", false
		}
		*tp.dst = t
	}

	filename := req.Filename
	if filename == "" {
		filename = h.defaultFilename
	}
	return in, filename, true
}

// toTable converts a wire payload. Rows whose length disagrees with the
// declared columns are rejected; silently misplacing cells would corrupt
// the workbook.
func toTable(p *models.TablePayload) (*table.Table, error) {
	t := table.New(p.Columns...)
	for i, row := range p.Rows {
		if err := t.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return t, nil
}

func convertSheets(sheets []report.SheetInfo) []models.SheetSummary {
	out := make([]models.SheetSummary, len(sheets))
	for i, s := range sheets {
		out[i] = models.SheetSummary{Name: s.Name, Columns: s.Columns, Rows: s.Rows}
	}
	return out
}
