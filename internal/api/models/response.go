package models

import "time"

// ReportResponse describes a report that was built and stored for download.
type ReportResponse struct {
	ID        string         `json:"id"`
	Filename  string         `json:"filename"`
	SizeBytes int            `json:"size_bytes"`
	Sheets    []SheetSummary `json:"sheets"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// ManifestResponse lists the sheets a request would produce, without building.
type ManifestResponse struct {
	Sheets []SheetSummary `json:"sheets"`
}

// SheetSummary is one sheet's name and dimensions.
type SheetSummary struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

// ErrorResponse is the error envelope for all endpoints
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
