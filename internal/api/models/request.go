package models

// TablePayload is the wire form of one table: explicit column order plus
// positional rows. JSON objects cannot carry column order, so rows are
// arrays aligned with Columns.
type TablePayload struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ReportRequest carries the already-computed upstream results to export.
// Prices may be null or empty (the Prices sheet is emitted anyway); the
// other three are included in the workbook only when they have content.
type ReportRequest struct {
	Prices   *TablePayload  `json:"prices"`
	Dispatch *TablePayload  `json:"dispatch,omitempty"`
	KPIs     map[string]any `json:"kpis,omitempty"`
	Battery  *TablePayload  `json:"battery,omitempty"`

	// Filename overrides the server's default download filename.
	Filename string `json:"filename,omitempty"`
}
