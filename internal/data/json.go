package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dispatch-report/internal/table"
)

// tablePayload is the JSON form of a table: explicit column order plus
// positional rows, because JSON objects cannot carry column order.
type tablePayload struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ReadTable picks a loader from the file extension (.csv or .json).
func ReadTable(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadTableCSV(path)
	case ".json":
		return ReadTableJSON(path)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", path)
	}
}

func ReadTableJSON(path string) (*table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTableJSON(raw)
}

// ParseTableJSON decodes {"columns": [...], "rows": [[...], ...]}.
func ParseTableJSON(raw []byte) (*table.Table, error) {
	var p tablePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	t := table.New(p.Columns...)
	for i, row := range p.Rows {
		if err := t.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return t, nil
}

// ReadRecordJSON loads a flat JSON object (metric name -> value) as a record.
func ReadRecordJSON(path string) (table.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec table.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}
