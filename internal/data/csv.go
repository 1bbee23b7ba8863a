package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"dispatch-report/internal/table"
)

// ReadTableCSV loads a table from a CSV file. The first row is the header;
// cells that parse as numbers become float64, everything else stays a string.
func ReadTableCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return table.New(), nil
	}

	t := table.New(records[0]...)
	for i, rec := range records[1:] {
		row := make([]any, len(rec))
		for j, cell := range rec {
			row[j] = parseCell(cell)
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
	}
	return t, nil
}

func parseCell(s string) any {
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x
	}
	return s
}

// WriteTableCSV writes a table as header + rows.
func WriteTableCSV(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = formatCell(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}
