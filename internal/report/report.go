package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"dispatch-report/internal/table"

	"github.com/xuri/excelize/v2"
)

// Sheet names, in the order they appear in the workbook. Prices and README
// are always present; the rest are emitted only when their input has rows.
const (
	SheetPrices   = "Prices"
	SheetDispatch = "Dispatch"
	SheetKPIs     = "KPIs"
	SheetBattery  = "Battery"
	SheetReadme   = "README"
)

// ContentType is the media type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrWrite marks a failure to construct or finalize the workbook. Callers get
// either the complete document or this — never a partial one.
var ErrWrite = errors.New("report: workbook write failed")

var readmeRows = []string{
	"All steps are 15-minute intervals.",
	"Prices aligned to quarter-hours (edges expanded, gaps filled).",
	"Dispatch uses parameters set at run time.",
}

// Inputs bundles the already-computed upstream outputs to export. Prices is
// required in spirit but may be nil or empty; the Prices sheet is emitted
// regardless. Dispatch and Battery are skipped when nil or zero-row, KPIs
// when nil or key-less.
type Inputs struct {
	Prices   *table.Table
	Dispatch *table.Table
	KPIs     table.Record
	Battery  *table.Table
}

// SheetInfo describes one sheet of a built (or to-be-built) workbook.
type SheetInfo struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

// Manifest returns the sheet set, order and sizes Build would produce for
// these inputs, without building anything.
func Manifest(in Inputs) []SheetInfo {
	sheets := []SheetInfo{tableInfo(SheetPrices, in.Prices)}
	if !in.Dispatch.Empty() {
		sheets = append(sheets, tableInfo(SheetDispatch, in.Dispatch))
	}
	if !in.KPIs.Empty() {
		sheets = append(sheets, tableInfo(SheetKPIs, table.FromRecord(in.KPIs)))
	}
	if !in.Battery.Empty() {
		sheets = append(sheets, tableInfo(SheetBattery, in.Battery))
	}
	sheets = append(sheets, SheetInfo{Name: SheetReadme, Columns: 1, Rows: len(readmeRows)})
	return sheets
}

// Build renders the inputs into a multi-sheet xlsx workbook and returns its
// bytes. Each data sheet is the table's header row followed by its rows, in
// table order, with no index column and no styling. The whole document is
// built in memory; there are no other side effects.
func Build(in Inputs) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes Prices, which is always present and first —
	// even when the input is nil or has no rows.
	if err := f.SetSheetName("Sheet1", SheetPrices); err != nil {
		return nil, writeErr(err)
	}
	if err := writeTable(f, SheetPrices, in.Prices); err != nil {
		return nil, writeErr(err)
	}

	if !in.Dispatch.Empty() {
		if err := addSheet(f, SheetDispatch, in.Dispatch); err != nil {
			return nil, writeErr(err)
		}
	}
	if !in.KPIs.Empty() {
		if err := addSheet(f, SheetKPIs, table.FromRecord(in.KPIs)); err != nil {
			return nil, writeErr(err)
		}
	}
	if !in.Battery.Empty() {
		if err := addSheet(f, SheetBattery, in.Battery); err != nil {
			return nil, writeErr(err)
		}
	}

	readme := table.New("Info")
	for _, line := range readmeRows {
		if err := readme.AppendRow(line); err != nil {
			return nil, writeErr(err)
		}
	}
	if err := addSheet(f, SheetReadme, readme); err != nil {
		return nil, writeErr(err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, writeErr(err)
	}
	return buf.Bytes(), nil
}

func writeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrWrite, err)
}

func addSheet(f *excelize.File, name string, t *table.Table) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeTable(f, name, t)
}

// writeTable fills a sheet with header + rows. A zero-row table writes
// nothing at all: empty in, header-less empty sheet out.
func writeTable(f *excelize.File, sheet string, t *table.Table) error {
	if t.Empty() {
		return nil
	}
	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, normalizeCell(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Excel has no tz-aware datetimes; write naive UTC.
func normalizeCell(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	return v
}

func tableInfo(name string, t *table.Table) SheetInfo {
	if t.Empty() {
		return SheetInfo{Name: name}
	}
	return SheetInfo{Name: name, Columns: t.NumColumns(), Rows: t.NumRows()}
}
