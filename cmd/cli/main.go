package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dispatch-report/internal/data"
	"dispatch-report/internal/report"

	"github.com/xuri/excelize/v2"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		cmdBuild(os.Args[2:])
	case "inspect":
		cmdInspect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli build --prices prices.csv [--dispatch dispatch.csv] [--kpis kpis.json] [--battery battery.csv] --out report.xlsx")
	fmt.Println("  cli inspect --in report.xlsx")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - table files may be .csv (header row first) or .json ({\"columns\":[...],\"rows\":[[...]]})")
	fmt.Println("  - kpis must be a flat JSON object of metric -> value")
}

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	pricesPath := fs.String("prices", "", "Path to the prices table (.csv or .json)")
	dispatchPath := fs.String("dispatch", "", "Optional path to the dispatch table")
	kpisPath := fs.String("kpis", "", "Optional path to a flat KPI JSON object")
	batteryPath := fs.String("battery", "", "Optional path to the battery table")
	outPath := fs.String("out", "results/report.xlsx", "Output workbook path")
	_ = fs.Parse(args)

	var in report.Inputs
	var err error

	// Prices may be omitted entirely; the workbook still gets a Prices sheet.
	if *pricesPath != "" {
		if in.Prices, err = data.ReadTable(*pricesPath); err != nil {
			panic(err)
		}
	}
	if *dispatchPath != "" {
		if in.Dispatch, err = data.ReadTable(*dispatchPath); err != nil {
			panic(err)
		}
	}
	if *kpisPath != "" {
		if in.KPIs, err = data.ReadRecordJSON(*kpisPath); err != nil {
			panic(err)
		}
	}
	if *batteryPath != "" {
		if in.Battery, err = data.ReadTable(*batteryPath); err != nil {
			panic(err)
		}
	}

	blob, err := report.Build(in)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(*outPath, blob, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d bytes to %s\n", len(blob), *outPath)
	for _, s := range report.Manifest(in) {
		fmt.Printf("  %-10s %d cols x %d rows\n", s.Name, s.Columns, s.Rows)
	}
}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	inPath := fs.String("in", "", "Path to an existing workbook")
	_ = fs.Parse(args)

	if *inPath == "" {
		fmt.Println("--in is required")
		os.Exit(2)
	}

	f, err := excelize.OpenFile(*inPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	fmt.Printf("%-4s %-12s %-8s %-8s\n", "idx", "sheet", "cols", "rows")
	for i, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			panic(err)
		}
		cols := 0
		if len(rows) > 0 {
			cols = len(rows[0])
		}
		dataRows := len(rows)
		if dataRows > 0 {
			dataRows-- // header
		}
		fmt.Printf("%-4d %-12s %-8d %-8d\n", i+1, name, cols, dataRows)
	}
}
