// Command incometracker-export dumps a ledger snapshot as CSV or XLSX without
// starting the server.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/dhar7/IncomeTracker/internal/export"
	"github.com/dhar7/IncomeTracker/internal/ledger"
	"github.com/dhar7/IncomeTracker/internal/log"
	"github.com/dhar7/IncomeTracker/internal/snapshot"
)

func main() {
	dataFile := flag.String("data", "./data/appdata_v1.json", "path to the ledger snapshot")
	out := flag.String("out", "", "output file (default stdout for csv)")
	format := flag.String("format", "csv", "output format: csv or xlsx")
	flag.Parse()

	log.Setup("info")

	store := ledger.New(snapshot.Load(*dataFile))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("Cannot create output file", "path", *out, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch *format {
	case "csv":
		err = export.WriteCSV(w, store)
	case "xlsx":
		if *out == "" {
			slog.Error("xlsx output requires -out")
			os.Exit(1)
		}
		err = export.WriteXLSX(w, store)
	default:
		slog.Error("Unknown format", "format", *format)
		os.Exit(1)
	}
	if err != nil {
		slog.Error("Export failed", "format", *format, "error", err)
		os.Exit(1)
	}
}
