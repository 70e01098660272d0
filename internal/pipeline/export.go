package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"inndiff/internal"
	"inndiff/internal/inn"
)

const (
	summarySheet = "summary"
	addedSheet   = "added"
	removedSheet = "removed"
)

// ExportReportToXLSX writes a summary sheet and one sheet per identifier list.
func ExportReportToXLSX(report internal.CompareReport, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return err
	}

	summary := [][]any{
		{"run_id", report.RunID},
		{"old_file", report.OldPath},
		{"new_file", report.NewPath},
		{"started_at", report.StartedAt.Format("2006-01-02 15:04:05")},
		{"old_count", report.Result.OldCount},
		{"new_count", report.Result.NewCount},
		{"added_count", len(report.Result.Added)},
		{"removed_count", len(report.Result.Removed)},
	}
	for i, row := range summary {
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellValue(summarySheet, cell, value)
		}
	}

	if err := writeIDSheet(f, addedSheet, report.Result.Added); err != nil {
		return err
	}
	if err := writeIDSheet(f, removedSheet, report.Result.Removed); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// Identifiers are stored as text so leading zeros and 12-digit values survive.
func writeIDSheet(f *excelize.File, sheet string, ids []string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"inn", "checksum_ok"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, id := range ids {
		r := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetCellStr(sheet, cell, id); err != nil {
			return fmt.Errorf("write %s: %w", sheet, err)
		}
		cell, _ = excelize.CoordinatesToCellName(2, r)
		_ = f.SetCellBool(sheet, cell, inn.Valid(id))
	}
	return nil
}

// ExportRowsToXLSX dumps extracted rows as they came out of the document, blank and
// header rows included.
func ExportRowsToXLSX(rows []internal.RawRow, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellStr(sheet, cell, *value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
