// Package staging holds extracted table rows in a sheet-like structure before column
// access, optionally round-tripping them through an xlsx workbook.
package staging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"inndiff/internal"
)

type Sheet struct {
	rows []internal.RawRow
}

func NewSheet(rows []internal.RawRow) *Sheet {
	s := &Sheet{}
	for _, row := range rows {
		s.Append(row)
	}
	return s
}

// Append adds the row unless its first cell is falsy (absent, empty or "0").
func (s *Sheet) Append(row internal.RawRow) bool {
	if len(row) == 0 || isFalsy(row[0]) {
		return false
	}
	s.rows = append(s.rows, row)
	return true
}

func (s *Sheet) Len() int {
	return len(s.rows)
}

func (s *Sheet) Rows() []internal.RawRow {
	return s.rows
}

// Column returns cell i of every row; rows that are too short yield nil.
func (s *Sheet) Column(i int) []*string {
	out := make([]*string, 0, len(s.rows))
	for _, row := range s.rows {
		if i < len(row) {
			out = append(out, row[i])
		} else {
			out = append(out, nil)
		}
	}
	return out
}

// isFalsy treats the text "0" like an empty cell.
func isFalsy(cell *string) bool {
	return cell == nil || *cell == "" || *cell == "0"
}

func (s *Sheet) SaveXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range s.rows {
		for c, cell := range row {
			if cell == nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, name, *cell); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// LoadXLSX reads the first sheet of a workbook written by SaveXLSX. Blank cells come
// back as absent.
func LoadXLSX(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open staging workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read staging workbook: %w", err)
	}

	s := &Sheet{}
	for _, cells := range rows {
		row := make(internal.RawRow, len(cells))
		for i, v := range cells {
			if v == "" {
				continue
			}
			row[i] = &v
		}
		s.Append(row)
	}
	return s, nil
}

// RoundTrip saves the sheet to path and loads it back.
func (s *Sheet) RoundTrip(path string) (*Sheet, error) {
	if err := s.SaveXLSX(path); err != nil {
		return nil, fmt.Errorf("write staging workbook: %w", err)
	}
	return LoadXLSX(path)
}
