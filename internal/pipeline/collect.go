package pipeline

import (
	"fmt"
	"path/filepath"

	"inndiff/internal"
	"inndiff/internal/config"
	"inndiff/internal/inn"
	"inndiff/internal/pdftable"
	"inndiff/internal/staging"
)

type Collector struct {
	opts       pdftable.Options
	stagingDir string
}

func NewCollector(cfg config.Config) *Collector {
	return &Collector{opts: TableOptions(cfg), stagingDir: cfg.StagingDir}
}

func TableOptions(cfg config.Config) pdftable.Options {
	return pdftable.Options{
		Strategy:      cfg.TableStrategy,
		SnapTolerance: cfg.TableSnapTolerance,
		LineTolerance: cfg.TableLineTolerance,
		WordGap:       cfg.TableWordGap,
		ColumnGap:     cfg.TableColumnGap,
	}
}

// Collect returns the numeric column-0 identifiers of the document in row order,
// duplicates included.
func (c *Collector) Collect(path string) ([]string, error) {
	return c.CollectSide("", path)
}

// CollectSide is Collect with the staging workbook named after the side being compared.
func (c *Collector) CollectSide(side internal.Side, path string) ([]string, error) {
	rows, err := pdftable.Extract(path, c.opts)
	if err != nil {
		return nil, err
	}

	sheet := staging.NewSheet(rows)
	if c.stagingDir != "" {
		sheet, err = sheet.RoundTrip(filepath.Join(c.stagingDir, StagingFileName(side)))
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", path, err)
		}
	}

	return Identifiers(sheet), nil
}

func StagingFileName(side internal.Side) string {
	if side == "" {
		return "staged_file.xlsx"
	}
	return string(side) + "_file.xlsx"
}

// Identifiers normalizes the first column of the sheet and keeps the all-digit values.
func Identifiers(sheet *staging.Sheet) []string {
	out := []string{}
	for _, cell := range sheet.Column(0) {
		value := inn.Normalize(cell)
		if inn.IsDigits(value) {
			out = append(out, value)
		}
	}
	return out
}
