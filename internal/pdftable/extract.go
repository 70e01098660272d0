// Package pdftable finds ruled (or, optionally, whitespace-aligned) tables on PDF pages
// and returns their rows as cell strings.
package pdftable

import (
	"bytes"
	"fmt"
	"os"

	pdf "github.com/ledongthuc/pdf"

	"inndiff/internal"
)

// DocumentReadError is returned when a document is missing, unreadable or not a PDF the
// reader can interpret.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("read document %s: %v", e.Path, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

type Options struct {
	Strategy internal.TableStrategy
	// Rulings closer than this are joined; row and column edges closer than this are merged.
	SnapTolerance float64
	// Glyphs whose baselines differ by less than this share a text line.
	LineTolerance float64
	// Horizontal gap that turns into a space inside a cell.
	WordGap float64
	// Horizontal gap that starts a new cell under the text strategy.
	ColumnGap float64
}

func DefaultOptions() Options {
	return Options{
		Strategy:      internal.StrategyLines,
		SnapTolerance: 3,
		LineTolerance: 3,
		WordGap:       3,
		ColumnGap:     12,
	}
}

// Glyph is a positioned run of text. X, Y is the baseline origin in device space.
type Glyph struct {
	X, Y float64
	W    float64
	Size float64
	S    string
}

// Rect is a painted rectangle or, when one side is zero, a stroked line.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

type Page struct {
	Number int
	Glyphs []Glyph
	Rects  []Rect
}

// Extract returns every row of every table in the document: page order, then table
// order, then row order. A document without tables yields no rows and no error.
func Extract(path string, opts Options) ([]internal.RawRow, error) {
	pages, err := ReadPages(path)
	if err != nil {
		return nil, err
	}

	out := []internal.RawRow{}
	for _, page := range pages {
		for _, table := range PageTables(page, opts) {
			out = append(out, table.Rows...)
		}
	}
	return out, nil
}

// ReadPages loads the glyphs and painted rulings of every page, both in device space.
func ReadPages(path string) (pages []Page, err error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentReadError{Path: path, Err: err}
	}

	// The reader panics on content it cannot interpret.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = &DocumentReadError{Path: path, Err: fmt.Errorf("malformed document: %v", rec)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, &DocumentReadError{Path: path, Err: err}
	}

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content := p.Content()

		page := Page{
			Number: i,
			Glyphs: make([]Glyph, 0, len(content.Text)),
			Rects:  pageRects(p),
		}
		for _, t := range content.Text {
			page.Glyphs = append(page.Glyphs, Glyph{X: t.X, Y: t.Y, W: t.W, Size: t.FontSize, S: t.S})
		}
		pages = append(pages, page)
	}
	return pages, nil
}

type Table struct {
	// Top and Left locate the table on its page; used only for ordering.
	Top  float64
	Left float64
	Rows []internal.RawRow
}

// PageTables detects the tables of one page according to opts.Strategy.
func PageTables(page Page, opts Options) []Table {
	switch opts.Strategy {
	case internal.StrategyText:
		return textTables(page, opts)
	case internal.StrategyAuto:
		if tables := latticeTables(page, opts); len(tables) > 0 {
			return tables
		}
		return textTables(page, opts)
	default:
		return latticeTables(page, opts)
	}
}
