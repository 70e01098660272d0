package pdftable

import (
	"math"
	"sort"
	"strings"

	"inndiff/internal"
)

// groupLines orders glyphs top to bottom and left to right, grouping those whose
// baselines are within tol of the first glyph of the line.
func groupLines(glyphs []Glyph, tol float64) [][]Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	sorted := append([]Glyph(nil), glyphs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var lines [][]Glyph
	lineY := 0.0
	for _, gl := range sorted {
		if len(lines) > 0 && math.Abs(lineY-gl.Y) <= tol {
			lines[len(lines)-1] = append(lines[len(lines)-1], gl)
			continue
		}
		lines = append(lines, []Glyph{gl})
		lineY = gl.Y
	}

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })
	}
	return lines
}

func joinGlyphs(line []Glyph, gap float64) string {
	var b strings.Builder
	prevEnd := 0.0
	for i, gl := range line {
		if i > 0 && gl.X-prevEnd > gap {
			b.WriteByte(' ')
		}
		b.WriteString(gl.S)
		prevEnd = gl.X + gl.W
	}
	return b.String()
}

// cellText renders the glyphs of one cell, one text line per row of glyphs.
func cellText(glyphs []Glyph, opts Options) string {
	var parts []string
	for _, line := range groupLines(glyphs, opts.LineTolerance) {
		if s := strings.TrimSpace(joinGlyphs(line, opts.WordGap)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// textTables treats every text line of the page as a row of one borderless table,
// starting a new cell wherever the gap between glyphs exceeds opts.ColumnGap.
func textTables(page Page, opts Options) []Table {
	visible := make([]Glyph, 0, len(page.Glyphs))
	for _, gl := range page.Glyphs {
		if strings.TrimSpace(gl.S) != "" {
			visible = append(visible, gl)
		}
	}
	lines := groupLines(visible, opts.LineTolerance)
	if len(lines) == 0 {
		return nil
	}

	table := Table{Top: lines[0][0].Y, Left: math.Inf(1)}
	for _, line := range lines {
		var row internal.RawRow
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && line[i].X-(line[i-1].X+line[i-1].W) <= opts.ColumnGap {
				continue
			}
			text := joinGlyphs(line[start:i], opts.WordGap)
			row = append(row, &text)
			start = i
		}
		if line[0].X < table.Left {
			table.Left = line[0].X
		}
		table.Rows = append(table.Rows, row)
	}
	return []Table{table}
}
