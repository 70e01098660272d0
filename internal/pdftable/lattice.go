package pdftable

import (
	"math"
	"sort"

	"inndiff/internal"
)

type cellRef struct {
	row, col int
}

// grid is one ruled table: row edges top to bottom, column edges left to right.
type grid struct {
	rows []float64
	cols []float64
	hs   []segment
	vs   []segment
	snap float64
}

// latticeTables builds one table per connected group of rulings that has at least two
// horizontal and two vertical edges.
func latticeTables(page Page, opts Options) []Table {
	segs := rulings(page.Rects, opts.SnapTolerance)
	if len(segs) == 0 {
		return nil
	}

	var tables []Table
	for _, group := range groupSegments(segs, opts.SnapTolerance) {
		g := grid{snap: opts.SnapTolerance}
		var ys, xs []float64
		for _, s := range group {
			switch {
			case s.horizontal():
				g.hs = append(g.hs, s)
				ys = append(ys, s.Y0)
			case s.vertical():
				g.vs = append(g.vs, s)
				xs = append(xs, s.X0)
			}
		}

		g.rows = clusterValues(ys, opts.SnapTolerance)
		g.cols = clusterValues(xs, opts.SnapTolerance)
		if len(g.rows) < 2 || len(g.cols) < 2 {
			continue
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(g.rows)))

		tables = append(tables, g.table(page.Glyphs, opts))
	}

	sort.SliceStable(tables, func(i, j int) bool {
		if tables[i].Top != tables[j].Top {
			return tables[i].Top > tables[j].Top
		}
		return tables[i].Left < tables[j].Left
	})
	return tables
}

func (g grid) table(glyphs []Glyph, opts Options) Table {
	nr, nc := len(g.rows)-1, len(g.cols)-1

	// A band without a ruling on its left (or top) edge belongs to the cell it spans from.
	owner := make([][]cellRef, nr)
	for r := 0; r < nr; r++ {
		owner[r] = make([]cellRef, nc)
		midY := (g.rows[r] + g.rows[r+1]) / 2
		for c := 0; c < nc; c++ {
			midX := (g.cols[c] + g.cols[c+1]) / 2
			switch {
			case c > 0 && !g.hasVertical(g.cols[c], midY):
				owner[r][c] = owner[r][c-1]
			case r > 0 && !g.hasHorizontal(g.rows[r], midX):
				owner[r][c] = owner[r-1][c]
			default:
				owner[r][c] = cellRef{row: r, col: c}
			}
		}
	}

	content := map[cellRef][]Glyph{}
	for _, gl := range glyphs {
		r, c, ok := g.locate(gl)
		if !ok {
			continue
		}
		ref := owner[r][c]
		content[ref] = append(content[ref], gl)
	}

	rows := make([]internal.RawRow, 0, nr)
	for r := 0; r < nr; r++ {
		row := make(internal.RawRow, nc)
		for c := 0; c < nc; c++ {
			ref := cellRef{row: r, col: c}
			if owner[r][c] != ref {
				continue
			}
			text := cellText(content[ref], opts)
			row[c] = &text
		}
		rows = append(rows, row)
	}

	return Table{Top: g.rows[0], Left: g.cols[0], Rows: rows}
}

// locate finds the band holding the glyph's visual centre.
func (g grid) locate(gl Glyph) (int, int, bool) {
	cx := gl.X + gl.W/2
	cy := gl.Y + gl.Size/3

	r := -1
	for i := 0; i+1 < len(g.rows); i++ {
		if cy <= g.rows[i] && cy > g.rows[i+1] {
			r = i
			break
		}
	}
	c := -1
	for i := 0; i+1 < len(g.cols); i++ {
		if cx >= g.cols[i] && cx < g.cols[i+1] {
			c = i
			break
		}
	}
	return r, c, r >= 0 && c >= 0
}

func (g grid) hasVertical(x, y float64) bool {
	for _, v := range g.vs {
		if math.Abs(v.X0-x) <= g.snap && y >= v.Y0-g.snap && y <= v.Y1+g.snap {
			return true
		}
	}
	return false
}

func (g grid) hasHorizontal(y, x float64) bool {
	for _, h := range g.hs {
		if math.Abs(h.Y0-y) <= g.snap && x >= h.X0-g.snap && x <= h.X1+g.snap {
			return true
		}
	}
	return false
}
