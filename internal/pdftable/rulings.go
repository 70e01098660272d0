package pdftable

import (
	"math"
	"sort"
)

// segment is a horizontal or vertical ruling. For horizontal segments Y0 == Y1, for
// vertical ones X0 == X1, and X0 <= X1, Y0 <= Y1 always.
type segment struct {
	X0, Y0, X1, Y1 float64
}

func (s segment) horizontal() bool {
	return s.Y0 == s.Y1 && s.X1 > s.X0
}

func (s segment) vertical() bool {
	return s.X0 == s.X1 && s.Y1 > s.Y0
}

// rulings turns rectangles into segments. Thin rectangles collapse to a single line,
// boxes contribute their four edges.
func rulings(rects []Rect, snap float64) []segment {
	out := make([]segment, 0, len(rects)*4)
	for _, r := range rects {
		x0, x1 := math.Min(r.X0, r.X1), math.Max(r.X0, r.X1)
		y0, y1 := math.Min(r.Y0, r.Y1), math.Max(r.Y0, r.Y1)
		w, h := x1-x0, y1-y0

		switch {
		case w <= snap && h <= snap:
			continue
		case h <= snap:
			y := (y0 + y1) / 2
			out = append(out, segment{X0: x0, Y0: y, X1: x1, Y1: y})
		case w <= snap:
			x := (x0 + x1) / 2
			out = append(out, segment{X0: x, Y0: y0, X1: x, Y1: y1})
		default:
			out = append(out,
				segment{X0: x0, Y0: y0, X1: x1, Y1: y0},
				segment{X0: x0, Y0: y1, X1: x1, Y1: y1},
				segment{X0: x0, Y0: y0, X1: x0, Y1: y1},
				segment{X0: x1, Y0: y0, X1: x1, Y1: y1},
			)
		}
	}
	return out
}

func touches(a, b segment, tol float64) bool {
	return a.X0-tol <= b.X1 && b.X0-tol <= a.X1 && a.Y0-tol <= b.Y1 && b.Y0-tol <= a.Y1
}

// groupSegments splits segments into connected components, keeping input order inside
// each component and ordering components by their first member.
func groupSegments(segs []segment, tol float64) [][]segment {
	parent := make([]int, len(segs))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if touches(segs[i], segs[j], tol) {
				ri, rj := find(i), find(j)
				if ri != rj {
					if ri < rj {
						parent[rj] = ri
					} else {
						parent[ri] = rj
					}
				}
			}
		}
	}

	index := map[int]int{}
	var groups [][]segment
	for i, s := range segs {
		root := find(i)
		gi, ok := index[root]
		if !ok {
			gi = len(groups)
			index[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], s)
	}
	return groups
}

// clusterValues sorts values ascending and merges runs whose neighbours are within tol
// into their mean.
func clusterValues(values []float64, tol float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var out []float64
	sum, n := sorted[0], 1
	last := sorted[0]
	for _, v := range sorted[1:] {
		if v-last <= tol {
			sum += v
			n++
		} else {
			out = append(out, sum/float64(n))
			sum, n = v, 1
		}
		last = v
	}
	return append(out, sum/float64(n))
}
