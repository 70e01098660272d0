package pdftable

import (
	"math"

	pdf "github.com/ledongthuc/pdf"
)

// axisTolerance is how far a stroked line may lean and still count as horizontal or
// vertical.
const axisTolerance = 1.0

// matrix is a PDF transformation [a b c d e f]. A point maps to
// (a*x + c*y + e, b*x + d*y + f).
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// mul returns the transformation that applies m first, then n.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

type point struct {
	X, Y float64
}

// pathWalker follows the graphics state of one content stream and records the painted
// rectangles and axis-aligned lines in device space.
type pathWalker struct {
	ctm   matrix
	saved []matrix

	// Current path, already transformed.
	pending    []Rect
	start, cur point
	hasCurrent bool

	rects []Rect
}

func newPathWalker() *pathWalker {
	return &pathWalker{ctm: identity}
}

func (w *pathWalker) op(op string, args []pdf.Value) {
	num := func(i int) float64 { return args[i].Float64() }

	switch op {
	case "q":
		w.saved = append(w.saved, w.ctm)
	case "Q":
		if n := len(w.saved); n > 0 {
			w.ctm = w.saved[n-1]
			w.saved = w.saved[:n-1]
		}
	case "cm":
		if len(args) == 6 {
			m := matrix{num(0), num(1), num(2), num(3), num(4), num(5)}
			w.ctm = m.mul(w.ctm)
		}

	case "m":
		if len(args) == 2 {
			w.moveTo(num(0), num(1))
		}
	case "l":
		if len(args) == 2 && w.hasCurrent {
			w.lineTo(num(0), num(1))
		}
	case "c":
		if len(args) == 6 {
			w.curveTo(num(4), num(5))
		}
	case "v", "y":
		if len(args) == 4 {
			w.curveTo(num(2), num(3))
		}
	case "h":
		w.closePath()
	case "re":
		if len(args) == 4 {
			w.rectangle(num(0), num(1), num(2), num(3))
		}

	case "S", "f", "F", "f*", "B", "B*":
		w.paint()
	case "s", "b", "b*":
		w.closePath()
		w.paint()
	case "n":
		w.discard()
	}
}

func (w *pathWalker) moveTo(x, y float64) {
	x, y = w.ctm.apply(x, y)
	w.start = point{x, y}
	w.cur = w.start
	w.hasCurrent = true
}

func (w *pathWalker) lineTo(x, y float64) {
	x, y = w.ctm.apply(x, y)
	w.addLine(w.cur, point{x, y})
	w.cur = point{x, y}
}

func (w *pathWalker) curveTo(x, y float64) {
	x, y = w.ctm.apply(x, y)
	w.cur = point{x, y}
}

func (w *pathWalker) closePath() {
	if !w.hasCurrent {
		return
	}
	w.addLine(w.cur, w.start)
	w.cur = w.start
}

// addLine keeps only horizontal and vertical lines; diagonals cannot rule a table.
func (w *pathWalker) addLine(a, b point) {
	dx, dy := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
	if dx > axisTolerance && dy > axisTolerance {
		return
	}
	if dx == 0 && dy == 0 {
		return
	}
	w.pending = append(w.pending, Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y})
}

// rectangle records the device-space bounding box of the transformed corners.
func (w *pathWalker) rectangle(x, y, width, height float64) {
	corners := [4]point{}
	corners[0].X, corners[0].Y = w.ctm.apply(x, y)
	corners[1].X, corners[1].Y = w.ctm.apply(x+width, y)
	corners[2].X, corners[2].Y = w.ctm.apply(x+width, y+height)
	corners[3].X, corners[3].Y = w.ctm.apply(x, y+height)

	r := Rect{X0: corners[0].X, Y0: corners[0].Y, X1: corners[0].X, Y1: corners[0].Y}
	for _, c := range corners[1:] {
		r.X0, r.X1 = math.Min(r.X0, c.X), math.Max(r.X1, c.X)
		r.Y0, r.Y1 = math.Min(r.Y0, c.Y), math.Max(r.Y1, c.Y)
	}
	w.pending = append(w.pending, r)

	w.start = corners[0]
	w.cur = corners[0]
	w.hasCurrent = true
}

func (w *pathWalker) paint() {
	w.rects = append(w.rects, w.pending...)
	w.discard()
}

func (w *pathWalker) discard() {
	w.pending = w.pending[:0]
	w.hasCurrent = false
}

// pageRects returns every painted rectangle and stroked or filled axis-aligned line of
// the page in device space. Lines come back as zero-width or zero-height rectangles.
func pageRects(p pdf.Page) []Rect {
	strm := p.V.Key("Contents")
	if strm.IsNull() {
		return nil
	}

	w := newPathWalker()
	pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		w.op(op, args)
	})
	return w.rects
}
