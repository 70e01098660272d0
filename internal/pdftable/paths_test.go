package pdftable

import "testing"

func TestMatrixMul(t *testing.T) {
	translate := matrix{1, 0, 0, 1, 10, 20}
	scale := matrix{2, 0, 0, 2, 0, 0}

	x, y := translate.mul(scale).apply(1, 1)
	if x != 22 || y != 42 {
		t.Fatalf("got %v,%v", x, y)
	}
	x, y = identity.mul(scale).apply(3, 4)
	if x != 6 || y != 8 {
		t.Fatalf("got %v,%v", x, y)
	}
}

func TestPathWalkerTransformsLines(t *testing.T) {
	w := newPathWalker()
	w.ctm = matrix{2, 0, 0, 2, 5, 0}
	w.moveTo(0, 10)
	w.lineTo(50, 10)
	w.lineTo(50, 40)
	w.op("S", nil)

	want := []Rect{
		{X0: 5, Y0: 20, X1: 105, Y1: 20},
		{X0: 105, Y0: 20, X1: 105, Y1: 80},
	}
	if len(w.rects) != len(want) {
		t.Fatalf("rects=%v", w.rects)
	}
	for i := range want {
		if w.rects[i] != want[i] {
			t.Fatalf("rect %d=%v want %v", i, w.rects[i], want[i])
		}
	}
}

func TestPathWalkerSkipsDiagonalsAndUnpaintedPaths(t *testing.T) {
	w := newPathWalker()
	w.moveTo(0, 0)
	w.lineTo(100, 100)
	w.op("S", nil)
	if len(w.rects) != 0 {
		t.Fatalf("diagonal kept: %v", w.rects)
	}

	w.rectangle(0, 0, 100, 50)
	w.op("n", nil)
	if len(w.rects) != 0 {
		t.Fatalf("clip path kept: %v", w.rects)
	}

	w.rectangle(0, 0, 100, 50)
	w.op("f", nil)
	if len(w.rects) != 1 {
		t.Fatalf("rects=%v", w.rects)
	}
}

func TestPathWalkerCloseAndRestore(t *testing.T) {
	w := newPathWalker()
	w.op("q", nil)
	w.ctm = matrix{1, 0, 0, -1, 0, 100}
	w.rectangle(10, 10, 30, 20)
	w.op("f", nil)
	w.op("Q", nil)
	if w.ctm != identity {
		t.Fatalf("ctm=%v", w.ctm)
	}
	if got, want := w.rects[0], (Rect{X0: 10, Y0: 70, X1: 40, Y1: 90}); got != want {
		t.Fatalf("flipped rect=%v want %v", got, want)
	}

	w.moveTo(0, 0)
	w.lineTo(40, 0)
	w.lineTo(40, 30)
	w.lineTo(0, 30)
	w.op("s", nil)
	if len(w.rects) != 5 {
		t.Fatalf("closed path rects=%d", len(w.rects))
	}
	if got, want := w.rects[4], (Rect{X0: 0, Y0: 30, X1: 0, Y1: 0}); got != want {
		t.Fatalf("closing edge=%v want %v", got, want)
	}

	w.op("Q", nil)
	if w.ctm != identity {
		t.Fatalf("unbalanced Q changed ctm: %v", w.ctm)
	}
}
