// Package testpdf writes minimal single-font PDF files with positioned text, filled
// rectangles and stroked lines. Only WinAnsi text is supported.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

type Text struct {
	X, Y float64
	S    string
}

type Rect struct {
	X, Y, W, H float64
}

type Line struct {
	X0, Y0, X1, Y1 float64
}

type Page struct {
	Texts []Text
	Rects []Rect
	Lines []Line
	// Matrix, when set, is concatenated to the CTM before anything is drawn.
	Matrix []float64
}

const (
	FontSize  = 10.0
	ruleWidth = 0.5
)

var escaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func (p Page) content() string {
	var b strings.Builder
	if len(p.Matrix) == 6 {
		m := p.Matrix
		fmt.Fprintf(&b, "q %g %g %g %g %g %g cm\n", m[0], m[1], m[2], m[3], m[4], m[5])
	}
	for _, r := range p.Rects {
		fmt.Fprintf(&b, "%.2f %.2f %.2f %.2f re f\n", r.X, r.Y, r.W, r.H)
	}
	if len(p.Lines) > 0 {
		fmt.Fprintf(&b, "%.2f w\n", ruleWidth)
	}
	for _, l := range p.Lines {
		fmt.Fprintf(&b, "%.2f %.2f m %.2f %.2f l S\n", l.X0, l.Y0, l.X1, l.Y1)
	}
	for _, t := range p.Texts {
		fmt.Fprintf(&b, "BT /F1 %.0f Tf 1 0 0 1 %.2f %.2f Tm (%s) Tj ET\n", FontSize, t.X, t.Y, escaper.Replace(t.S))
	}
	if len(p.Matrix) == 6 {
		b.WriteString("Q\n")
	}
	return b.String()
}

// Build renders pages into a complete PDF document.
func Build(pages ...Page) []byte {
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	for i, p := range pages {
		stream := p.content()
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func Write(path string, pages ...Page) error {
	return os.WriteFile(path, Build(pages...), 0o644)
}

// Grid draws a ruled table with its top-left corner at (x, top) and writes every
// non-empty cell string inside its cell. Cells joined with "\n" become stacked lines.
func Grid(x, top float64, colWidths []float64, rowHeight float64, rows [][]string) Page {
	var p Page
	width := 0.0
	for _, w := range colWidths {
		width += w
	}
	height := rowHeight * float64(len(rows))
	bottom := top - height

	for r := 0; r <= len(rows); r++ {
		y := top - rowHeight*float64(r)
		p.Rects = append(p.Rects, Rect{X: x, Y: y - ruleWidth/2, W: width, H: ruleWidth})
	}
	cx := x
	for c := 0; c <= len(colWidths); c++ {
		p.Rects = append(p.Rects, Rect{X: cx - ruleWidth/2, Y: bottom, W: ruleWidth, H: height})
		if c < len(colWidths) {
			cx += colWidths[c]
		}
	}

	for r, row := range rows {
		rowTop := top - rowHeight*float64(r)
		cellX := x
		for c, cell := range row {
			if c >= len(colWidths) {
				break
			}
			lines := strings.Split(cell, "\n")
			for i, line := range lines {
				if line == "" {
					continue
				}
				y := rowTop - FontSize - 2 - float64(i)*(FontSize+1)
				p.Texts = append(p.Texts, Text{X: cellX + 3, Y: y, S: line})
			}
			cellX += colWidths[c]
		}
	}
	return p
}

// Stroked redraws every thin rectangle of p as a stroked line along its long side.
func (p Page) Stroked() Page {
	out := Page{Texts: p.Texts, Lines: p.Lines, Matrix: p.Matrix}
	for _, r := range p.Rects {
		if r.W >= r.H {
			y := r.Y + r.H/2
			out.Lines = append(out.Lines, Line{X0: r.X, Y0: y, X1: r.X + r.W, Y1: y})
		} else {
			x := r.X + r.W/2
			out.Lines = append(out.Lines, Line{X0: x, Y0: r.Y, X1: x, Y1: r.Y + r.H})
		}
	}
	return out
}
