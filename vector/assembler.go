package vector

import "strconv"

// Point is an (x, y) pair in page coordinates (PostScript points, 1/72 inch).
type Point struct {
	X, Y float64
}

// Segment is an ordered poly-line recorded between path boundaries.
// Insertion order is drawing order. A recorded segment is never empty.
type Segment []Point

// Bounds is the page-coordinate bounding box accumulated over every
// coordinate the assembler sees, including moveto destinations that never
// appear in a segment. Valid is false until the first coordinate arrives.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	Valid      bool
}

// update grows the box to include (x, y).
func (b *Bounds) update(x, y float64) {
	if !b.Valid {
		b.XMin, b.XMax = x, x
		b.YMin, b.YMax = y, y
		b.Valid = true
		return
	}
	if x < b.XMin {
		b.XMin = x
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// Assembler interprets an operator token stream as a drawing program and
// materializes path segments plus the page bounding box. It keys on the
// current operator token and reads that operator's numeric arguments from
// the tokens immediately preceding it; an operator with missing or
// unparseable arguments is skipped with the state left unchanged, since a
// heuristic operator stream must never abort the run.
type Assembler struct {
	cursor   Point
	open     Segment
	segments []Segment
	bounds   Bounds
}

// NewAssembler returns an assembler with the cursor at the origin.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble runs a fresh assembler over tokens and returns the recorded
// segments and the accumulated bounding box.
func Assemble(tokens []string) ([]Segment, Bounds) {
	a := NewAssembler()
	a.Feed(tokens)
	return a.Finish()
}

// Feed processes tokens left to right. It may be called repeatedly;
// state carries over between calls.
func (a *Assembler) Feed(tokens []string) {
	for i, token := range tokens {
		switch token {
		case "m", "M", "moveto":
			if args, ok := takeArgs(tokens, i, 2); ok {
				a.MoveTo(args[0], args[1])
			}

		case "l", "L", "lineto":
			if args, ok := takeArgs(tokens, i, 2); ok {
				a.LineTo(args[0], args[1])
			}

		case "V", "R", "rmoveto", "rlineto":
			if args, ok := takeArgs(tokens, i, 2); ok {
				a.RelLineTo(args[0], args[1])
			}

		case "re":
			if args, ok := takeArgs(tokens, i, 4); ok {
				a.Rectangle(args[0], args[1], args[2], args[3])
			}

		case "S", "s", "stroke", "h", "closepath":
			a.ClosePath()
		}
	}
}

// Finish flushes any still-open segment and returns the results. The
// assembler must not be fed after Finish.
func (a *Assembler) Finish() ([]Segment, Bounds) {
	a.ClosePath()
	return a.segments, a.bounds
}

// MoveTo handles the m/moveto operator: any open segment is closed and the
// cursor jumps to (x, y). No segment is started until a line operator
// follows. Closing an un-stroked segment here is a heuristic carried from
// observed plotting output, not strict PostScript semantics.
func (a *Assembler) MoveTo(x, y float64) {
	a.flushOpen()
	a.cursor = Point{X: x, Y: y}
	a.bounds.update(x, y)
}

// LineTo handles the l/lineto operator: seeds a segment with the cursor if
// none is open, then appends the absolute destination.
func (a *Assembler) LineTo(x, y float64) {
	if a.open == nil {
		a.open = Segment{a.cursor}
	}
	a.open = append(a.open, Point{X: x, Y: y})
	a.cursor = Point{X: x, Y: y}
	a.bounds.update(x, y)
}

// RelLineTo handles the rlineto/rmoveto family: the destination is the
// cursor displaced by (dx, dy). When it seeds a new segment the seed
// coordinate itself enters the bounding box, because nothing else records
// that point.
func (a *Assembler) RelLineTo(dx, dy float64) {
	if a.open == nil {
		a.open = Segment{a.cursor}
		a.bounds.update(a.cursor.X, a.cursor.Y)
	}
	dest := Point{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	a.open = append(a.open, dest)
	a.cursor = dest
	a.bounds.update(dest.X, dest.Y)
}

// Rectangle handles the re operator: any open segment is closed and a
// five-point closed loop is recorded directly, bypassing the open-segment
// buffer. The cursor is left where it was.
func (a *Assembler) Rectangle(x, y, w, h float64) {
	a.flushOpen()
	a.segments = append(a.segments, Segment{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
		{X: x, Y: y},
	})
	a.bounds.update(x, y)
	a.bounds.update(x+w, y+h)
}

// ClosePath handles the stroke/close family: any open segment is recorded.
func (a *Assembler) ClosePath() {
	a.flushOpen()
}

// flushOpen appends the open segment, if any, to the segment list.
func (a *Assembler) flushOpen() {
	if a.open != nil {
		a.segments = append(a.segments, a.open)
		a.open = nil
	}
}

// takeArgs returns the n numeric tokens immediately preceding position i.
// It reports false when fewer than n tokens precede the operator or any of
// them fails to parse, in which case the operator must be skipped.
func takeArgs(tokens []string, i, n int) ([]float64, bool) {
	if i < n {
		return nil, false
	}
	args := make([]float64, n)
	for j := 0; j < n; j++ {
		v, err := strconv.ParseFloat(tokens[i-n+j], 64)
		if err != nil {
			return nil, false
		}
		args[j] = v
	}
	return args, true
}
