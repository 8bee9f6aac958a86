package vector

// DataPointThreshold is the point count a segment must exceed to be
// considered a data curve. Axis lines, tick marks and frame borders are
// short 2-5 point strokes, while sampled data curves run to dozens or
// hundreds of points; 10 is the empirically chosen cut between the two.
// The threshold is exclusive: a 10-point segment is decoration.
const DataPointThreshold = 10

// Classify partitions segments into data curves and decorations by point
// count. It returns the segments with strictly more than
// DataPointThreshold points, preserving order, along with the number of
// discarded segments for diagnostics.
func Classify(segments []Segment) ([]Segment, int) {
	var data []Segment
	for _, seg := range segments {
		if len(seg) > DataPointThreshold {
			data = append(data, seg)
		}
	}
	return data, len(segments) - len(data)
}
