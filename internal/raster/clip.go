package raster

// clipEdge is one side of the clip rectangle in Liang-Barsky form: the
// segment is inside that side for parameter t when p*t <= q.
type clipEdge struct {
	p, q float64
}

// clipStep narrows [t0, t1] against one edge. It returns false when the
// segment lies entirely outside.
func clipStep(e clipEdge, t0, t1 *float64) bool {
	if e.p == 0 {
		// parallel to this edge
		return e.q >= 0
	}
	r := e.q / e.p
	if e.p < 0 {
		// entering
		if r > *t1 {
			return false
		}
		if r > *t0 {
			*t0 = r
		}
		return true
	}
	// leaving
	if r < *t0 {
		return false
	}
	if r < *t1 {
		*t1 = r
	}
	return true
}

// ClipSegment clips (x0,y0)-(x1,y1) to the pixels of r using the
// Liang-Barsky parametric method. Right and bottom edges are treated as
// the last pixel column and row. ok is false when nothing of the segment
// remains inside r.
func ClipSegment(r Rect, x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0

	edges := [4]clipEdge{
		{p: -dx, q: x0 - float64(r.Left)},
		{p: dx, q: float64(r.Right-1) - x0},
		{p: -dy, q: y0 - float64(r.Top)},
		{p: dy, q: float64(r.Bottom-1) - y0},
	}

	t0, t1 := 0.0, 1.0
	for _, e := range edges {
		if !clipStep(e, &t0, &t1) {
			return x0, y0, x1, y1, false
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// ClipLine clips the segment against the current area, rewriting the
// endpoints in place. It returns false when the segment must not be drawn;
// the endpoints are left untouched in that case.
func (cv *Canvas) ClipLine(x0, y0, x1, y1 *float64) bool {
	cx0, cy0, cx1, cy1, ok := ClipSegment(cv.area, *x0, *y0, *x1, *y1)
	if !ok {
		return false
	}
	*x0, *y0, *x1, *y1 = cx0, cy0, cx1, cy1
	return true
}
