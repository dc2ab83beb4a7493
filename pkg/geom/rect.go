package geom

// Rect is an axis-aligned bounding rectangle, used to describe the extent
// of a set of node positions for fit-to-bounds transforms.
type Rect struct {
	Min Vec
	Max Vec
}

// RectAround returns the degenerate rectangle containing only p.
func RectAround(p Vec) Rect { return Rect{Min: p, Max: p} }

// Expand grows r just enough to contain p and returns the result.
func (r Rect) Expand(p Vec) Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the centroid of r.
func (r Rect) Center() Vec { return Mid(r.Min, r.Max) }
