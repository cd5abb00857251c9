package common

// Rect is an axis-aligned rectangle. When used as part of an object profile
// X/Y are offsets from the object's position.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
