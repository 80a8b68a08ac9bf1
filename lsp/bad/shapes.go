package bad

// Rectangle promises its callers independent sides.
type Rectangle struct {
	width  float64
	height float64
}

func (r *Rectangle) SetWidth(w float64)  { r.width = w }
func (r *Rectangle) SetHeight(h float64) { r.height = h }
func (r *Rectangle) Area() float64       { return r.width * r.height }

// Square reuses Rectangle and keeps its sides equal behind the caller's back.
// The method set still matches, the behavior no longer does.
type Square struct {
	Rectangle
}

func (s *Square) SetWidth(w float64) {
	s.Rectangle.SetWidth(w)
	s.Rectangle.SetHeight(w)
}

func (s *Square) SetHeight(h float64) {
	s.Rectangle.SetWidth(h)
	s.Rectangle.SetHeight(h)
}
