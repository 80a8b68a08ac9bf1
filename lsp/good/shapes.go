package good

// Shape promises a single thing: a shape can report its area.
// Nothing in the contract lets a caller mutate one dimension,
// so nothing can be broken by a shape that has only one.
type Shape interface {
	Area() float64
}

type Rectangle struct {
	Width  float64
	Height float64
}

func (r Rectangle) Area() float64 { return r.Width * r.Height }

type Square struct {
	Side float64
}

func (s Square) Area() float64 { return s.Side * s.Side }

// TotalArea is the kind of caller the Shape contract protects:
// it must work for any mix of implementations.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
