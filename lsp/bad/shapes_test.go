package bad_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/solid/lsp/bad"
)

// stretch is written against Rectangle's promise of independent sides.
// It is the caller that Square silently breaks.
func stretch(r *bad.Rectangle, w, h float64) {
	r.SetWidth(w)
	r.SetHeight(h)
}

func TestSquare_isNotARectangle(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a plain rectangle keeps its sides independent", func(t *testcase.T) {
		var r bad.Rectangle
		stretch(&r, 5, 4)
		assert.Equal(t, 20.0, r.Area())
	})

	s.Test("the square substituted as a rectangle betrays the same caller", func(t *testcase.T) {
		var sq bad.Square
		stretch(&sq.Rectangle, 5, 4)
		// the caller set 5x4 and expects 20
		assert.Equal(t, 20.0, sq.Area())

		// going through Square's own setters, SetHeight rewrote the width too
		var sq2 bad.Square
		sq2.SetWidth(5)
		sq2.SetHeight(4)
		assert.Equal(t, 16.0, sq2.Area())
	})
}
