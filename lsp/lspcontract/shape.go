// Package lspcontract holds the behavioral contract of the lsp/good.Shape role.
//
// A contract is the Liskov Substitution Principle made executable:
// instead of trusting that an implementation "is-a" Shape,
// every implementation runs the same suite and proves
// it honors what Shape callers rely on.
package lspcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/solid/lsp/good"
)

// Subject is a Shape implementation under contract,
// paired with its expected area computed independently from the implementation.
type Subject struct {
	Shape good.Shape
	Area  float64
}

// Shape returns the suite every good.Shape implementation must pass.
func Shape(mk func(tb testing.TB) Subject) testcase.Suite {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	s.Test("area matches the expectation computed outside the implementation", func(t *testcase.T) {
		assert.Equal(t, subject.Get(t).Area, subject.Get(t).Shape.Area())
	})

	s.Test("area is deterministic", func(t *testcase.T) {
		shape := subject.Get(t).Shape
		assert.Equal(t, shape.Area(), shape.Area())
	})

	s.Test("a generic Shape caller gets the same answer as a direct call", func(t *testcase.T) {
		shape := subject.Get(t).Shape
		assert.Equal(t, shape.Area(), good.TotalArea(shape))
	})

	return s.AsSuite("Shape")
}
