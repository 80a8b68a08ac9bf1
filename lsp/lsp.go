/*
Package lsp demonstrates the Liskov Substitution Principle.

	"Subtypes must be substitutable for their base types."
	Barbara Liskov, phrased by Robert Martin

Substitutability is about the caller's expectations, not about type hierarchies.
A Rectangle caller expects SetWidth to leave the height alone.
The moment a Square "is-a" Rectangle that silently couples the two sides,
every function that was correct for rectangles becomes wrong for squares,
and no compiler will tell you.

Go removes the inheritance trap but not the principle:
any interface is a promise about behavior,
and an implementation that keeps the method set while breaking the promise
still violates LSP.
The good package models Rectangle and Square as independent implementations
of a minimal Shape interface.
The lspcontract package expresses the caller's expectations as a reusable
test suite, the way role interface contracts are written in production Go,
so every implementation proves its substitutability instead of asserting it.
*/
package lsp
