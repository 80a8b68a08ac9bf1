/*
Package solid is a field guide to the five SOLID design principles, written in Go.

# Pre Words

Everything you read here, handle with a grain of salt, because it is just an opinion on this subject.
SOLID is not a checklist that makes software good when every box is ticked.
The principles are observations about what keeps a codebase cheap to change,
and like every observation, each of them has a context where it applies and a context where it doesn't.
The goal of this repository is to make those contexts visible through small, concrete examples.

# How to read this repository

Each principle lives in its own directory, and each directory holds a pair of packages:

	<principle>/bad	the design smell, kept intentionally small
	<principle>/good	the same code after the refactor the principle asks for

The "bad" packages are not strawmen, they are the shapes code naturally takes
when it is written under deadline pressure and nobody pushes back.
The "good" packages are not the only correct answer either,
they are one refactor that restores the property the principle protects.

The README renders the same snippet pairs with prose around them.
The snippet files and the README are kept in sync mechanically;
see internal/docsync and cmd/solidcheck for the machinery.

None of the example types do real work.
A notifier here records what it would have delivered, a "database connection" is a stand-in.
The point of each snippet is the dependency structure between the types, not the behavior inside them.

# The principles

  - Single Responsibility (srp): a type should have one reason to change.
  - Open/Closed (ocp): extend behavior by adding code, not by editing a dispatch site.
  - Liskov Substitution (lsp): a subtype must honor the behavioral expectations of its supertype's callers.
  - Interface Segregation (isp): no consumer should depend on methods it does not use.
  - Dependency Inversion (dip): high-level policy owns the abstraction, low-level detail implements it.

The lsp directory also contains lspcontract,
which expresses substitutability the way a Go codebase actually enforces it:
as a reusable behavioral test suite that every implementation of a role interface must pass.
*/
package solid

import "go.llib.dev/solid/internal/consterr"

// ErrInvalidPrinciple is returned when a value is not one of the five known principles.
const ErrInvalidPrinciple consterr.Error = "not a known SOLID principle"

// Principle identifies one of the five SOLID design principles.
type Principle string

const (
	SRP Principle = "srp"
	OCP Principle = "ocp"
	LSP Principle = "lsp"
	ISP Principle = "isp"
	DIP Principle = "dip"
)

// Principles returns the five principles in their canonical order,
// the same order the acronym spells them.
func Principles() []Principle {
	return []Principle{SRP, OCP, LSP, ISP, DIP}
}

var principleNames = map[Principle]string{
	SRP: "Single Responsibility Principle",
	OCP: "Open/Closed Principle",
	LSP: "Liskov Substitution Principle",
	ISP: "Interface Segregation Principle",
	DIP: "Dependency Inversion Principle",
}

// Name returns the long form name of the principle.
func (p Principle) Name() string { return principleNames[p] }

// Validate reports whether the Principle value is one of the known five.
func (p Principle) Validate() error {
	if _, ok := principleNames[p]; !ok {
		return ErrInvalidPrinciple.F("%q", string(p))
	}
	return nil
}
