package solid_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/solid/internal/docsync"
)

// TestREADME guards the repository's core promise:
// the fenced go blocks of the README are the verbatim contents of the
// snippet files listed in snippets.yaml, and every snippet parses as Go.
func TestREADME(t *testing.T) {
	mismatches, err := docsync.Check(".", "snippets.yaml", "README.md")
	assert.NoError(t, err)

	for _, m := range mismatches {
		t.Errorf("%s: %s (%s)\n%s", m.Title, m.Reason, m.Path, m.Diff)
	}
}
