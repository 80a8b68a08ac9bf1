// Package docsync keeps the README document and the standalone snippet files honest with each other.
//
// The repository's contract with its readers is mechanical:
// every fenced go block in the README is the verbatim content of a snippet file,
// and every snippet file parses as Go.
// Verify turns that contract into a list of mismatches a test or a CLI can report.
package docsync

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
)

// Mismatch is one way the README and the snippet files disagree.
type Mismatch struct {
	// Title is the README section the mismatch belongs to.
	Title string
	// Path is the snippet file involved, when the mismatch is file related.
	Path string
	// Reason is a short human readable description.
	Reason string
	// Diff holds a go-cmp diff for content drifts, empty otherwise.
	Diff string
}

// Verify checks the manifest, the README and the snippet files against each other.
// Snippet paths are resolved relative to root.
// The returned error reports broken preconditions (an invalid manifest),
// while content disagreements come back as mismatches.
func Verify(root string, m Manifest, readme []byte) ([]Mismatch, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var (
		sections = make(map[string]Section, len(m.Principles))
		seen     = make(map[string]int)
	)
	for _, section := range ExtractSections(readme) {
		sections[section.Title] = section
		seen[section.Title]++
	}

	var mismatches []Mismatch
	for _, entry := range m.Principles {
		if seen[entry.Title] > 1 {
			// ambiguous which section renders the snippets, content checks would lie
			mismatches = append(mismatches, Mismatch{
				Title:  entry.Title,
				Reason: "README section title appears more than once",
			})
			continue
		}
		section, ok := sections[entry.Title]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				Title:  entry.Title,
				Reason: "README section not found",
			})
			continue
		}
		if len(section.Blocks) != len(entry.Snippets) {
			mismatches = append(mismatches, Mismatch{
				Title:  entry.Title,
				Reason: "snippet block count differs from the manifest",
			})
		}
		for i, path := range entry.Snippets {
			content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
			if err != nil {
				mismatches = append(mismatches, Mismatch{
					Title:  entry.Title,
					Path:   path,
					Reason: "snippet file is not readable",
				})
				continue
			}
			if _, err := parser.ParseFile(token.NewFileSet(), path, content, 0); err != nil {
				mismatches = append(mismatches, Mismatch{
					Title:  entry.Title,
					Path:   path,
					Reason: "snippet file does not parse as Go",
					Diff:   err.Error(),
				})
			}
			if i >= len(section.Blocks) {
				continue
			}
			if diff := cmp.Diff(string(content), section.Blocks[i]); diff != "" {
				mismatches = append(mismatches, Mismatch{
					Title:  entry.Title,
					Path:   path,
					Reason: "README block drifted from the snippet file",
					Diff:   diff,
				})
			}
		}
	}
	return mismatches, nil
}

// Check is the composition the callers want:
// load the manifest, read the README, run Verify, all relative to root.
func Check(root, manifestPath, readmePath string) ([]Mismatch, error) {
	m, err := LoadManifest(filepath.Join(root, filepath.FromSlash(manifestPath)))
	if err != nil {
		return nil, err
	}
	readme, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(readmePath)))
	if err != nil {
		return nil, err
	}
	return Verify(root, m, readme)
}
