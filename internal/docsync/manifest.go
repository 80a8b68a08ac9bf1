package docsync

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go.llib.dev/solid"
	"go.llib.dev/solid/internal/consterr"
)

const ErrInvalidManifest consterr.Error = "invalid snippet manifest"

// Manifest binds the README's principle sections to the snippet files they render.
// It is the single source of truth for what "in sync" means.
type Manifest struct {
	Principles []Entry `yaml:"principles"`
}

// Entry is one principle's worth of documentation:
// the README heading under which its snippets appear,
// and the snippet files in the order the fenced blocks follow each other.
type Entry struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Snippets []string `yaml:"snippets"`
}

func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", error(ErrInvalidManifest), err)
	}
	return m, nil
}

// Validate requires the manifest to enumerate exactly the five principles
// in their canonical order, each with a title and at least one snippet.
func (m Manifest) Validate() error {
	canonical := solid.Principles()
	if len(m.Principles) != len(canonical) {
		return ErrInvalidManifest.F("expected %d principles, got %d", len(canonical), len(m.Principles))
	}
	titles := make(map[string]struct{}, len(m.Principles))
	for i, entry := range m.Principles {
		p := solid.Principle(entry.ID)
		if err := p.Validate(); err != nil {
			return err
		}
		if p != canonical[i] {
			return ErrInvalidManifest.F("principle %q out of canonical order", entry.ID)
		}
		if entry.Title == "" {
			return ErrInvalidManifest.F("principle %q has no README title", entry.ID)
		}
		if _, ok := titles[entry.Title]; ok {
			return ErrInvalidManifest.F("README title %q is used by more than one principle", entry.Title)
		}
		titles[entry.Title] = struct{}{}
		if len(entry.Snippets) == 0 {
			return ErrInvalidManifest.F("principle %q has no snippet files", entry.ID)
		}
	}
	return nil
}
