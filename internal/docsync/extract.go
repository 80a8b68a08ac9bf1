package docsync

import (
	"bufio"
	"bytes"
	"strings"
)

// Section is one `##` heading of the README together with
// the fenced go blocks that appear under it, in document order.
type Section struct {
	Title  string
	Blocks []string
}

// ExtractSections walks the README and collects the fenced ```go blocks per section.
// Content before the first `##` heading belongs to no section and is skipped.
// Non-go fences are ignored, they are prose illustrations, not snippets.
func ExtractSections(readme []byte) []Section {
	var (
		sections []Section
		current  *Section
		inBlock  bool
		block    strings.Builder
	)
	scanner := bufio.NewScanner(bytes.NewReader(readme))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case inBlock && strings.TrimRight(line, " \t") == "```":
			inBlock = false
			if current != nil {
				current.Blocks = append(current.Blocks, block.String())
			}
			block.Reset()
		case inBlock:
			block.WriteString(line)
			block.WriteString("\n")
		case strings.HasPrefix(line, "## "):
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
		case strings.TrimRight(line, " \t") == "```go":
			inBlock = true
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}
