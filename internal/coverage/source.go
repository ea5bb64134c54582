package coverage

import (
	"path/filepath"
	"regexp"
)

const (
	coberturaReportPath = "target/site/cobertura/frame-summary.html"
	jacocoReportPath    = "target/site/jacoco/index.html"

	coberturaElement = `<span class="text">(.*?)</span>`
	jacocoElement    = `<td class="bar">(.*?)</td>`
)

// Source describes where a report lives and what the two figures look like in it.
type Source struct {
	Mode         Mode
	RelativePath string
	pattern      *regexp.Regexp
}

var sources = map[Mode]Source{
	Cobertura: newSource(Cobertura, coberturaReportPath, coberturaElement),
	Jacoco:    newSource(Jacoco, jacocoReportPath, jacocoElement),
}

func newSource(mode Mode, relativePath string, element string) Source {
	return Source{
		Mode:         mode,
		RelativePath: relativePath,
		pattern:      combinedPattern(element),
	}
}

// combinedPattern matches the first element, then lazily skips anything
// (line breaks included) up to the next occurrence of the same element.
func combinedPattern(element string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + element + `.*?` + element)
}

func SourceFor(mode Mode) Source {
	source, ok := sources[mode]
	if !ok {
		return sources[Jacoco]
	}
	return source
}

// Path resolves the report location against a project root.
func (source Source) Path(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(root, filepath.FromSlash(source.RelativePath))
}

// Find returns the first pair of captured fragments, or false when the
// content holds fewer than two matching elements.
func (source Source) Find(content []byte) (Fragments, bool) {
	matches := source.pattern.FindSubmatch(content)
	if len(matches) < 3 {
		return Fragments{}, false
	}
	return Fragments{
		Line:   string(matches[1]),
		Branch: string(matches[2]),
	}, true
}

// Fragments holds the raw text captured for the line and branch figures.
type Fragments struct {
	Line   string
	Branch string
}
