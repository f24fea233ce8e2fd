package extract

import (
	"fmt"
	"strings"
)

// Name returns the language identifier (e.g. "cpp", "python").
func (e *languageExtractor) Name() string {
	return e.spec.name
}

// AllExtractors returns extractors for every supported language, in
// registration order. Later entries win contested file extensions.
func AllExtractors() []Extractor {
	return []Extractor{
		NewCExtractor(),
		NewCppExtractor(),
		NewJavaExtractor(),
		NewJavaScriptExtractor(),
		NewTypeScriptExtractor(),
		NewPythonExtractor(),
	}
}

// ExtractorsFor returns extractors for the named languages only. Valid names
// are c, cpp, java, javascript, typescript, python.
func ExtractorsFor(names []string) ([]Extractor, error) {
	if len(names) == 0 {
		return AllExtractors(), nil
	}

	byName := make(map[string]Extractor)
	for _, e := range AllExtractors() {
		byName[e.(*languageExtractor).Name()] = e
	}

	var out []Extractor
	for _, name := range names {
		e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unsupported language: %q", name)
		}
		out = append(out, e)
	}
	return out, nil
}
