package extract

// Anonymous is the sentinel name used when a declaration has no resolvable
// identifier.
const Anonymous = "<anonymous>"

// ModuleName is the name assigned to a file-level module docstring.
const ModuleName = "<module>"

// Docstring represents one documentation comment bound to one declaration.
// File is empty until the collector injects the source path after extraction.
type Docstring struct {
	File      string `json:"file,omitempty"`
	Name      string `json:"name"`
	Parent    string `json:"parent,omitempty"`
	Type      string `json:"type"`
	Docstring string `json:"docstring"`
}

// Symbol represents one syntactic usage occurrence of a symbol: a call, a
// field access, a construction, or similar. Occurrences are not deduplicated
// and are never resolved to a defining declaration.
type Symbol struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
	Type   string `json:"type"`
}

// Extractor is the per-language extraction capability consumed by the
// collector.
type Extractor interface {
	// Suffixes returns the file extensions this extractor claims (e.g. ".c", ".h").
	Suffixes() []string

	// ExtractDocstrings parses source and returns all documentation comments
	// paired with their declarations, in document order.
	ExtractDocstrings(source []byte) ([]Docstring, error)
}

// UsageExtractor is the optional symbol-usage capability. The collector
// type-asserts for it; extractors without usage support simply contribute no
// Symbol records.
type UsageExtractor interface {
	// ExtractUsedSymbols parses source and returns all symbol usage
	// occurrences, in document order.
	ExtractUsedSymbols(source []byte) ([]Symbol, error)
}
