package extract

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// languageExtractor bundles a tree-sitter grammar with its extraction rules.
// Instances are immutable after construction; all traversal state is local to
// each call, so one instance may serve concurrent files.
type languageExtractor struct {
	language *sitter.Language
	spec     *languageSpec
}

func newLanguageExtractor(language *sitter.Language, spec *languageSpec) *languageExtractor {
	return &languageExtractor{
		language: language,
		spec:     spec,
	}
}

// Suffixes returns the file extensions this extractor claims.
func (e *languageExtractor) Suffixes() []string {
	suffixes := make([]string, len(e.spec.suffixes))
	copy(suffixes, e.spec.suffixes)
	return suffixes
}

// ExtractDocstrings parses source and runs the declaration traversal.
func (e *languageExtractor) ExtractDocstrings(source []byte) ([]Docstring, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(e.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", e.spec.name)
	}
	defer tree.Close()

	w := &docWalker{
		spec: e.spec,
		src:  source,
	}
	if e.spec.exportBindings {
		w.exported = collectExportedIdentifiers(tree.RootNode(), source)
	}
	w.walk(tree.RootNode())

	return w.out, nil
}

// ExtractUsedSymbols parses source and runs the usage traversal.
func (e *languageExtractor) ExtractUsedSymbols(source []byte) ([]Symbol, error) {
	if e.spec.usages == nil {
		return nil, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(e.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", e.spec.name)
	}
	defer tree.Close()

	var out []Symbol
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		out = append(out, e.spec.usages(n, source)...)
		return true
	})

	return out, nil
}

// nodeText extracts the text content of a node, trimmed of surrounding
// whitespace.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return strings.TrimSpace(string(source[node.StartByte():node.EndByte()]))
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor skips the node's subtree.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		walkTree(child, visitor)
	}
}

// findChildByKind finds the first child node with the given type.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// findChildByKinds finds the first child node whose type is in kinds.
func findChildByKinds(node *sitter.Node, kinds map[string]bool) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if kinds[child.Kind()] {
			return child
		}
	}
	return nil
}
