package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// NewPythonExtractor creates the extractor for Python sources. Python never
// scans comments: a docstring is the first lone-string expression statement
// of a module, class, or function body.
func NewPythonExtractor() *languageExtractor {
	return newLanguageExtractor(sitter.NewLanguage(python.Language()), &pythonSpec)
}

var pythonSpec = languageSpec{
	name:     "python",
	suffixes: []string{".py"},
	documentable: map[string]bool{
		"module":              true,
		"function_definition": true,
		"class_definition":    true,
	},
	scopes: map[string]bool{
		"class_definition": true,
	},
	bodyDocstrings: true,
	resolveName:    pythonResolveName,
	typeLabel: func(kind string) string {
		return strings.TrimSuffix(kind, "_definition")
	},
	usages: pythonUsages,
}

func pythonResolveName(node *sitter.Node, source []byte) string {
	if node.Kind() == "module" {
		return ModuleName
	}
	if name := node.ChildByFieldName("name"); name != nil {
		return nodeText(name, source)
	}
	if ident := findChildByKind(node, "identifier"); ident != nil {
		return nodeText(ident, source)
	}
	return Anonymous
}

var pythonCallKinds = map[string]bool{"call": true}

// pythonUsages matches Python usage shapes: calls on bare names (casing
// heuristic), calls on attributes, and bare attribute accesses.
func pythonUsages(node *sitter.Node, source []byte) []Symbol {
	switch node.Kind() {
	case "call":
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return nil
		}
		switch fn.Kind() {
		case "identifier":
			text := nodeText(fn, source)
			kind := "function"
			if capitalized(text) {
				kind = "class"
			}
			return []Symbol{{Name: text, Type: kind}}
		case "attribute":
			attr := fn.ChildByFieldName("attribute")
			object := fn.ChildByFieldName("object")
			if attr == nil {
				return nil
			}
			return []Symbol{{
				Name:   nodeText(attr, source),
				Parent: nodeText(object, source),
				Type:   "method",
			}}
		}

	case "attribute":
		if isCallTarget(node, pythonCallKinds) {
			return nil
		}
		attr := node.ChildByFieldName("attribute")
		object := node.ChildByFieldName("object")
		if attr == nil {
			return nil
		}
		return []Symbol{{
			Name:   nodeText(attr, source),
			Parent: nodeText(object, source),
			Type:   "field",
		}}
	}

	return nil
}
