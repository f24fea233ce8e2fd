package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

// NewCppExtractor creates the extractor for C++ sources. Documentation
// blocks must be Doxygen-style (/** or /*!); plain block comments are not
// documentation and stop the comment scan.
func NewCppExtractor() *languageExtractor {
	return newLanguageExtractor(sitter.NewLanguage(cpp.Language()), &cppSpec)
}

var cppSpec = languageSpec{
	name:     "cpp",
	suffixes: []string{".cpp", ".hpp", ".cc", ".hh"},
	documentable: map[string]bool{
		"function_definition":        true,
		"declaration":                true,
		"field_declaration":          true,
		"class_specifier":            true,
		"struct_specifier":           true,
		"type_definition":            true,
		"namespace_definition":       true,
		"namespace_alias_definition": true,
	},
	scopes: map[string]bool{
		"class_specifier":      true,
		"struct_specifier":     true,
		"type_definition":      true,
		"namespace_definition": true,
	},
	comments: &commentStyle{
		commentKinds: map[string]bool{"comment": true},
		docPrefixes:  []string{"/**", "/*!"},
		skippable:    map[string]bool{";": true, "}": true},
	},
	resolveName: fieldNameOrScan(map[string]bool{
		"identifier":       true,
		"field_identifier": true,
		"type_identifier":  true,
	}),
	usages: cppUsages,
}

var cppCallKinds = map[string]bool{"call_expression": true}

// cppUsages matches C++ usage shapes: plain and qualified calls, member
// calls, field accesses, template instantiations, constructions, and
// namespace imports.
func cppUsages(node *sitter.Node, source []byte) []Symbol {
	switch node.Kind() {
	case "call_expression":
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return nil
		}
		switch fn.Kind() {
		case "identifier":
			return []Symbol{{Name: nodeText(fn, source), Type: "function"}}
		case "qualified_identifier":
			parent, name := splitQualified(nodeText(fn, source), "::")
			return []Symbol{{Name: name, Parent: parent, Type: "function"}}
		case "field_expression":
			field := fn.ChildByFieldName("field")
			receiver := fn.ChildByFieldName("argument")
			if field == nil {
				return nil
			}
			return []Symbol{{
				Name:   nodeText(field, source),
				Parent: nodeText(receiver, source),
				Type:   "method",
			}}
		case "template_function":
			if name := fn.ChildByFieldName("name"); name != nil {
				return []Symbol{{Name: nodeText(name, source), Type: "template"}}
			}
		}

	case "template_type":
		if name := node.ChildByFieldName("name"); name != nil {
			return []Symbol{{Name: nodeText(name, source), Type: "template"}}
		}

	case "new_expression":
		typeNode := node.ChildByFieldName("type")
		if typeNode == nil {
			return nil
		}
		parent, name := splitQualified(nodeText(typeNode, source), "::")
		// Drop template arguments from the constructed type name.
		if i := strings.Index(name, "<"); i >= 0 {
			name = name[:i]
		}
		return []Symbol{{Name: name, Parent: parent, Type: "constructor"}}

	case "field_expression":
		if isCallTarget(node, cppCallKinds) {
			return nil
		}
		field := node.ChildByFieldName("field")
		receiver := node.ChildByFieldName("argument")
		if field == nil {
			return nil
		}
		return []Symbol{{
			Name:   nodeText(field, source),
			Parent: nodeText(receiver, source),
			Type:   "field",
		}}

	case "using_declaration":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(uint(i))
			switch child.Kind() {
			case "identifier", "namespace_identifier", "qualified_identifier":
				parent, name := splitQualified(nodeText(child, source), "::")
				return []Symbol{{Name: name, Parent: parent, Type: "namespace"}}
			}
		}
	}

	return nil
}
