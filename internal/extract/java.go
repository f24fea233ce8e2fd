package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// NewJavaExtractor creates the extractor for Java sources. Only Javadoc
// blocks (/**) count as block documentation; the backward comment scan steps
// over modifier lists so annotations do not break a // run.
func NewJavaExtractor() *languageExtractor {
	return newLanguageExtractor(sitter.NewLanguage(java.Language()), &javaSpec)
}

var javaSpec = languageSpec{
	name:     "java",
	suffixes: []string{".java"},
	documentable: map[string]bool{
		"class_declaration":       true,
		"interface_declaration":   true,
		"method_declaration":      true,
		"constructor_declaration": true,
		"field_declaration":       true,
	},
	scopes: map[string]bool{
		"class_declaration":     true,
		"interface_declaration": true,
	},
	comments: &commentStyle{
		commentKinds: map[string]bool{"block_comment": true, "line_comment": true},
		docPrefixes:  []string{"/**"},
		skippable:    map[string]bool{";": true, "modifiers": true},
	},
	resolveName: fieldNameOrScan(map[string]bool{"identifier": true}),
	usages:      javaUsages,
}

// javaUsages matches Java usage shapes: method invocations, object
// creations, and field accesses. Receiverless invocations fall back to the
// casing heuristic since the grammar cannot tell a static factory from a
// local call.
func javaUsages(node *sitter.Node, source []byte) []Symbol {
	switch node.Kind() {
	case "method_invocation":
		name := node.ChildByFieldName("name")
		if name == nil {
			return nil
		}
		if object := node.ChildByFieldName("object"); object != nil {
			return []Symbol{{
				Name:   nodeText(name, source),
				Parent: nodeText(object, source),
				Type:   "method",
			}}
		}
		text := nodeText(name, source)
		kind := "function"
		if capitalized(text) {
			kind = "class"
		}
		return []Symbol{{Name: text, Type: kind}}

	case "object_creation_expression":
		typeNode := node.ChildByFieldName("type")
		if typeNode == nil {
			return nil
		}
		name := scanForIdentifier(typeNode, source, map[string]bool{
			"type_identifier": true,
			"identifier":      true,
		})
		if name == "" {
			return nil
		}
		return []Symbol{{Name: name, Type: "constructor"}}

	case "field_access":
		field := node.ChildByFieldName("field")
		object := node.ChildByFieldName("object")
		if field == nil {
			return nil
		}
		return []Symbol{{
			Name:   nodeText(field, source),
			Parent: nodeText(object, source),
			Type:   "field",
		}}
	}

	return nil
}
