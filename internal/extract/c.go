package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// NewCExtractor creates the extractor for C sources. C accepts plain
// /* ... */ blocks as documentation, unlike C++ and Java which demand the
// doc-style prefix.
func NewCExtractor() *languageExtractor {
	return newLanguageExtractor(sitter.NewLanguage(c.Language()), &cSpec)
}

var cSpec = languageSpec{
	name:     "c",
	suffixes: []string{".c", ".h"},
	documentable: map[string]bool{
		"function_definition": true,
		"declaration":         true,
		"field_declaration":   true,
		"struct_specifier":    true,
		"type_definition":     true,
	},
	scopes: map[string]bool{
		"struct_specifier": true,
		"type_definition":  true,
	},
	comments: &commentStyle{
		commentKinds: map[string]bool{"comment": true},
		docPrefixes:  []string{"/*"},
		skippable:    map[string]bool{";": true, "}": true},
	},
	resolveName: cResolveName,
	usages:      cUsages,
}

// cResolveName finds the most likely symbol name in a C declaration:
// typedefs defer to their struct tag, declarations prefer the function
// declarator, and anything else falls back to the first identifier leaf.
func cResolveName(node *sitter.Node, source []byte) string {
	switch node.Kind() {
	case "identifier", "field_identifier":
		return nodeText(node, source)
	case "type_definition":
		if structNode := findChildByKind(node, "struct_specifier"); structNode != nil {
			return cResolveName(structNode, source)
		}
	case "struct_specifier":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(uint(i))
			if kind := child.Kind(); kind == "type_identifier" || kind == "identifier" {
				return nodeText(child, source)
			}
		}
	}

	if declarator := findChildByKind(node, "function_declarator"); declarator != nil {
		return cResolveName(declarator, source)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if name := cResolveName(node.Child(uint(i)), source); name != Anonymous {
			return name
		}
	}

	return Anonymous
}

var cCallKinds = map[string]bool{"call_expression": true}

// cUsages matches C usage shapes: direct calls, calls through struct-member
// or parenthesized function pointers, field accesses, and bodyless struct
// type references.
func cUsages(node *sitter.Node, source []byte) []Symbol {
	switch node.Kind() {
	case "call_expression":
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return nil
		}
		switch fn.Kind() {
		case "identifier":
			return []Symbol{{Name: nodeText(fn, source), Type: "function"}}
		case "field_expression":
			field := fn.ChildByFieldName("field")
			receiver := fn.ChildByFieldName("argument")
			if field == nil {
				return nil
			}
			return []Symbol{{
				Name:   nodeText(field, source),
				Parent: nodeText(receiver, source),
				Type:   "function_pointer",
			}}
		case "parenthesized_expression":
			// (*fp)(...) style calls.
			if name := scanForIdentifier(fn, source, map[string]bool{"identifier": true}); name != "" {
				return []Symbol{{Name: name, Type: "function_pointer"}}
			}
		}

	case "field_expression":
		if isCallTarget(node, cCallKinds) {
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

	case "struct_specifier":
		// A struct specifier without a body is a type reference, e.g.
		// `struct point p;`.
		if node.ChildByFieldName("body") != nil {
			return nil
		}
		if name := node.ChildByFieldName("name"); name != nil {
			return []Symbol{{Name: nodeText(name, source), Type: "struct"}}
		}
	}

	return nil
}
