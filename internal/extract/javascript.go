package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// NewJavaScriptExtractor creates the extractor for JavaScript sources.
// Besides plain declarations it documents exported variable bindings whose
// initializer is a function or arrow-function literal.
func NewJavaScriptExtractor() *languageExtractor {
	return newLanguageExtractor(sitter.NewLanguage(javascript.Language()), &javascriptSpec)
}

var jsIdentifierKinds = map[string]bool{
	"identifier":          true,
	"type_identifier":     true,
	"property_identifier": true,
}

var jsBindingValueKinds = map[string]bool{
	"arrow_function":      true,
	"function":            true,
	"function_expression": true,
}

var jsCommentStyle = commentStyle{
	commentKinds: map[string]bool{"comment": true},
	docPrefixes:  []string{"/**"},
	skippable:    map[string]bool{";": true, "}": true},
	wrapperKinds: map[string]bool{
		"export_statement":    true,
		"lexical_declaration": true,
	},
}

var javascriptSpec = languageSpec{
	name:     "javascript",
	suffixes: []string{".js", ".jsx"},
	documentable: map[string]bool{
		"function_declaration": true,
		"method_definition":    true,
		"class_declaration":    true,
	},
	scopes: map[string]bool{
		"class_declaration": true,
	},
	comments:          &jsCommentStyle,
	resolveName:       fieldNameOrScan(jsIdentifierKinds),
	exportBindings:    true,
	bindingValueKinds: jsBindingValueKinds,
	usages:            jsUsages,
}

// jsUsages matches the JS/TS usage shapes, shared by both grammars: calls on
// bare identifiers (casing heuristic), member calls, and constructions.
func jsUsages(node *sitter.Node, source []byte) []Symbol {
	switch node.Kind() {
	case "call_expression":
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
		case "member_expression":
			property := fn.ChildByFieldName("property")
			object := fn.ChildByFieldName("object")
			if property == nil {
				return nil
			}
			return []Symbol{{
				Name:   nodeText(property, source),
				Parent: nodeText(object, source),
				Type:   "method",
			}}
		}

	case "new_expression":
		ctor := node.ChildByFieldName("constructor")
		if ctor == nil {
			return nil
		}
		switch ctor.Kind() {
		case "identifier":
			return []Symbol{{Name: nodeText(ctor, source), Type: "constructor"}}
		case "member_expression":
			property := ctor.ChildByFieldName("property")
			object := ctor.ChildByFieldName("object")
			if property == nil {
				return nil
			}
			return []Symbol{{
				Name:   nodeText(property, source),
				Parent: nodeText(object, source),
				Type:   "constructor",
			}}
		}
	}

	return nil
}
