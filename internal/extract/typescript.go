package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// NewTypeScriptExtractor creates the extractor for TypeScript sources. The
// TypeScript grammar also parses TSX well enough for comment and declaration
// extraction, so both extensions route here.
func NewTypeScriptExtractor() *languageExtractor {
	return newLanguageExtractor(sitter.NewLanguage(typescript.LanguageTypescript()), &typescriptSpec)
}

var typescriptSpec = languageSpec{
	name:     "typescript",
	suffixes: []string{".ts", ".tsx"},
	documentable: map[string]bool{
		"function_declaration":   true,
		"method_definition":      true,
		"class_declaration":      true,
		"interface_declaration":  true,
		"type_alias_declaration": true,
	},
	scopes: map[string]bool{
		"class_declaration":     true,
		"interface_declaration": true,
	},
	comments:    &jsCommentStyle,
	resolveName: fieldNameOrScan(jsIdentifierKinds),
	propertyKinds: map[string]bool{
		"property_signature":      true,
		"public_field_definition": true,
	},
	exportBindings:    true,
	bindingValueKinds: jsBindingValueKinds,
	usages:            jsUsages,
}
