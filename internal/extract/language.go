package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// languageSpec is the per-language configuration table driving the generic
// declaration and usage traversals. Behavioral differences between languages
// live here as data, not as separate control flow.
type languageSpec struct {
	name     string
	suffixes []string

	// documentable are the grammar kinds that may carry a doc comment.
	documentable map[string]bool

	// scopes are the documentable kinds whose subtree establishes a new
	// parent-attribution scope.
	scopes map[string]bool

	// comments configures the comment-adjacency resolver. Nil for languages
	// that resolve docstrings positionally from the body instead.
	comments *commentStyle

	// bodyDocstrings selects positional in-body docstring resolution
	// (Python): the first lone-string expression statement of the body.
	bodyDocstrings bool

	// resolveName finds the declaration's identifier, or Anonymous.
	resolveName func(node *sitter.Node, source []byte) string

	// typeLabel maps a grammar kind to the record's declaration-kind tag.
	// When nil, underscores become spaces.
	typeLabel func(kind string) string

	// propertyKinds are emitted with the fixed "property" label (TS property
	// signatures and public field definitions).
	propertyKinds map[string]bool

	// exportBindings enables the exported bound-function handling: variable
	// bindings whose initializer is a function literal are documented only if
	// their identifier appears in an export clause somewhere in the file.
	exportBindings bool

	// bindingValueKinds are the initializer kinds recognized as function
	// literals for bound-function documentation.
	bindingValueKinds map[string]bool

	// usages pattern-matches one node against the language's usage shapes,
	// returning zero or more Symbol records. Nil when the language has no
	// usage extraction.
	usages func(node *sitter.Node, source []byte) []Symbol
}

func (s *languageSpec) labelFor(kind string) string {
	if s.typeLabel != nil {
		return s.typeLabel(kind)
	}
	return strings.ReplaceAll(kind, "_", " ")
}

// bindingDeclKinds wrap variable_declarator lists in the JS/TS grammars.
var bindingDeclKinds = map[string]bool{
	"variable_declaration": true,
	"lexical_declaration":  true,
}

// docWalker carries the state of one declaration traversal over one file.
type docWalker struct {
	spec     *languageSpec
	src      []byte
	scopes   scopeStack
	exported map[string]bool
	out      []Docstring
}

func (w *docWalker) emit(name, label, doc string) {
	w.out = append(w.out, Docstring{
		Name:      name,
		Parent:    w.scopes.top(),
		Type:      label,
		Docstring: doc,
	})
}

// walk visits node and its subtree pre-order, pairing documentable
// declarations with their comments and maintaining the scope stack.
func (w *docWalker) walk(node *sitter.Node) {
	kind := node.Kind()
	pushed := false

	switch {
	case w.spec.documentable[kind]:
		doc := w.resolveDoc(node)
		name := w.spec.resolveName(node, w.src)
		if doc != "" {
			w.emit(name, w.spec.labelFor(kind), doc)
		}
		// The scope exists whether or not the declaration is documented.
		if w.spec.scopes[kind] {
			w.scopes.push(name)
			pushed = true
		}

	case w.spec.propertyKinds[kind]:
		if doc := w.resolveDoc(node); doc != "" {
			w.emit(w.spec.resolveName(node, w.src), "property", doc)
		}

	case w.spec.exportBindings && bindingDeclKinds[kind]:
		w.emitBoundFunctions(node)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		w.walk(node.Child(uint(i)))
	}

	if pushed {
		w.scopes.pop()
	}
}

func (w *docWalker) resolveDoc(node *sitter.Node) string {
	if w.spec.bodyDocstrings {
		return docstringFromBody(node, w.src)
	}
	return w.spec.comments.leadingComment(node, w.src)
}

// emitBoundFunctions documents variable bindings whose initializer is a
// function or arrow-function literal, gated on the identifier appearing in an
// export clause of the same file.
func (w *docWalker) emitBoundFunctions(node *sitter.Node) {
	for i := 0; i < int(node.ChildCount()); i++ {
		declarator := node.Child(uint(i))
		if declarator.Kind() != "variable_declarator" {
			continue
		}

		identifier := findChildByKind(declarator, "identifier")
		value := findChildByKinds(declarator, w.spec.bindingValueKinds)
		if identifier == nil || value == nil {
			continue
		}

		name := nodeText(identifier, w.src)
		if !w.exported[name] {
			continue
		}

		doc := w.spec.comments.leadingComment(declarator, w.src)
		if doc == "" {
			continue
		}

		label := "function expression"
		if value.Kind() == "arrow_function" {
			label = "arrow function"
		}
		w.emit(name, label, doc)
	}
}

// collectExportedIdentifiers gathers the identifiers named in
// `export { foo, bar }` clauses in a single pass over the file, before the
// declaration traversal consults them.
func collectExportedIdentifiers(root *sitter.Node, source []byte) map[string]bool {
	exported := make(map[string]bool)
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "export_statement" {
			return true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(uint(i))
			if child.Kind() != "export_clause" {
				continue
			}
			for j := 0; j < int(child.ChildCount()); j++ {
				switch spec := child.Child(uint(j)); spec.Kind() {
				case "export_specifier":
					if name := spec.ChildByFieldName("name"); name != nil {
						exported[nodeText(name, source)] = true
					}
				case "identifier":
					exported[nodeText(spec, source)] = true
				}
			}
		}
		return true
	})
	return exported
}

// docstringFromBody resolves a Python-style docstring: the first expression
// statement wrapping a lone string literal inside the node's body block (or
// among the node's own children for the module root).
func docstringFromBody(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == "block" {
			for j := 0; j < int(child.ChildCount()); j++ {
				if s := loneStringChild(child.Child(uint(j))); s != nil {
					return nodeText(s, source)
				}
			}
		} else if s := loneStringChild(child); s != nil {
			return nodeText(s, source)
		}
	}
	return ""
}

// loneStringChild returns the string node of an expression statement whose
// sole child is a string literal, or nil.
func loneStringChild(node *sitter.Node) *sitter.Node {
	if node == nil || node.Kind() != "expression_statement" {
		return nil
	}
	if node.ChildCount() != 1 {
		return nil
	}
	if child := node.Child(0); child.Kind() == "string" {
		return child
	}
	return nil
}

// fieldNameOrScan resolves a name by preferring the grammar's "name" field,
// falling back to the first identifier-shaped leaf in the subtree.
func fieldNameOrScan(identifierKinds map[string]bool) func(*sitter.Node, []byte) string {
	return func(node *sitter.Node, source []byte) string {
		if name := node.ChildByFieldName("name"); name != nil {
			return nodeText(name, source)
		}
		if name := scanForIdentifier(node, source, identifierKinds); name != "" {
			return name
		}
		return Anonymous
	}
}

// scanForIdentifier depth-first searches the subtree for the first leaf whose
// kind is in identifierKinds.
func scanForIdentifier(node *sitter.Node, source []byte, identifierKinds map[string]bool) string {
	if identifierKinds[node.Kind()] {
		return nodeText(node, source)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if name := scanForIdentifier(node.Child(uint(i)), source, identifierKinds); name != "" {
			return name
		}
	}
	return ""
}
