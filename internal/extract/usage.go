package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// capitalized reports whether a name starts with an upper-case rune. Usage
// shapes without syntactic disambiguation classify capitalized targets as
// class/constructor usage. Heuristic, preserved as-is.
func capitalized(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// splitQualified decomposes a qualified name like "A::B::c" into its last
// part and the joined remainder. The remainder is "" for unqualified names.
func splitQualified(text, sep string) (parent, name string) {
	parts := strings.Split(text, sep)
	if len(parts) == 1 {
		return "", text
	}
	return strings.Join(parts[:len(parts)-1], sep), parts[len(parts)-1]
}

// isCallTarget reports whether node is the function child of an enclosing
// call-shaped parent. Field/attribute accesses in that position are reported
// as calls, not as accesses, so the access shape must stand down.
func isCallTarget(node *sitter.Node, callKinds map[string]bool) bool {
	parent := node.Parent()
	if parent == nil || !callKinds[parent.Kind()] {
		return false
	}
	fn := parent.ChildByFieldName("function")
	return fn != nil && fn.Id() == node.Id()
}
