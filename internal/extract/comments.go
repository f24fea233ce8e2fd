package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// commentStyle describes how one language marks documentation comments and
// which sibling nodes a backward scan may step over.
type commentStyle struct {
	// commentKinds are the grammar kinds that represent comments. C-family
	// grammars use a single "comment" kind; Java splits "block_comment" and
	// "line_comment".
	commentKinds map[string]bool

	// docPrefixes mark a block comment as documentation. A matching block
	// wins outright and ends the scan. C accepts plain "/*"; C++ requires
	// "/**" or "/*!"; Java and the JS/TS family require "/**".
	docPrefixes []string

	// skippable sibling kinds do not break a contiguous single-line comment
	// run (";" and "}" for the brace family, ";" and "modifiers" for Java).
	skippable map[string]bool

	// wrapperKinds are enclosing wrapper constructs whose own siblings are
	// retried when the declaration's siblings yield nothing (export and
	// binding-list wrappers in JS/TS).
	wrapperKinds map[string]bool
}

// leadingComment returns the best-candidate comment text immediately
// preceding node, or "" when none qualifies.
func (cs *commentStyle) leadingComment(node *sitter.Node, source []byte) string {
	if text := cs.scanSiblings(node, source); text != "" {
		return text
	}

	// Declarations nested in export/binding wrappers may carry their comment
	// on the wrapper instead.
	for parent := node.Parent(); parent != nil && cs.wrapperKinds[parent.Kind()]; parent = parent.Parent() {
		if text := cs.scanSiblings(parent, source); text != "" {
			return text
		}
	}

	return ""
}

// scanSiblings walks the node's preceding siblings in reverse. A doc-style
// block comment wins exclusively; contiguous single-line comments are joined
// top-to-bottom; anything else that is not skippable stops the scan.
func (cs *commentStyle) scanSiblings(node *sitter.Node, source []byte) string {
	var collected []string

scan:
	for prev := node.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		kind := prev.Kind()
		switch {
		case cs.commentKinds[kind]:
			text := nodeText(prev, source)
			switch {
			case cs.isDocBlock(text):
				return text
			case strings.HasPrefix(text, "//"):
				collected = append(collected, text)
			default:
				// A non-doc block comment is not documentation and nothing
				// past it counts either.
				break scan
			}
		case cs.skippable[kind]:
			continue
		default:
			break scan
		}
	}

	if len(collected) == 0 {
		return ""
	}

	// Collected in reverse scan order; restore source order.
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return strings.Join(collected, "\n")
}

func (cs *commentStyle) isDocBlock(text string) bool {
	for _, prefix := range cs.docPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}
