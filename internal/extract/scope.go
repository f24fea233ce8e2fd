package extract

// scopeStack tracks the names of enclosing scope-defining declarations during
// one traversal. It is owned by a single extraction call and never shared.
type scopeStack []string

func (s *scopeStack) push(name string) {
	*s = append(*s, name)
}

func (s *scopeStack) pop() {
	if n := len(*s); n > 0 {
		*s = (*s)[:n-1]
	}
}

// top returns the innermost enclosing scope name, or "" when at top level.
func (s scopeStack) top() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}
