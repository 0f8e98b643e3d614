package decl

import "fmt"

// stackEntry is one open ancestor: the indentation depth it was declared at
// and its control name.
type stackEntry struct {
	depth int
	name  string
}

// parentStack tracks the chain of currently-open ancestors while parsing.
// It is seeded with a sentinel at depth -1 so top-level declarations resolve
// to an empty parent name.
type parentStack struct {
	entries []stackEntry
}

func newParentStack() *parentStack {
	return &parentStack{entries: []stackEntry{{depth: -1}}}
}

// popTo pops entries at or deeper than the given depth and returns the name
// on top of the stack afterward, which is the inferred parent for a line
// declared at that depth.
func (s *parentStack) popTo(depth int) string {
	for s.top().depth >= depth {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return s.top().name
}

// push records a newly declared control as the open ancestor at its depth.
// popTo guarantees the top is strictly shallower, so a violation here means
// the parser itself is broken.
func (s *parentStack) push(depth int, name string) error {
	if depth <= s.top().depth {
		return fmt.Errorf("push at depth %d onto open ancestor %q at depth %d",
			depth, s.top().name, s.top().depth)
	}
	s.entries = append(s.entries, stackEntry{depth: depth, name: name})
	return nil
}

func (s *parentStack) top() stackEntry {
	return s.entries[len(s.entries)-1]
}
