package colr

// visitedSet tracks the paint refs on the current recursion path. It is
// a call-stack mirror, not an all-time visited marker: refs are removed
// on return, so diamond-shaped (shared but acyclic) subgraphs evaluate
// normally while true cycles are refused.
type visitedSet map[PaintRef]struct{}

// enter adds ref to the active path. Returns false without mutating the
// set if ref is already on the path, which means the graph has a cycle.
func (s visitedSet) enter(ref PaintRef) bool {
	if _, ok := s[ref]; ok {
		return false
	}
	s[ref] = struct{}{}
	return true
}

// leave removes ref from the active path. Every successful enter must
// be paired with a leave on all exit paths.
func (s visitedSet) leave(ref PaintRef) {
	delete(s, ref)
}
