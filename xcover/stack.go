package xcover

// selectionStack is the ordered sequence of options chosen on the current
// branch, root to current depth.
type selectionStack struct {
	options []OptionID
}

func newSelectionStack() *selectionStack {
	return &selectionStack{}
}

func (s *selectionStack) push(o OptionID) {
	s.options = append(s.options, o)
}

// pop removes the top of the stack. It panics with an InvariantViolation if
// the stack is empty or the top doesn't match want, since that means
// Select/Unselect calls have gone out of sync with each other.
func (s *selectionStack) pop(want OptionID) {
	n := len(s.options)
	assertf(n > 0, "Unselect called on empty selection stack")
	top := s.options[n-1]
	assertf(top == want, "Unselect(%d) but top of selection stack is %d", want, top)
	s.options = s.options[:n-1]
}

// snapshot returns a copy of the stack's current contents, safe to retain
// across further pushes/pops (used when emitting a solution).
func (s *selectionStack) snapshot() []OptionID {
	out := make([]OptionID, len(s.options))
	copy(out, s.options)
	return out
}
