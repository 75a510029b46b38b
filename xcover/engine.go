package xcover

// undoRecord is the data Select produces and Unselect consumes to exactly
// reverse it: the set of options hidden as a side effect of selecting one
// option.
type undoRecord map[OptionID]struct{}

// searchState is one solve's mutable view of an Instance: the Availability
// State, Item Priority Index, and Selection Stack. A fresh searchState is
// built for every SolveOne/CountAll/AllSolutions call, so results never
// depend on state left over from a previous call.
type searchState struct {
	inst  *Instance
	avail *availability
	index *priorityIndex
	stack *selectionStack
}

func newSearchState(inst *Instance) *searchState {
	s := &searchState{
		inst:  inst,
		avail: newAvailability(inst),
		index: newPriorityIndex(),
		stack: newSelectionStack(),
	}
	for i := 0; i < inst.ids.numItems(); i++ {
		item := ItemID(i)
		if inst.ids.isMandatory(item) {
			s.index.insert(item, inst.initialAvailableCount(item))
		}
	}
	return s
}

// Select commits "option opt is in the solution" relative to the current
// branch and returns the undo record needed to reverse it.
func (s *searchState) Select(opt OptionID) undoRecord {
	s.stack.push(opt)
	hidden := make(undoRecord)

	for _, i := range s.inst.coversOf(opt) {
		// Cover the item: it is no longer a branching candidate.
		s.index.remove(i)

		// Hide its competing options. available[i] is snapshotted because
		// the inner loop mutates the very set being iterated (it includes
		// opt itself, among others).
		for _, o2 := range s.avail.snapshot(i) {
			for _, j := range s.inst.coversOf(o2) {
				s.avail.remove(j, o2)
				if s.inst.ids.isMandatory(j) {
					s.index.update(j, s.avail.count(j))
				}
			}
			hidden[o2] = struct{}{}
		}
	}

	return hidden
}

// Unselect is the exact inverse of Select: reinstating every option in
// undo, in the same item-by-item shape Select hid them, then popping opt
// off the Selection Stack.
func (s *searchState) Unselect(opt OptionID, undo undoRecord) {
	for _, i := range s.inst.coversOf(opt) {
		// Iterate the immutable covered_by[i], not current availability,
		// filtering by membership in the undo record: an option covering
		// more than one item in covers[opt] is reinstated once per such
		// item, which is correct for per-item availability even though the
		// corresponding priority update then runs more than once (harmless:
		// it always recomputes the same final count).
		for _, o2 := range s.inst.coveredByOf(i) {
			if _, hidden := undo[o2]; !hidden {
				continue
			}
			for _, j := range s.inst.coversOf(o2) {
				s.avail.add(j, o2)
				if s.inst.ids.isMandatory(j) {
					s.index.update(j, s.avail.count(j))
				}
			}
		}
		if s.inst.ids.isMandatory(i) {
			s.index.insert(i, s.avail.count(i))
		}
	}
	s.stack.pop(opt)
}
