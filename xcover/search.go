package xcover

import "github.com/sirupsen/logrus"

// run drives a single solve: forcing the instance's required options into
// the root state (their undo records are discarded, since a required option
// holds for every solution) followed by the recursive search, calling visit
// once per complete solution found. visit reports whether the search should
// continue looking for more; run stops (and unwinds, restoring all mutable
// state) as soon as visit returns false or the search space is exhausted.
func (inst *Instance) run(visit func([]OptionID) bool) {
	s := newSearchState(inst)
	for _, opt := range inst.requiredOptions {
		s.Select(opt)
	}
	s.search(0, visit)
}

// search implements the recursive Algorithm X step: pop the most-constrained
// active item, branch over each option still available to cover it, and
// recurse. depth is only used for logging. It returns the number of
// solutions found in this subtree and whether the caller should keep
// searching.
func (s *searchState) search(depth int, visit func([]OptionID) bool) (found int, keepGoing bool) {
	item, ok := s.index.popMin()
	if !ok {
		// No mandatory item remains active: the current selection is a
		// complete solution.
		return 1, visit(s.stack.snapshot())
	}

	if s.avail.count(item) == 0 {
		// Contradiction: item has no options left to cover it. Reinsert it
		// (with count 0) so the parent's Unselect restores correct state.
		s.inst.logger.WithFields(logrus.Fields{
			"item": s.inst.ids.itemName(item), "depth": depth,
		}).Debug("contradiction: item has no available options")
		s.index.insert(item, 0)
		return 0, true
	}

	total := 0
	keepGoing = true
	for _, opt := range s.avail.snapshot(item) {
		s.inst.logger.WithFields(logrus.Fields{
			"item": s.inst.ids.itemName(item), "option": s.inst.ids.optionName(opt), "depth": depth,
		}).Debug("selecting option")

		rec := s.Select(opt)
		n, cont := s.search(depth+1, visit)
		total += n
		s.Unselect(opt, rec)
		s.inst.logger.WithFields(logrus.Fields{
			"item": s.inst.ids.itemName(item), "option": s.inst.ids.optionName(opt), "depth": depth,
		}).Debug("unselecting option")

		if !cont {
			keepGoing = false
			break
		}
	}

	// item was popped off the index at the top of this call, not hidden by
	// an Unselect-able operation, so this frame must reinsert it itself
	// before returning control to its caller.
	s.index.insert(item, s.avail.count(item))

	return total, keepGoing
}

func namesOf(inst *Instance, opts []OptionID) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = inst.ids.optionName(o)
	}
	return out
}

// SolveOne returns the first solution found (in MRV branching order) and
// true, or (nil, false) if the instance is unsatisfiable.
func (inst *Instance) SolveOne() ([]string, bool) {
	var result []string
	found := false
	inst.run(func(sel []OptionID) bool {
		found = true
		result = namesOf(inst, sel)
		return false
	})
	return result, found
}

// CountAll returns the total number of solutions. It is 0 exactly when
// SolveOne finds none.
func (inst *Instance) CountAll() int {
	count := 0
	inst.run(func([]OptionID) bool {
		count++
		return true
	})
	return count
}

// AllSolutions returns every solution, in MRV branching order. This is the
// same traversal CountAll performs; unlike CountAll it retains the
// solutions themselves rather than only their count.
func (inst *Instance) AllSolutions() [][]string {
	var all [][]string
	inst.run(func(sel []OptionID) bool {
		all = append(all, namesOf(inst, sel))
		return true
	})
	return all
}
