package xcover

import "sort"

// availability is a mutable, per-item set of the options currently eligible
// to cover that item. It is seeded from the instance's immutable
// covered_by relation and then mutated in place by the cover/uncover
// engine, always under an undo-log discipline.
type availability struct {
	sets []map[OptionID]struct{} // indexed by ItemID
}

func newAvailability(inst *Instance) *availability {
	a := &availability{sets: make([]map[OptionID]struct{}, inst.ids.numItems())}
	for i := range a.sets {
		opts := inst.coveredByOf(ItemID(i))
		set := make(map[OptionID]struct{}, len(opts))
		for _, o := range opts {
			set[o] = struct{}{}
		}
		a.sets[i] = set
	}
	return a
}

func (a *availability) add(item ItemID, opt OptionID) {
	a.sets[item][opt] = struct{}{}
}

func (a *availability) remove(item ItemID, opt OptionID) {
	delete(a.sets[item], opt)
}

func (a *availability) contains(item ItemID, opt OptionID) bool {
	_, ok := a.sets[item][opt]
	return ok
}

func (a *availability) count(item ItemID) int {
	return len(a.sets[item])
}

// snapshot returns an immutable, deterministically ordered copy of the
// options currently available for item, suitable for iterating while
// a.sets[item] is mutated underneath it.
func (a *availability) snapshot(item ItemID) []OptionID {
	set := a.sets[item]
	out := make([]OptionID, 0, len(set))
	for o := range set {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
