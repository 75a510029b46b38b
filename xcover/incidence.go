package xcover

import (
	"sort"

	"github.com/dkmccandless/bipartite"
)

// Instance is an immutable exact-cover problem: a universe of items (some
// mandatory, some optional), a collection of options, and the incidence
// between them.
//
// Instance is safe to reuse: SolveOne, CountAll, and AllSolutions each build
// their own fresh mutable search state and never mutate the Instance itself.
type Instance struct {
	ids *idTable

	// incidence holds the bipartite relation between options (the A side)
	// and items (the B side): option o covers item i iff incidence is
	// Adjacent(o, i). It is never mutated after Construct returns.
	incidence *bipartite.Graph

	requiredOptions []OptionID

	logger logFielder
}

// Construct validates a reducer's problem description and builds an
// Instance. covered_by must include every item named in mandatoryItems or
// optionalItems as a key, even when its option list is empty; every option
// name referenced anywhere must cover at least one item via covered_by.
//
// Construct returns a *MalformedInstance error (never panics) when the
// description is inconsistent: an empty id, a duplicate/conflicting item
// declaration, a covered_by key that wasn't declared, a declared item
// missing from covered_by, or a required option that covers nothing.
func Construct(mandatoryItems, optionalItems []string, requiredOptions []string, coveredBy map[string][]string) (*Instance, error) {
	ids := newIDTable()
	seen := make(map[string]itemKind, len(mandatoryItems)+len(optionalItems))

	declare := func(name string, kind itemKind) error {
		if name == "" {
			return &MalformedInstance{Reason: ReasonEmptyID}
		}
		if _, dup := seen[name]; dup {
			return &MalformedInstance{Reason: ReasonDuplicateItem, ID: name}
		}
		seen[name] = kind
		ids.internItem(name, kind)
		return nil
	}
	for _, name := range mandatoryItems {
		if err := declare(name, mandatory); err != nil {
			return nil, err
		}
	}
	for _, name := range optionalItems {
		if err := declare(name, optional); err != nil {
			return nil, err
		}
	}

	for name := range seen {
		if _, ok := coveredBy[name]; !ok {
			return nil, &MalformedInstance{Reason: ReasonMissingItem, ID: name}
		}
	}
	for name := range coveredBy {
		if _, ok := seen[name]; !ok {
			return nil, &MalformedInstance{Reason: ReasonUnknownItem, ID: name}
		}
	}

	incidence := bipartite.New()
	// Walk items in declaration order (mandatory, then optional) so that
	// option handles are interned in a deterministic first-appearance
	// order, independent of map iteration.
	declared := append(append([]string{}, mandatoryItems...), optionalItems...)
	for _, itemName := range declared {
		if itemName == "" {
			continue
		}
		itemID := ids.internItem(itemName, seen[itemName])
		for _, optionName := range coveredBy[itemName] {
			if optionName == "" {
				return nil, &MalformedInstance{Reason: ReasonEmptyID}
			}
			optionID := ids.internOption(optionName)
			incidence.Add(optionID, itemID)
		}
	}

	required := make([]OptionID, 0, len(requiredOptions))
	for _, name := range requiredOptions {
		id, ok := ids.optionIndex[name]
		if !ok {
			return nil, &MalformedInstance{Reason: ReasonUnknownOption, ID: name}
		}
		required = append(required, id)
	}

	return &Instance{
		ids:             ids,
		incidence:       incidence,
		requiredOptions: required,
		logger:          discardLogger{},
	}, nil
}

// coversOf returns the items option o covers, in ascending ItemID order
// (i.e. declaration order), a fixed, deterministic iteration order
// independent of whatever internal order *bipartite.Graph happens to use.
func (inst *Instance) coversOf(o OptionID) []ItemID {
	adj := inst.incidence.AdjToA(o)
	items := make([]ItemID, len(adj))
	for i, e := range adj {
		items[i] = e.(ItemID)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// coveredByOf returns the options that cover item i, in ascending OptionID
// order (first-appearance order). This is the immutable list the engine
// reinstates options from on backtrack.
func (inst *Instance) coveredByOf(i ItemID) []OptionID {
	adj := inst.incidence.AdjToB(i)
	opts := make([]OptionID, len(adj))
	for j, s := range adj {
		opts[j] = s.(OptionID)
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i] < opts[j] })
	return opts
}

func (inst *Instance) initialAvailableCount(i ItemID) int {
	return inst.incidence.DegB(i)
}
