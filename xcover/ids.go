package xcover

// ItemID is the interned handle for an item, assigned in declaration order:
// mandatory items first (in the order passed to Construct), then optional
// items. Using small integers instead of strings in the hot paths keeps
// Select/Unselect proportional to the affected neighborhood rather than to
// string-hashing overhead.
type ItemID int

// OptionID is the interned handle for an option, assigned in first-appearance
// order while scanning covered_by (item by item, in item declaration order;
// within an item, in the order its options were listed).
type OptionID int

// itemKind distinguishes mandatory items, which must be covered by the
// search, from optional items, which may be covered at most once but are
// never placed in the Item Priority Index.
type itemKind uint8

const (
	mandatory itemKind = iota
	optional
)

// idTable interns item and option names to small integer handles and back.
type idTable struct {
	itemNames []string
	itemIndex map[string]ItemID
	itemKinds []itemKind

	optionNames []string
	optionIndex map[string]OptionID
}

func newIDTable() *idTable {
	return &idTable{
		itemIndex:   make(map[string]ItemID),
		optionIndex: make(map[string]OptionID),
	}
}

// internItem assigns (or looks up) the handle for name with the given kind.
// The kind of the first interning call wins; callers are expected to have
// already validated that an item isn't declared with conflicting kinds.
func (t *idTable) internItem(name string, kind itemKind) ItemID {
	if id, ok := t.itemIndex[name]; ok {
		return id
	}
	id := ItemID(len(t.itemNames))
	t.itemNames = append(t.itemNames, name)
	t.itemKinds = append(t.itemKinds, kind)
	t.itemIndex[name] = id
	return id
}

func (t *idTable) internOption(name string) OptionID {
	if id, ok := t.optionIndex[name]; ok {
		return id
	}
	id := OptionID(len(t.optionNames))
	t.optionNames = append(t.optionNames, name)
	t.optionIndex[name] = id
	return id
}

func (t *idTable) itemName(id ItemID) string     { return t.itemNames[id] }
func (t *idTable) optionName(id OptionID) string { return t.optionNames[id] }

func (t *idTable) numItems() int   { return len(t.itemNames) }
func (t *idTable) numOptions() int { return len(t.optionNames) }

func (t *idTable) isMandatory(id ItemID) bool { return t.itemKinds[id] == mandatory }
