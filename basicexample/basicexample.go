// Package basicexample is the simplest possible exact-cover reducer: items
// and options are both given directly as strings, and an option covers item
// i iff the character i appears in the option's name.
package basicexample

import "github.com/mthaak/exactcover/xcover"

// Problem is a basic exact-cover problem: each item is named by a single
// character, and an option covers every item whose character appears in its
// name.
type Problem struct {
	RequiredItems []string
	OptionalItems []string
	Options       []string
}

// itemsCoveredByOption splits an option's name into its covered item names,
// one per rune.
func itemsCoveredByOption(option string) []string {
	items := make([]string, 0, len(option))
	for _, r := range option {
		items = append(items, string(r))
	}
	return items
}

func (p *Problem) toInstance() (*xcover.Instance, error) {
	coveredBy := make(map[string][]string, len(p.RequiredItems)+len(p.OptionalItems))
	for _, item := range p.RequiredItems {
		coveredBy[item] = nil
	}
	for _, item := range p.OptionalItems {
		coveredBy[item] = nil
	}
	for _, option := range p.Options {
		for _, item := range itemsCoveredByOption(option) {
			coveredBy[item] = append(coveredBy[item], option)
		}
	}
	return xcover.Construct(p.RequiredItems, p.OptionalItems, nil, coveredBy)
}

// Solve finds one solution to p, or (nil, false) if p is unsatisfiable.
func (p *Problem) Solve() ([]string, bool, error) {
	inst, err := p.toInstance()
	if err != nil {
		return nil, false, err
	}
	sel, ok := inst.SolveOne()
	return sel, ok, nil
}

// CountAll returns the number of solutions to p.
func (p *Problem) CountAll() (int, error) {
	inst, err := p.toInstance()
	if err != nil {
		return 0, err
	}
	return inst.CountAll(), nil
}
