package model

// ElementChange records the properties that differ for one address present
// in both inventories. Keys are property names; values are [before, after].
type ElementChange struct {
	Address string               `yaml:"address"          json:"address"`
	Kind    Kind                 `yaml:"kind,omitempty"   json:"kind,omitempty"`
	Changes map[string][2]string `yaml:"changes"          json:"changes"`
}

// ScreenDiff is the result of comparing two screen inventories.
type ScreenDiff struct {
	Added          []ElementInfo   `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []ElementInfo   `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []ElementChange `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int             `yaml:"unchanged_count"   json:"unchanged_count"`
}

// DiffScreens compares two inventories of the same container keyed by
// address. Addresses are stable identity within one screen; after a
// navigation the diff simply reports wholesale adds and removes, which is
// itself a usable signal that the screen changed.
func DiffScreens(prev, curr []ElementInfo) ScreenDiff {
	prevByAddr := make(map[string]ElementInfo, len(prev))
	for _, el := range prev {
		prevByAddr[el.Address] = el
	}
	currByAddr := make(map[string]ElementInfo, len(curr))
	for _, el := range curr {
		currByAddr[el.Address] = el
	}

	var diff ScreenDiff
	for _, el := range curr {
		prevEl, existed := prevByAddr[el.Address]
		if !existed {
			diff.Added = append(diff.Added, el)
			continue
		}
		changes := diffElementProperties(prevEl, el)
		if len(changes) > 0 {
			diff.Changed = append(diff.Changed, ElementChange{
				Address: el.Address,
				Kind:    el.Kind,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}
	for _, el := range prev {
		if _, exists := currByAddr[el.Address]; !exists {
			diff.Removed = append(diff.Removed, el)
		}
	}
	return diff
}

// diffElementProperties compares the mutable properties of two inventory
// entries matched by address. Type and name are part of the identity and
// rarely change in place; text and editability do.
func diffElementProperties(prev, curr ElementInfo) map[string][2]string {
	diffs := make(map[string][2]string)
	if prev.Text != curr.Text {
		diffs["text"] = [2]string{prev.Text, curr.Text}
	}
	if prev.Changeable != curr.Changeable {
		diffs["changeable"] = [2]string{boolString(prev.Changeable), boolString(curr.Changeable)}
	}
	if prev.Type != curr.Type {
		diffs["type"] = [2]string{prev.Type, curr.Type}
	}
	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
