package model

// FilterElements returns the inventory entries matching the given kinds and,
// optionally, only those that accept input. Empty kinds means all kinds.
func FilterElements(elements []ElementInfo, kinds []Kind, changeableOnly bool) []ElementInfo {
	kindSet := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}

	var result []ElementInfo
	for _, el := range elements {
		if len(kindSet) > 0 && !kindSet[el.Kind] {
			continue
		}
		if changeableOnly && !el.Changeable {
			continue
		}
		result = append(result, el)
	}
	return result
}
