package search

// Merge concatenates provider result lists in call order and removes
// duplicates, keeping the first-seen copy of each item. Items are keyed by
// Link, falling back to Title when the link is empty.
func Merge(lists ...[]Item) []Item {
	seen := make(map[string]struct{})
	var merged []Item

	for _, list := range lists {
		for _, item := range list {
			key := item.Link
			if key == "" {
				key = item.Title
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
