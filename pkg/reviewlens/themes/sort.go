package themes

import "sort"

// sortThemes orders by count descending; the stable sort preserves
// first-seen order among equal counts.
func sortThemes(themes []Theme) {
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Count > themes[j].Count
	})
}
