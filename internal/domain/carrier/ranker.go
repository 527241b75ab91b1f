package carrier

import "sort"

// Rank orders matches by descending ambiguity score. Equal scores are
// broken by lexical provider key so the ordering is deterministic rather
// than an accident of registration order. The input slice is not modified.
func Rank(matches []Match) []Match {
	ranked := make([]Match, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AmbiguityScore != ranked[j].AmbiguityScore {
			return ranked[i].AmbiguityScore > ranked[j].AmbiguityScore
		}
		return ranked[i].ProviderKey < ranked[j].ProviderKey
	})
	return ranked
}

// Best returns the highest-ranked match, or false when there are none.
func Best(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	return Rank(matches)[0], true
}
