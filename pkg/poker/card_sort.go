package poker

import "pokercrossword/pkg/deck"

type sortByRank []deck.Rank

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
