package poker

import "pokercrossword/pkg/deck"

// checkStraight will check for a straight in ranks that are sorted highest first
// If one is found, the highest card in the straight is returned. In the wheel (A-2-3-4-5)
// the ace plays low, so the five is the highest card.
func checkStraight(ranks []deck.Rank) (deck.Rank, bool) {
	ordered := ranks
	if len(ranks) > 1 && ranks[0] == deck.Ace && ranks[1] == deck.Five {
		ordered = make([]deck.Rank, 0, len(ranks))
		ordered = append(ordered, ranks[1:]...)
		ordered = append(ordered, deck.LowAce)
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] != ordered[i]+1 {
			return 0, false
		}
	}

	return ordered[0], true
}
