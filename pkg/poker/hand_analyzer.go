package poker

import (
	"sort"

	"pokercrossword/pkg/deck"
)

// HandAnalyzer classifies a five-card hand
type HandAnalyzer struct {
	hand     deck.Hand
	ranks    []deck.Rank // highest first
	flush    bool
	straight deck.Rank

	// ranksByCount maps a multiplicity to the ranks seen that many times, highest first
	ranksByCount map[int][]deck.Rank

	strength    HandStrength
	significant []deck.Rank
}

// Analyze will return a new HandAnalyzer for the hand
func Analyze(hand deck.Hand) *HandAnalyzer {
	ranks := make([]deck.Rank, 0, deck.HandSize)
	for _, card := range hand {
		ranks = append(ranks, card.Rank)
	}

	sort.Sort(sort.Reverse(sortByRank(ranks)))

	h := &HandAnalyzer{
		hand:  hand,
		ranks: ranks,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Classify returns the strength of the hand and the ranks used to break ties
func Classify(hand deck.Hand) (HandStrength, []deck.Rank) {
	h := Analyze(hand)
	return h.GetHandStrength(), h.GetRanks()
}

// analyzeHand looks for a flush, a straight, and groups the ranks by multiplicity
func (h *HandAnalyzer) analyzeHand() {
	h.flush = true
	for _, card := range h.hand[1:] {
		if card.Suit != h.hand[0].Suit {
			h.flush = false
			break
		}
	}

	if high, ok := checkStraight(h.ranks); ok {
		h.straight = high
	}

	var counts [deck.Ace + 1]int
	for _, rank := range h.ranks {
		counts[rank]++
	}

	// walking the sorted ranks keeps each group highest first
	h.ranksByCount = make(map[int][]deck.Rank)
	for i, rank := range h.ranks {
		if i > 0 && h.ranks[i-1] == rank {
			continue
		}

		n := counts[rank]
		h.ranksByCount[n] = append(h.ranksByCount[n], rank)
	}
}

// calculateHand will determine the strength and the tie-break ranks
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	singles := h.ranksByCount[1]
	pairs := h.ranksByCount[2]
	trips := h.ranksByCount[3]
	quads := h.ranksByCount[4]

	switch {
	case h.straight > 0:
		h.significant = []deck.Rank{h.straight}
		if h.flush {
			h.strength = StraightFlush
		} else {
			h.strength = Straight
		}
	case h.flush:
		h.significant = h.ranks
		h.strength = Flush
	case len(quads) > 0:
		h.significant = concatRanks(quads, singles)
		h.strength = FourOfAKind
	case len(trips) > 0 && len(pairs) > 0:
		h.significant = concatRanks(trips, pairs)
		h.strength = FullHouse
	case len(trips) > 0:
		h.significant = concatRanks(trips, singles)
		h.strength = ThreeOfAKind
	case len(pairs) == 2:
		h.significant = concatRanks(pairs, singles)
		h.strength = TwoPair
	case len(pairs) == 1:
		h.significant = concatRanks(pairs, singles)
		h.strength = Pair
	default:
		h.significant = h.ranks
		h.strength = Nothing
	}
}

func concatRanks(groups ...[]deck.Rank) []deck.Rank {
	ranks := make([]deck.Rank, 0, deck.HandSize)
	for _, group := range groups {
		ranks = append(ranks, group...)
	}

	return ranks
}

// GetHand returns the hand that was analyzed
func (h *HandAnalyzer) GetHand() deck.Hand {
	return h.hand
}

// GetHandStrength returns the strength of the hand
func (h *HandAnalyzer) GetHandStrength() HandStrength {
	return h.strength
}

// GetRanks returns the ranks that break ties between hands of the same strength, most
// significant first
func (h *HandAnalyzer) GetRanks() []deck.Rank {
	ranks := make([]deck.Rank, len(h.significant))
	copy(ranks, h.significant)
	return ranks
}

// IsFlush returns true if all five cards share a suit
func (h *HandAnalyzer) IsFlush() bool {
	return h.flush
}

// IsStraight returns true if the ranks are consecutive
func (h *HandAnalyzer) IsStraight() bool {
	return h.straight > 0
}

// GetStraight will return the highest card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (deck.Rank, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetRanksByCount returns the ranks that appear exactly n times, highest first
func (h *HandAnalyzer) GetRanksByCount(n int) []deck.Rank {
	ranks := make([]deck.Rank, len(h.ranksByCount[n]))
	copy(ranks, h.ranksByCount[n])
	return ranks
}
