package poker

import "pokercrossword/pkg/deck"

// Compare returns 1 if a beats b, -1 if b beats a, and 0 if they tie
func Compare(a, b deck.Hand) int {
	return Analyze(a).Compare(Analyze(b))
}

// Less returns true if a loses to b
func Less(a, b deck.Hand) bool {
	return Compare(a, b) < 0
}

// Compare compares this hand with another. The stronger category wins, then the
// tie-break ranks are compared position by position.
func (h *HandAnalyzer) Compare(other *HandAnalyzer) int {
	if h.strength > other.strength {
		return 1
	} else if h.strength < other.strength {
		return -1
	}

	return compareRanks(h.significant, other.significant)
}

// compareRanks compares two lists of ranks that are each highest first
func compareRanks(a, b []deck.Rank) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	// same category lists are always the same length
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	default:
		return 0
	}
}
