package poker

import (
	"fmt"
	"strings"

	"pokercrossword/pkg/deck"
)

// HandStrength is the category of a five-card hand, i.e., a flush
// The numeric values are the comparison keys, weakest first
type HandStrength int

// Constants for hand strength
const (
	Nothing       HandStrength = 0
	Pair          HandStrength = 1
	TwoPair       HandStrength = 2
	ThreeOfAKind  HandStrength = 3
	Straight      HandStrength = 4
	Flush         HandStrength = 5
	FullHouse     HandStrength = 6
	FourOfAKind   HandStrength = 7
	StraightFlush HandStrength = 8
)

// HandStrengths are all of the strengths, weakest first
var HandStrengths = []HandStrength{
	Nothing, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

// String returns the string representation of a hand strength
func (s HandStrength) String() string {
	switch s {
	case Nothing:
		return "Nothing"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown hand strength: %d", s))
	}
}

// MarshalText renders the strength by name
func (s HandStrength) MarshalText() ([]byte, error) {
	if s < Nothing || s > StraightFlush {
		return nil, fmt.Errorf("unknown hand strength: %d", s)
	}

	return []byte(s.String()), nil
}

// UnmarshalText parses the strength by name
func (s *HandStrength) UnmarshalText(text []byte) error {
	strength, err := ParseHandStrength(string(text))
	if err != nil {
		return err
	}

	*s = strength
	return nil
}

// Match returns true if the hand classifies as this strength
// This allows a strength to be passed directly to deck.Rig()
func (s HandStrength) Match(hand deck.Hand) bool {
	return Analyze(hand).GetHandStrength() == s
}

var strengthNames = map[string]HandStrength{
	"nothing":       Nothing,
	"highcard":      Nothing,
	"pair":          Pair,
	"onepair":       Pair,
	"twopair":       TwoPair,
	"threeofakind":  ThreeOfAKind,
	"trips":         ThreeOfAKind,
	"straight":      Straight,
	"flush":         Flush,
	"fullhouse":     FullHouse,
	"fourofakind":   FourOfAKind,
	"quads":         FourOfAKind,
	"straightflush": StraightFlush,
}

// ParseHandStrength returns the strength from its name
// Case, spaces, dashes, and underscores are ignored, so "Full house", "full-house", and
// "FullHouse" are all the same
func ParseHandStrength(name string) (HandStrength, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
	if s, ok := strengthNames[key]; ok {
		return s, nil
	}

	return Nothing, fmt.Errorf("unknown hand strength: %q", name)
}
