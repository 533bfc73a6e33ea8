package deck

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is built from the wrong number of cards
var ErrInvalidHandSize = errors.New("a hand requires five cards")

// Hand is exactly five cards
type Hand [HandSize]Card

// NewHand returns a new hand from the cards
// An error is returned if there are not exactly five cards. Duplicates are not checked.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w, but %d were passed", ErrInvalidHandSize, len(cards))
	}

	copy(h[:], cards)
	return h, nil
}

// MustHand is like NewHand, but panics on error
func MustHand(cards ...Card) Hand {
	h, err := NewHand(cards...)
	if err != nil {
		panic(err.Error())
	}

	return h
}

// HandFromString returns a hand from a comma-separated list of cards, i.e., Ah,2s,3d,4c,5h
func HandFromString(s string) Hand {
	return MustHand(CardsFromString(s)...)
}

// Cards returns the cards as a slice
func (h Hand) Cards() []Card {
	cards := make([]Card, HandSize)
	copy(cards, h[:])
	return cards
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h[:])
}
