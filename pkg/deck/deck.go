package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"pokercrossword/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrDuplicateCard is returned when a deck would contain the same card twice
var ErrDuplicateCard = errors.New("duplicate card")

// Matcher decides whether a hand is the one we are rigging for
type Matcher interface {
	Match(hand Hand) bool
}

// MatcherFunc adapts a function to a Matcher
type MatcherFunc func(hand Hand) bool

// Match calls f(hand)
func (f MatcherFunc) Match(hand Hand) bool {
	return f(hand)
}

// Deck represents a playing deck
// A deck is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   rng.Generator
}

// New returns a new, shuffled deck of 52 cards
// If gen is nil, the deck shuffles with crypto/rand
func New(gen rng.Generator) *Deck {
	d := NewUnshuffled(gen)
	d.Shuffle()
	return d
}

// NewUnshuffled returns a new deck of 52 cards in suit order (hearts, spades, diamonds, clubs),
// each suit from two to ace
func NewUnshuffled(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	d.buildDeck()
	return d
}

// NewFromCards returns a deck holding the cards in the given order
// Every card must be a standard card, and no card may appear twice.
func NewFromCards(gen rng.Generator, cards []Card) (*Deck, error) {
	seen := make(map[Card]bool, len(cards))
	for _, card := range cards {
		if card.Rank < Two || card.Rank > Ace || card.Suit < Hearts || card.Suit > Clubs {
			return nil, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, card.Rank, card.Suit)
		}

		if seen[card] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}

		seen[card] = true
	}

	d := NewUnshuffled(gen)
	d.cards = make([]Card, len(cards))
	copy(d.cards, cards)
	return d, nil
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.cards = cards
}

// Shuffle will shuffle the cards currently in the deck
func (d *Deck) Shuffle() {
	shuffle(d.cards, d.rng)
}

func shuffle(cards []Card, gen rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Rig looks for five cards in the deck that satisfy the matcher. If found, those five cards
// are moved to the front of the deck and the rest of the deck is shuffled behind them.
// If no five cards match, the deck is left untouched and false is returned.
//
// Combinations are checked in index order over the current deck order, so the hand found
// is only as random as the previous shuffle.
func (d *Deck) Rig(m Matcher) bool {
	n := len(d.cards)
	var hand Hand

	for i1 := 0; i1 < n; i1++ {
		hand[0] = d.cards[i1]
		for i2 := i1 + 1; i2 < n; i2++ {
			hand[1] = d.cards[i2]
			for i3 := i2 + 1; i3 < n; i3++ {
				hand[2] = d.cards[i3]
				for i4 := i3 + 1; i4 < n; i4++ {
					hand[3] = d.cards[i4]
					for i5 := i4 + 1; i5 < n; i5++ {
						hand[4] = d.cards[i5]
						if m.Match(hand) {
							d.moveToFront([HandSize]int{i1, i2, i3, i4, i5})
							return true
						}
					}
				}
			}
		}
	}

	return false
}

// moveToFront puts the cards at the (ascending) indexes at the front of the deck and
// shuffles the rest behind them
func (d *Deck) moveToFront(indexes [HandSize]int) {
	cards := make([]Card, 0, len(d.cards))
	rest := make([]Card, 0, len(d.cards)-HandSize)

	next := 0
	for i, card := range d.cards {
		if next < HandSize && indexes[next] == i {
			cards = append(cards, card)
			next++
		} else {
			rest = append(rest, card)
		}
	}

	shuffle(rest, d.rng)
	d.cards = append(cards, rest...)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with an empty card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]

	return card, nil
}

// DrawHand will draw the next five cards
// If there are not five cards left, nothing is drawn and ErrEndOfDeck is returned
func (d *Deck) DrawHand() (Hand, error) {
	var h Hand
	if !d.CanDraw(HandSize) {
		return h, ErrEndOfDeck
	}

	for i := range h {
		h[i], _ = d.Draw()
	}

	return h, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// Cards returns a copy of the cards left in the deck, front first
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
