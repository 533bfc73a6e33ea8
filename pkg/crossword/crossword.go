package crossword

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokercrossword/internal/rng"
	"pokercrossword/internal/util"
	"pokercrossword/pkg/deck"
	"pokercrossword/pkg/poker"
)

// MaxRows is the most rows a puzzle can have
// A deck holds ten hands, but once fewer than a dozen cards are left they rarely make a
// straight or better, so the last rows would usually fail to rig.
const MaxRows = 8

var (
	// ErrNoStrengths is returned when there are no target hand strengths to pick from
	ErrNoStrengths = errors.New("at least one hand strength is required")

	// ErrInvalidRows is returned when the row count cannot be dealt from one deck
	ErrInvalidRows = fmt.Errorf("rows must be between 1 and %d", MaxRows)

	// ErrRigExhausted is returned when none of the target strengths can be rigged for a row
	ErrRigExhausted = errors.New("no hand strength could be rigged")

	// ErrInvalidCount is returned when asked for a negative number of puzzles
	ErrInvalidCount = errors.New("puzzle count cannot be negative")
)

// Options configures how a puzzle is built
type Options struct {
	Rows      int
	Strengths []poker.HandStrength
}

// DefaultOptions returns five rows of reasonably strong hands
func DefaultOptions() Options {
	return Options{
		Rows: 5,
		Strengths: []poker.HandStrength{
			poker.StraightFlush,
			poker.FourOfAKind,
			poker.Flush,
			poker.FullHouse,
			poker.Straight,
		},
	}
}

func validateOptions(opts Options) error {
	if len(opts.Strengths) == 0 {
		return ErrNoStrengths
	}

	if opts.Rows < 1 || opts.Rows > MaxRows {
		return fmt.Errorf("%w, got %d", ErrInvalidRows, opts.Rows)
	}

	return nil
}

// Row is one rigged hand of the puzzle
type Row struct {
	Hand     deck.Hand
	Strength poker.HandStrength
}

// Puzzle is a grid of rigged hands, one per row, all dealt from the same deck
type Puzzle struct {
	ID   uuid.UUID
	Name string
	Rows []Row
}

// New builds a puzzle from a fresh deck shuffled by gen
// Each row picks a random target strength. If the deck can no longer make that strength,
// another one is picked until every strength has been tried.
func New(logger logrus.FieldLogger, gen rng.Generator, opts Options) (*Puzzle, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	id, err := uuid.NewRandomFromReader(readerFor(gen))
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		ID:   id,
		Name: util.GetRandomName(gen),
		Rows: make([]Row, 0, opts.Rows),
	}

	d := deck.New(gen)
	for i := 0; i < opts.Rows; i++ {
		strength, err := rigRow(logger.WithField("row", i), gen, d, opts.Strengths)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		hand, err := d.DrawHand()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		p.Rows = append(p.Rows, Row{Hand: hand, Strength: strength})
	}

	logger.WithFields(logrus.Fields{
		"puzzleId": p.ID,
		"name":     p.Name,
		"rows":     len(p.Rows),
	}).Info("generated puzzle")

	return p, nil
}

// rigRow rigs the deck for one of the strengths, chosen at random
// A strength that fails is not retried, since a failed rig leaves the deck as it was.
func rigRow(logger logrus.FieldLogger, gen rng.Generator, d *deck.Deck, strengths []poker.HandStrength) (poker.HandStrength, error) {
	candidates := make([]poker.HandStrength, len(strengths))
	copy(candidates, strengths)

	for len(candidates) > 0 {
		i := gen.Intn(len(candidates))
		strength := candidates[i]
		if d.Rig(strength) {
			return strength, nil
		}

		logger.WithFields(logrus.Fields{
			"strength":  strength.String(),
			"cardsLeft": d.CardsLeft(),
		}).Debug("could not rig hand")

		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	return poker.Nothing, ErrRigExhausted
}

// String lays out one row per line, i.e., "Ah  Kh  Qh  Jh  10h  <-- Straight flush"
func (p *Puzzle) String() string {
	var sb strings.Builder
	for _, row := range p.Rows {
		for _, card := range row.Hand {
			sb.WriteString(fmt.Sprintf("%-4s", card.String()))
		}

		sb.WriteString(" <-- ")
		sb.WriteString(row.Strength.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// TableData returns a header followed by one line per row: the five cards and the strength
func (p *Puzzle) TableData() [][]string {
	data := make([][]string, 0, len(p.Rows)+1)
	data = append(data, []string{"1", "2", "3", "4", "5", "Hand"})
	for _, row := range p.Rows {
		line := make([]string, 0, deck.HandSize+1)
		for _, card := range row.Hand {
			line = append(line, card.String())
		}

		data = append(data, append(line, row.Strength.String()))
	}

	return data
}

type jsonRow struct {
	Cards    []string           `json:"cards"`
	Strength poker.HandStrength `json:"strength"`
}

type jsonPuzzle struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Rows []jsonRow `json:"rows"`
}

// MarshalJSON renders cards the same way they are displayed
func (p *Puzzle) MarshalJSON() ([]byte, error) {
	out := jsonPuzzle{
		ID:   p.ID,
		Name: p.Name,
		Rows: make([]jsonRow, len(p.Rows)),
	}

	for i, row := range p.Rows {
		cards := make([]string, 0, deck.HandSize)
		for _, card := range row.Hand {
			cards = append(cards, card.String())
		}

		out.Rows[i] = jsonRow{Cards: cards, Strength: row.Strength}
	}

	return json.Marshal(out)
}

// generatorReader adapts a Generator to an io.Reader so seeded puzzles get stable IDs
type generatorReader struct {
	gen rng.Generator
}

func readerFor(gen rng.Generator) generatorReader {
	return generatorReader{gen: gen}
}

func (r generatorReader) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = byte(r.gen.Intn(256))
	}

	return len(b), nil
}
