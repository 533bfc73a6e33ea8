package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokercrossword/internal/rng"
	"pokercrossword/pkg/deck"
)

func analyze(s string) *HandAnalyzer {
	return Analyze(deck.HandFromString(s))
}

func ranks(r ...deck.Rank) []deck.Rank {
	return r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		strength HandStrength
		ranks    []deck.Rank
	}{
		{"royal", "10h,Jh,Qh,Kh,Ah", StraightFlush, ranks(deck.Ace)},
		{"steel wheel", "Ah,2h,3h,4h,5h", StraightFlush, ranks(deck.Five)},
		{"straight flush", "9c,5c,6c,8c,7c", StraightFlush, ranks(deck.Nine)},
		{"quads", "4s,4h,5c,4d,4c", FourOfAKind, ranks(deck.Four, deck.Five)},
		{"quads low kicker", "Ks,Kh,2c,Kd,Kc", FourOfAKind, ranks(deck.King, deck.Two)},
		{"full house", "3c,3d,3h,Kc,Kd", FullHouse, ranks(deck.Three, deck.King)},
		{"flush", "2c,9c,Kc,5c,7c", Flush, ranks(deck.King, deck.Nine, deck.Seven, deck.Five, deck.Two)},
		{"wheel", "Ah,2s,3d,4c,5h", Straight, ranks(deck.Five)},
		{"broadway", "10h,Js,Qd,Kc,Ah", Straight, ranks(deck.Ace)},
		{"straight", "3c,4d,5h,6s,7c", Straight, ranks(deck.Seven)},
		{"trips", "8c,8d,8h,2c,Kd", ThreeOfAKind, ranks(deck.Eight, deck.King, deck.Two)},
		{"two pair", "5c,5d,6h,6d,3h", TwoPair, ranks(deck.Six, deck.Five, deck.Three)},
		{"two pair high kicker", "5c,5d,2h,2d,Ah", TwoPair, ranks(deck.Five, deck.Two, deck.Ace)},
		{"pair", "2h,2s,5d,7c,9h", Pair, ranks(deck.Two, deck.Nine, deck.Seven, deck.Five)},
		{"nothing", "2c,4c,Kc,5c,8h", Nothing, ranks(deck.King, deck.Eight, deck.Five, deck.Four, deck.Two)},
		{"no wrap around", "Qh,Ks,Ad,2c,3h", Nothing, ranks(deck.Ace, deck.King, deck.Queen, deck.Three, deck.Two)},
		{"ace high no straight", "Ah,2s,3d,4c,6h", Nothing, ranks(deck.Ace, deck.Six, deck.Four, deck.Three, deck.Two)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strength, r := Classify(deck.HandFromString(tt.hand))
			assert.Equal(t, tt.strength, strength)
			assert.Equal(t, tt.ranks, r)
		})
	}
}

func TestHandAnalyzer_predicates(t *testing.T) {
	a := assert.New(t)

	h := analyze("Ah,2h,3h,4h,5h")
	a.True(h.IsFlush())
	a.True(h.IsStraight())
	r, ok := h.GetStraight()
	a.True(ok)
	a.Equal(deck.Five, r)

	h = analyze("Ah,2h,3h,4h,6h")
	a.True(h.IsFlush())
	a.False(h.IsStraight())
	r, ok = h.GetStraight()
	a.False(ok)
	a.Equal(deck.Rank(0), r)

	h = analyze("2c,3d,4h,5s,6c")
	a.False(h.IsFlush())
	a.True(h.IsStraight())
	a.Equal(deck.HandFromString("2c,3d,4h,5s,6c"), h.GetHand())
}

func TestHandAnalyzer_GetRanksByCount(t *testing.T) {
	a := assert.New(t)

	h := analyze("3c,3d,9h,9c,Kd")
	a.Equal(ranks(deck.Nine, deck.Three), h.GetRanksByCount(2))
	a.Equal(ranks(deck.King), h.GetRanksByCount(1))
	a.Empty(h.GetRanksByCount(3))

	h = analyze("7c,7d,7h,7s,Ad")
	a.Equal(ranks(deck.Seven), h.GetRanksByCount(4))
	a.Equal(ranks(deck.Ace), h.GetRanksByCount(1))
}

func TestHandAnalyzer_GetRanks_isACopy(t *testing.T) {
	h := analyze("2c,4c,Kc,5c,8h")
	r := h.GetRanks()
	r[0] = deck.Two
	assert.Equal(t, deck.King, h.GetRanks()[0])
}

func Test_checkStraight(t *testing.T) {
	tests := []struct {
		ranks []deck.Rank
		high  deck.Rank
		ok    bool
	}{
		{ranks(deck.Six, deck.Five, deck.Four, deck.Three, deck.Two), deck.Six, true},
		{ranks(deck.Ace, deck.Five, deck.Four, deck.Three, deck.Two), deck.Five, true},
		{ranks(deck.Ace, deck.King, deck.Queen, deck.Jack, deck.Ten), deck.Ace, true},
		{ranks(deck.Ace, deck.Five, deck.Five, deck.Three, deck.Two), 0, false},
		{ranks(deck.Ace, deck.King, deck.Four, deck.Three, deck.Two), 0, false},
		{ranks(deck.Seven, deck.Five, deck.Four, deck.Three, deck.Two), 0, false},
		{ranks(deck.Ace, deck.Ace, deck.Four, deck.Three, deck.Two), 0, false},
	}

	for _, tt := range tests {
		high, ok := checkStraight(tt.ranks)
		assert.Equal(t, tt.ok, ok, "%v", tt.ranks)
		assert.Equal(t, tt.high, high, "%v", tt.ranks)
	}
}

// randomHands deals n hands from seeded decks
func randomHands(seed int64, n int) []deck.Hand {
	gen := rng.NewSeeded(seed)
	hands := make([]deck.Hand, 0, n)
	d := deck.New(gen)
	for len(hands) < n {
		h, err := d.DrawHand()
		if err != nil {
			d = deck.New(gen)
			continue
		}

		hands = append(hands, h)
	}

	return hands
}

func TestAnalyze_properties(t *testing.T) {
	a := assert.New(t)

	for _, hand := range randomHands(1, 5000) {
		h := Analyze(hand)
		strength, r := Classify(hand)

		// deterministic
		a.Equal(h.GetHandStrength(), strength)
		a.Equal(h.GetRanks(), r)

		switch strength {
		case StraightFlush:
			a.True(h.IsFlush())
			a.True(h.IsStraight())
			a.Len(r, 1)
		case Straight:
			a.False(h.IsFlush())
			a.Len(r, 1)
		case FourOfAKind:
			a.Len(h.GetRanksByCount(4), 1)
			a.Len(r, 2)
		case FullHouse:
			a.Len(r, 2)
		case ThreeOfAKind:
			a.Len(r, 3)
		case TwoPair:
			a.Len(r, 3)
		case Pair:
			a.Len(r, 4)
		case Flush, Nothing:
			a.Len(r, 5)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	hand := deck.HandFromString("3s,5s,6h,7h,Jc")
	for i := 0; i < b.N; i++ {
		h := Analyze(hand)
		h.GetHandStrength()
	}
}
