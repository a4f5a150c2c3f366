package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"showdown-server/pkg/deck"
)

func sortedCards(s string) []deck.Card {
	return NewHandAnalyzer(deck.CardsFromString(s)).cards
}

func Test_checkStraight(t *testing.T) {
	tests := []struct {
		cards string
		high  int
	}{
		{"2c,3d,4h,5s,6c", 6},
		{"10c,11d,12h,13s,14c", 14},
		{"14c,2d,3h,4s,5c", 5},
		{"2c,3d,4h,5s,7c", 0},
		{"2c,3d,4h,5s,5c", 0},
		{"2c,2d,3h,4s,5c", 0},
		{"2c,3d,3h,4s,14c", 0},
		{"2c,11d,12h,13s,14c", 0},
		{"13c,14d,2h,3s,4c", 0},
		{"3c,4d,5h,6s,14c", 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.high, checkStraight(sortedCards(test.cards)), test.cards)
	}

	assert.Equal(t, 0, checkStraight(sortedCards("2c,3d,4h,5s")))
}

func Test_straightTracker(t *testing.T) {
	st := straightTracker{}
	for _, rank := range []int{2, 3, 3, 4, 7, 8} {
		st.add(rank)
	}

	assert.Equal(t, 3, st.best)
	assert.Equal(t, 4, st.bestRank)
	assert.Equal(t, 2, st.streak)
}
