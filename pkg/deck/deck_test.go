package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandard(t *testing.T) {
	cards := Standard()
	assert.Equal(t, 52, len(cards))
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, cards[51])

	seen := make(map[Card]bool)
	for _, card := range cards {
		assert.False(t, seen[card], card.String())
		seen[card] = true
	}
}
