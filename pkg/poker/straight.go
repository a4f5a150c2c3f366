package poker

import "showdown-server/pkg/deck"

// used to keep track of the straight progress
type straightTracker struct {
	prevRank int
	streak   int

	// longest streak seen and the rank that ended it
	best     int
	bestRank int
}

// add must be called with ranks in ascending order
// A repeated rank neither breaks nor extends the streak
func (st *straightTracker) add(rank int) {
	switch {
	case st.streak == 0:
		st.streak = 1
	case rank == st.prevRank+1:
		st.streak++
	case rank == st.prevRank:
	default:
		st.streak = 1
	}

	if st.streak > st.best {
		st.best = st.streak
		st.bestRank = rank
	}

	st.prevRank = rank
}

// checkStraight returns the high card of the straight, or 0 if the cards are not a straight
// cards must be sorted by rank, lowest first
func checkStraight(cards []deck.Card) int {
	n := len(cards)
	if n < HandSize {
		return 0
	}

	st := straightTracker{}
	for _, card := range cards {
		st.add(card.Rank)
	}

	if st.best >= HandSize {
		return st.bestRank
	}

	// the ace sorts high, so the wheel (A-2-3-4-5) is checked on its own:
	// the cards below the ace must run from the two up to the five
	if cards[0].Rank != deck.Two || cards[n-1].Rank != deck.Ace {
		return 0
	}

	low := straightTracker{}
	for _, card := range cards[:n-1] {
		low.add(card.Rank)
	}

	if low.best >= HandSize-1 {
		return low.bestRank
	}

	return 0
}
