package poker

import (
	"sort"

	"showdown-server/pkg/deck"
)

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	// sorted by rank, lowest first
	cards []deck.Card

	// rank => number of cards of that rank
	rankCounts map[int]int

	flush    bool
	straight int
	quads    []int
	trips    []int
	pairs    []int

	category Category
}

// the order here is required, strongest first
// the first check that passes determines the category
var categoryChecks = []struct {
	category Category
	check    func(h *HandAnalyzer) bool
}{
	{RoyalFlush, (*HandAnalyzer).GetRoyalFlush},
	{StraightFlush, func(h *HandAnalyzer) bool { _, ok := h.GetStraightFlush(); return ok }},
	{FourOfAKind, func(h *HandAnalyzer) bool { _, ok := h.GetFourOfAKind(); return ok }},
	{FullHouse, func(h *HandAnalyzer) bool { _, ok := h.GetFullHouse(); return ok }},
	{Flush, func(h *HandAnalyzer) bool { _, ok := h.GetFlush(); return ok }},
	{Straight, func(h *HandAnalyzer) bool { _, ok := h.GetStraight(); return ok }},
	{ThreeOfAKind, func(h *HandAnalyzer) bool { _, ok := h.GetThreeOfAKind(); return ok }},
	{TwoPair, func(h *HandAnalyzer) bool { _, ok := h.GetTwoPair(); return ok }},
	{OnePair, func(h *HandAnalyzer) bool { _, ok := h.GetPair(); return ok }},
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The analyzer expects five cards, use NewHand() to enforce that
func NewHandAnalyzer(cards []deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make([]deck.Card, len(cards))
	copy(sortedCards, cards)
	sort.Stable(sortByRank(sortedCards))

	h := &HandAnalyzer{
		cards:      sortedCards,
		rankCounts: make(map[int]int),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()

	return h
}

// analyzeHand records the flush, the straight and the rank groups
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	if len(h.cards) == 0 {
		return
	}

	h.flush = true
	firstSuit := h.cards[0].Suit
	for _, card := range h.cards {
		if card.Suit != firstSuit {
			h.flush = false
		}

		h.rankCounts[card.Rank]++
	}

	h.straight = checkStraight(h.cards)

	// walk the ranks from the top so the best groups come first
	for i := len(h.cards) - 1; i >= 0; i-- {
		rank := h.cards[i].Rank
		if i+1 < len(h.cards) && h.cards[i+1].Rank == rank {
			continue
		}

		switch h.rankCounts[rank] {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}
}

// calculateCategory will determine the best category
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	for _, c := range categoryChecks {
		if c.check(h) {
			h.category = c.category
			return
		}
	}

	h.category = HighCard
}

// GetCategory will return the best category the cards qualify for
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	if !h.flush || len(h.cards) != len(royalRanks) {
		return false
	}

	for i, card := range h.cards {
		if card.Rank != royalRanks[i] {
			return false
		}
	}

	return true
}

var royalRanks = []int{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}

// GetStraightFlush will return the high card of the straight flush, if possible
// A royal flush is also a straight flush
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the rank of the trips and the rank of the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []int{h.trips[0], h.pairs[0]}, true
}

// GetFlush will return the ranks of the flush, highest first, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if !h.flush {
		return nil, false
	}

	ranks := make([]int, len(h.cards))
	for i, card := range h.cards {
		ranks[len(h.cards)-1-i] = card.Rank
	}

	return ranks, true
}

// GetStraight will return the high card of the straight, if possible
// The high card of a wheel (A-2-3-4-5) is the five
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the ranks of both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) == 2 {
		return []int{h.pairs[0], h.pairs[1]}, true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}
