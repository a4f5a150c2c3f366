package poker

import "errors"

// ErrNoHands is returned when a winner is requested from an empty set of hands
var ErrNoHands = errors.New("at least one hand is required")

// DetermineWinner returns the hand with the strongest category
// Hands with the same category are not compared further; the earliest one wins.
// nil hands are ignored. ErrNoHands is returned if there is nothing to compare.
func DetermineWinner(hands []*Hand) (*Hand, error) {
	idx, err := WinnerIndex(hands)
	if err != nil {
		return nil, err
	}

	return hands[idx], nil
}

// WinnerIndex is like DetermineWinner, but returns the position of the winning hand
func WinnerIndex(hands []*Hand) (int, error) {
	best := -1
	var bestCategory Category
	for i, hand := range hands {
		if hand == nil {
			continue
		}

		category := hand.Category()
		if best == -1 || category.Beats(bestCategory) {
			best = i
			bestCategory = category
		}
	}

	if best == -1 {
		return -1, ErrNoHands
	}

	return best, nil
}

// BestCategoryIndex returns the position of the strongest of categories that were already computed
// Ties keep the earliest position, the same as WinnerIndex.
func BestCategoryIndex(categories []Category) (int, error) {
	if len(categories) == 0 {
		return -1, ErrNoHands
	}

	best := 0
	for i, category := range categories[1:] {
		if category.Beats(categories[best]) {
			best = i + 1
		}
	}

	return best, nil
}
