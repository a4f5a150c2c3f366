package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name cannot be parsed
var ErrUnknownCategory = errors.New("unknown category")

// Category is a poker hand category, i.e., royal flush
// Categories are ordered from strongest to weakest, so a lower value is a better hand
type Category int

// Constants for category
const (
	RoyalFlush Category = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// Categories contains every category, strongest first
var Categories = []Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal flush"
	case StraightFlush:
		return "Straight flush"
	case FourOfAKind:
		return "Four of a kind"
	case FullHouse:
		return "Full house"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a kind"
	case TwoPair:
		return "Two pair"
	case OnePair:
		return "Pair"
	case HighCard:
		return "High card"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Rank returns the integer rank of the category (0 is the strongest)
func (c Category) Rank() int {
	return int(c)
}

// Beats returns true if c is strictly stronger than other
func (c Category) Beats(other Category) bool {
	return c < other
}

// MarshalText encodes the category by its name, i.e., "Full house"
func (c Category) MarshalText() ([]byte, error) {
	if c < RoyalFlush || c > HighCard {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a category from its name, ignoring case
func (c *Category) UnmarshalText(b []byte) error {
	name := string(b)
	for _, category := range Categories {
		if strings.EqualFold(category.String(), name) {
			*c = category
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
