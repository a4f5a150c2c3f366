package poker

import (
	"errors"
	"fmt"
	"strings"

	"showdown-server/pkg/deck"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is not made of exactly HandSize cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// HandSizeError is an error on the number of cards used to build a hand
type HandSizeError struct {
	Got int
}

func (h HandSizeError) Error() string {
	return fmt.Sprintf("%s: expected %d cards, got %d", ErrInvalidHandSize, HandSize, h.Got)
}

// Is allows errors.Is(err, ErrInvalidHandSize)
func (h HandSizeError) Is(target error) bool {
	return target == ErrInvalidHandSize
}

// Hand is an immutable five-card poker hand
type Hand struct {
	cards [HandSize]deck.Card
}

// NewHand returns a hand made of the cards
// An error is returned if there are not exactly five cards. Duplicate cards are allowed.
func NewHand(cards []deck.Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, HandSizeError{Got: len(cards)}
	}

	h := &Hand{}
	copy(h.cards[:], cards)
	return h, nil
}

// MustNewHand is like NewHand, but panics on error
func MustNewHand(cards []deck.Card) *Hand {
	h, err := NewHand(cards)
	if err != nil {
		panic(err)
	}

	return h
}

// HandFromString builds a hand from a string in the format of 2c,3h,4s,5d,6c
func HandFromString(s string) (*Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}

	return NewHand(cards)
}

// Cards returns a copy of the cards in the hand, in the order they were given
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, HandSize)
	copy(cards, h.cards[:])
	return cards
}

// Analyzer returns a new analyzer for the cards in the hand
func (h *Hand) Analyzer() *HandAnalyzer {
	return NewHandAnalyzer(h.cards[:])
}

// Category returns the best category the hand qualifies for
// The category is derived from the cards on each call
func (h *Hand) Category() Category {
	return h.Analyzer().GetCategory()
}

func (h *Hand) String() string {
	parts := make([]string, HandSize)
	for i, card := range h.cards {
		parts[i] = card.String()
	}

	return strings.Join(parts, " ")
}
