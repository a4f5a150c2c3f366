// Package showdown compares a line-up of named five-card hands
package showdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

// ErrNoEntries is returned when a showdown has nobody in it
var ErrNoEntries = errors.New("at least one entry is required")

// Entry is a named hand
type Entry struct {
	Name  string `yaml:"name" json:"name"`
	Cards string `yaml:"cards" json:"cards"`
}

// EntryError is an error on a single entry of the showdown
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e EntryError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e EntryError) Unwrap() error {
	return e.Err
}

type file struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads the entries from a YAML document
func Load(r io.Reader) ([]Entry, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode entries: %w", err)
	}

	return f.Entries, nil
}

// LoadFile reads the entries from a YAML file
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Participant is an entry whose hand has been classified
type Participant struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Cards    []deck.Card    `json:"cards"`
	Category poker.Category `json:"-"`

	hand *poker.Hand
}

// Result is the outcome of a showdown
type Result struct {
	Participants []*Participant
	Winner       *Participant
}

// Run classifies every entry and determines the winner
// Entries without a name are given a random ID as their name.
func Run(ctx context.Context, entries []Entry, workers int) (*Result, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	participants := make([]*Participant, len(entries))
	hands := make([]*poker.Hand, len(entries))
	for i, entry := range entries {
		cards, err := deck.ParseCards(entry.Cards)
		if err != nil {
			return nil, EntryError{Index: i, Name: entry.Name, Err: err}
		}

		hand, err := poker.NewHand(cards)
		if err != nil {
			return nil, EntryError{Index: i, Name: entry.Name, Err: err}
		}

		id := uuid.New().String()
		name := entry.Name
		if name == "" {
			name = id
		}

		participants[i] = &Participant{
			ID:    id,
			Name:  name,
			Cards: hand.Cards(),
			hand:  hand,
		}
		hands[i] = hand
	}

	categories, err := poker.ClassifyAll(ctx, hands, workers)
	if err != nil {
		return nil, err
	}

	for i, category := range categories {
		participants[i].Category = category
	}

	idx, err := poker.BestCategoryIndex(categories)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Participants: participants,
		Winner:       participants[idx],
	}

	logrus.WithFields(logrus.Fields{
		"entries":  len(participants),
		"winner":   result.Winner.Name,
		"category": result.Winner.Category.String(),
	}).Debug("showdown complete")

	return result, nil
}

// Render writes a plain text report of the result
func (r *Result) Render(w io.Writer) error {
	for _, p := range r.Participants {
		if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", p.Name, p.hand, p.Category); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Winner: %s with %s\n", r.Winner.Name, r.Winner.Category)
	return err
}

// SampleEntries returns a fixed line-up covering every category
func SampleEntries() []Entry {
	return []Entry{
		{Name: "royal flush", Cards: "10h,11h,12h,13h,14h"},
		{Name: "straight flush", Cards: "8s,9s,10s,11s,12s"},
		{Name: "four of a kind", Cards: "9s,9c,9h,9d,13h"},
		{Name: "full house", Cards: "9s,9c,13h,13d,13s"},
		{Name: "flush", Cards: "2d,7d,9d,11d,13d"},
		{Name: "straight", Cards: "2s,3c,4h,5d,14h"},
		{Name: "three of a kind", Cards: "7s,7c,7h,2d,13h"},
		{Name: "two pair", Cards: "7s,7c,2h,2d,13h"},
		{Name: "pair", Cards: "7s,7c,3h,2d,13h"},
		{Name: "high card", Cards: "7s,8c,3h,2d,13h"},
	}
}
