package showdown

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

var cbg = context.Background()

func TestLoadFile(t *testing.T) {
	entries, err := LoadFile("testdata/entries.yaml")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Name: "alice", Cards: "2c,5d,9h,11s,13c"}, entries[0])
	assert.Equal(t, "", entries[3].Name)

	_, err = LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_badYAML(t *testing.T) {
	_, err := Load(strings.NewReader("entries: 5"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	entries, err := LoadFile("testdata/entries.yaml")
	require.NoError(t, err)

	result, err := Run(cbg, entries, 2)
	require.NoError(t, err)
	require.Len(t, result.Participants, 4)

	assert.Equal(t, "bob", result.Winner.Name)
	assert.Equal(t, poker.StraightFlush, result.Winner.Category)
	assert.Equal(t, poker.HighCard, result.Participants[0].Category)
	assert.Equal(t, poker.Straight, result.Participants[2].Category)
	assert.Equal(t, poker.Flush, result.Participants[3].Category)

	// unnamed entries are named by their id
	anon := result.Participants[3]
	assert.Equal(t, anon.ID, anon.Name)
	_, err = uuid.Parse(anon.ID)
	assert.NoError(t, err)

	assert.Equal(t, deck.CardsFromString("2d,7d,9d,11d,13d"), anon.Cards)
}

func TestRun_errors(t *testing.T) {
	_, err := Run(cbg, nil, 0)
	assert.Equal(t, ErrNoEntries, err)

	_, err = Run(cbg, []Entry{{Name: "a", Cards: "2c,3c,4c,5c,6c"}, {Name: "b", Cards: "2c,3c"}}, 0)
	assert.True(t, errors.Is(err, poker.ErrInvalidHandSize))
	assert.EqualError(t, err, "entry 1 (b): invalid hand size: expected 5 cards, got 2")

	_, err = Run(cbg, []Entry{{Cards: "2c,3c,4c,5c,6z"}}, 0)
	assert.True(t, errors.Is(err, deck.ErrInvalidCard))
	assert.EqualError(t, err, `entry 0: invalid card: "6z"`)

	var entryErr EntryError
	assert.True(t, errors.As(err, &entryErr))
	assert.Equal(t, 0, entryErr.Index)
}

func TestRun_samples(t *testing.T) {
	result, err := Run(cbg, SampleEntries(), 0)
	require.NoError(t, err)

	for i, p := range result.Participants {
		assert.Equal(t, poker.Categories[i], p.Category, p.Name)
		assert.Equal(t, strings.ToLower(p.Category.String()), p.Name)
	}

	assert.Equal(t, "royal flush", result.Winner.Name)
}

func TestResult_Render(t *testing.T) {
	result, err := Run(cbg, []Entry{
		{Name: "alice", Cards: "2c,5d,9h,11s,13c"},
		{Name: "bob", Cards: "2c,2d,9h,9s,13c"},
	}, 0)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	assert.NoError(t, result.Render(buf))
	assert.Equal(t, "alice: 2♣ 5♢ 9♡ J♠ K♣ (High card)\n"+
		"bob: 2♣ 2♢ 9♡ 9♠ K♣ (Two pair)\n"+
		"Winner: bob with Two pair\n", buf.String())
}

func TestRun_tiesKeepFirstEntry(t *testing.T) {
	result, err := Run(cbg, []Entry{
		{Name: "alice", Cards: "2c,5d,9h,11s,13c"},
		{Name: "bob", Cards: "2d,7d,9d,11d,13d"},
		{Name: "carol", Cards: "3h,7h,9h,11h,14h"},
		{Name: "dave", Cards: "2c,2d,9h,9s,13c"},
	}, 1)
	require.NoError(t, err)

	// carol's flush has the higher card, but hands are compared by category only
	assert.Equal(t, "bob", result.Winner.Name)
	assert.Same(t, result.Participants[1], result.Winner)
	assert.Equal(t, poker.Flush, result.Winner.Category)
}
