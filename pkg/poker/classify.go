package poker

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrNilHand is returned when a nil hand is classified
var ErrNilHand = errors.New("hand is nil")

// ClassifyAll returns the category of each hand, in the same order
// Up to workers hands are classified at once; workers <= 0 means no limit.
func ClassifyAll(ctx context.Context, hands []*Hand, workers int) ([]Category, error) {
	for i, hand := range hands {
		if hand == nil {
			return nil, fmt.Errorf("hand %d: %w", i, ErrNilHand)
		}
	}

	categories := make([]Category, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, hand := range hands {
		i, hand := i, hand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			categories[i] = hand.Category()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return categories, nil
}
