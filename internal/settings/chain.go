package settings

import (
	"context"
	"errors"
	"fmt"
)

// Chain queries stores in order and returns the first value found. Lookup
// failures other than absence stop the chain.
type Chain []Store

func (c Chain) Get(ctx context.Context, name string) (string, error) {
	for _, store := range c {
		value, err := store.Get(ctx, name)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, ErrNotSet) {
			return "", err
		}
	}

	return "", fmt.Errorf("setting %s: %w", name, ErrNotSet)
}
