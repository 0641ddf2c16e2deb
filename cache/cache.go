// Package cache keeps recent evaluations so repeated requests skip the
// calculation. Entries expire; nothing is kept as history.
package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/edu2101/ror"
)

// Cache stores evaluations by key.
type Cache interface {
	// Get returns the evaluation stored under key, and false on a miss.
	Get(ctx context.Context, key string) (ror.Evaluation, bool, error)
	// Set stores e under key.
	Set(ctx context.Context, key string, e ror.Evaluation) error
}

// Key is the normalized cache key of an input: two inputs that read the same
// numbers share a key.
func Key(in ror.Input) string {
	parts := make([]string, 0, 3)
	for _, n := range []ror.Number{in.InitialAmount, in.FinalAmount, in.Years} {
		if !n.Valid() {
			parts = append(parts, "-")
			continue
		}
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ":")
}

// Evaluate returns the cached evaluation of in, computing and storing it on
// a miss. Cache failures are returned along with a fresh evaluation, so the
// caller can log them and carry on.
func Evaluate(ctx context.Context, c Cache, in ror.Input) (ror.Evaluation, error) {
	key := Key(in)
	if e, ok, err := c.Get(ctx, key); err != nil {
		return ror.Evaluate(in), fmt.Errorf("error reading cache %q: %w", key, err)
	} else if ok {
		return e, nil
	}

	e := ror.Evaluate(in)
	if err := c.Set(ctx, key, e); err != nil {
		return e, fmt.Errorf("error writing cache %q: %w", key, err)
	}
	return e, nil
}
