// internal/app/store/collection/collection.go

// Package collection (de)serializes entity collections through the kv
// boundary. Each collection lives under one fixed key as a JSON array; a
// missing key is reported distinctly so stores can substitute their seed
// defaults.
package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/takafulhq/takaful/internal/app/store/kv"
)

// Load reads and decodes the collection under key. found is false when the
// key has never been written, in which case items is nil.
func Load[T any](ctx context.Context, store kv.Store, key string) (items []T, found bool, err error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, true, nil
}

// Save encodes items and writes them through under key, replacing the whole
// collection. A nil slice is stored as an empty array.
func Save[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
