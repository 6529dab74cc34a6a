package jsonstore

import (
	"context"
	"fmt"
)

// snapshotAccess is how a repository reaches the snapshot: straight through
// the store, or through the session of an active unit of work.
type snapshotAccess interface {
	view(ctx context.Context, fn func(*Snapshot) error) error
	modify(ctx context.Context, fn func(*Snapshot) error) error
}

// directAccess performs a full load, mutate and save round trip per call.
type directAccess struct {
	store *Store
}

func (a directAccess) view(ctx context.Context, fn func(*Snapshot) error) error {
	snap, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(&snap)
}

func (a directAccess) modify(ctx context.Context, fn func(*Snapshot) error) error {
	return a.store.Update(ctx, fn)
}

// upsert replaces every entry with the key of item in place, or appends it.
func upsert[T any](items []T, item T, key func(T) string) []T {
	id := key(item)
	replaced := false
	for i := range items {
		if key(items[i]) == id {
			items[i] = item
			replaced = true
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return items
}

func removeAll[T any](items []T, id string, key func(T) string) []T {
	kept := items[:0]
	for _, item := range items {
		if key(item) != id {
			kept = append(kept, item)
		}
	}
	return kept
}

func findFirst[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// mapAll converts stored entries to domain values. A conversion failure means
// the document holds something the domain cannot represent.
func mapAll[T, D any](items []T, convert func(T) (D, error)) ([]D, error) {
	out := make([]D, 0, len(items))
	for _, item := range items {
		v, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func mapOne[T, D any](item T, convert func(T) (D, error)) (D, error) {
	v, err := convert(item)
	if err != nil {
		var zero D
		return zero, fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)
	}
	return v, nil
}
