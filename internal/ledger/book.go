package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/storage"
)

// Book owns the live ledger. All mutations go through it and are serialised,
// applied in memory, then saved to the store. A failed save keeps the new
// in-memory state and marks the book dirty until Flush succeeds.
type Book struct {
	mu      sync.Mutex
	store   storage.SnapshotStore
	name    string
	log     *slog.Logger
	current Ledger
	dirty   bool
}

// Open loads the ledger named name from store. Load failures and corrupt
// snapshots are logged and the book starts empty. Individual malformed keys
// are dropped and the rest of the snapshot is kept.
func Open(ctx context.Context, store storage.SnapshotStore, name string, log *slog.Logger) *Book {
	b := &Book{
		store: store,
		name:  name,
		log:   log.With("component", "ledger", "record", name),
	}

	blob, err := store.Load(ctx, name)
	switch {
	case errors.Is(err, storage.ErrAbsent):
		b.log.Info("no stored ledger, starting empty")
		return b
	case err != nil:
		b.log.Warn("ledger load failed, starting empty", slog.String("error", err.Error()))
		return b
	}

	l, err := Decode(blob)
	var malformed *MalformedKeysError
	switch {
	case errors.As(err, &malformed):
		b.log.Warn("skipped malformed ledger keys",
			slog.Any("keys", malformed.Keys),
			slog.Int("kept", l.Len()),
		)
	case err != nil:
		b.log.Warn("stored ledger is unreadable, starting empty", slog.String("error", err.Error()))
		return b
	}
	b.current = l
	b.log.Info("ledger loaded", slog.Int("records", l.Len()))
	return b
}

// Snapshot returns the current ledger value.
func (b *Book) Snapshot() Ledger {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Dirty reports whether the in-memory ledger has changes not yet saved.
func (b *Book) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// Toggle flips the watered flag for (date, plantID) and persists the result.
// The new flag is returned even when persisting fails.
func (b *Book) Toggle(ctx context.Context, date domain.Date, plantID int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = b.current.Toggle(date, plantID)
	watered := b.current.IsWatered(date, plantID)
	return watered, b.saveLocked(ctx)
}

// Set forces the flag for (date, plantID) and persists the result.
func (b *Book) Set(ctx context.Context, date domain.Date, plantID int, watered bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.current.Set(date, plantID, watered)
	if next.Equal(b.current) && !b.dirty {
		return nil
	}
	b.current = next
	return b.saveLocked(ctx)
}

// Prune drops records dated before the cutoff and persists the result.
// It returns the number of records removed.
func (b *Book) Prune(ctx context.Context, before domain.Date) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.current.Prune(before)
	removed := b.current.Len() - next.Len()
	if removed == 0 && !b.dirty {
		return 0, nil
	}
	b.current = next
	return removed, b.saveLocked(ctx)
}

// Flush retries a pending save. It is a no-op when nothing is dirty.
func (b *Book) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.dirty {
		return nil
	}
	return b.saveLocked(ctx)
}

func (b *Book) saveLocked(ctx context.Context) error {
	blob, err := Encode(b.current)
	if err != nil {
		b.dirty = true
		return err
	}
	if err := b.store.Save(ctx, b.name, blob); err != nil {
		b.dirty = true
		b.log.Error("ledger save failed, keeping in-memory state", slog.String("error", err.Error()))
		return storage.Unavailable("save", b.name, err)
	}
	if b.dirty {
		b.log.Info("pending ledger changes saved")
	}
	b.dirty = false
	return nil
}
