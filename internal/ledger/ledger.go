// Package ledger records which (date, plant) pairs have been watered.
//
// A Ledger is an immutable value: every mutation returns a new Ledger and
// leaves the receiver untouched. Only watered records are stored, so an
// absent key and an explicit "not watered" are the same state.
package ledger

import (
	"slices"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
)

// Ledger is the set of watered records.
type Ledger struct {
	watered map[domain.RecordKey]struct{}
}

// Empty returns a ledger with no watered records.
func Empty() Ledger {
	return Ledger{}
}

// FromMap builds a ledger from a key → flag mapping. False entries are dropped.
func FromMap(m map[domain.RecordKey]bool) Ledger {
	set := make(map[domain.RecordKey]struct{}, len(m))
	for k, v := range m {
		if v {
			set[k] = struct{}{}
		}
	}
	return Ledger{watered: set}
}

// IsWatered reports the flag for (date, plantID). Absent records are not watered.
func (l Ledger) IsWatered(date domain.Date, plantID int) bool {
	return l.has(schedule.LedgerKey(date, plantID))
}

func (l Ledger) has(k domain.RecordKey) bool {
	_, ok := l.watered[k]
	return ok
}

// Toggle returns a new ledger with the flag at (date, plantID) flipped.
func (l Ledger) Toggle(date domain.Date, plantID int) Ledger {
	k := schedule.LedgerKey(date, plantID)
	return l.with(k, !l.has(k))
}

// Set returns a new ledger with the flag at (date, plantID) set to watered.
// Setting false removes the record, matching what a toggle-off produces.
func (l Ledger) Set(date domain.Date, plantID int, watered bool) Ledger {
	return l.with(schedule.LedgerKey(date, plantID), watered)
}

func (l Ledger) with(k domain.RecordKey, watered bool) Ledger {
	next := l.clone()
	if watered {
		next[k] = struct{}{}
	} else {
		delete(next, k)
	}
	return Ledger{watered: next}
}

func (l Ledger) clone() map[domain.RecordKey]struct{} {
	out := make(map[domain.RecordKey]struct{}, len(l.watered)+1)
	for k := range l.watered {
		out[k] = struct{}{}
	}
	return out
}

// Prune returns a new ledger without records dated strictly before the cutoff.
func (l Ledger) Prune(before domain.Date) Ledger {
	next := make(map[domain.RecordKey]struct{}, len(l.watered))
	for k := range l.watered {
		if !k.Date().Before(before) {
			next[k] = struct{}{}
		}
	}
	return Ledger{watered: next}
}

// Len returns the number of watered records.
func (l Ledger) Len() int {
	return len(l.watered)
}

// Keys returns the watered record keys ordered by date, then plant id.
func (l Ledger) Keys() []domain.RecordKey {
	keys := make([]domain.RecordKey, 0, len(l.watered))
	for k := range l.watered {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b domain.RecordKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return keys
}

// Equal reports whether both ledgers hold the same watered records.
func (l Ledger) Equal(o Ledger) bool {
	if len(l.watered) != len(o.watered) {
		return false
	}
	for k := range l.watered {
		if !o.has(k) {
			return false
		}
	}
	return true
}
