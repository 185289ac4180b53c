// Package storage provides durable homes for named ledger snapshots.
package storage

import (
	"context"
	"errors"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// DefaultRecordName is the record the watering ledger is stored under.
const DefaultRecordName = "plantWateringHistory"

// ErrAbsent is returned by Load when nothing has been stored under a name.
var ErrAbsent = errors.New("snapshot absent")

// SnapshotStore persists opaque blobs by name.
type SnapshotStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, blob []byte) error
}

// Unavailable wraps err as a StorageUnavailableError unless it already is one
// or is ErrAbsent.
func Unavailable(op, name string, err error) error {
	if err == nil || errors.Is(err, ErrAbsent) {
		return err
	}
	var sue *domain.StorageUnavailableError
	if errors.As(err, &sue) {
		return err
	}
	return &domain.StorageUnavailableError{Op: op, Name: name, Err: err}
}
