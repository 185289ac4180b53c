package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// FormatVersion is the current snapshot envelope version.
const FormatVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported ledger format version")
	ErrMalformedKey       = errors.New("malformed ledger key")
)

type envelope struct {
	Version int             `json:"version"`
	Entries map[string]bool `json:"entries"`
}

// FormatKey renders a record key as "<year>-<month0>-<day>-<plantId>", where
// month0 is the 0-based month. This is the only place the external key form is produced.
func FormatKey(k domain.RecordKey) string {
	return fmt.Sprintf("%d-%d-%d-%d", k.Year, int(k.Month)-1, k.Day, k.PlantID)
}

// ParseKey is the inverse of FormatKey.
func ParseKey(s string) (domain.RecordKey, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 4 {
		return domain.RecordKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}

	var nums [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return domain.RecordKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
		}
		nums[i] = n
	}

	k := domain.RecordKey{
		Year:    nums[0],
		Month:   time.Month(nums[1] + 1),
		Day:     nums[2],
		PlantID: nums[3],
	}
	if nums[1] < 0 || nums[1] > 11 || !k.Date().IsValid() || k.PlantID <= 0 {
		return domain.RecordKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}
	return k, nil
}

// Encode serialises a ledger into the versioned envelope.
func Encode(l Ledger) ([]byte, error) {
	env := envelope{
		Version: FormatVersion,
		Entries: make(map[string]bool, l.Len()),
	}
	for k := range l.watered {
		env.Entries[FormatKey(k)] = true
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return data, nil
}

// MalformedKeysError reports entries that Decode skipped. It matches
// ErrMalformedKey with errors.Is.
type MalformedKeysError struct {
	Keys []string
}

func (e *MalformedKeysError) Error() string {
	return fmt.Sprintf("decode ledger: skipped %d malformed key(s): %s", len(e.Keys), strings.Join(e.Keys, ", "))
}

func (e *MalformedKeysError) Is(target error) bool {
	return target == ErrMalformedKey
}

// Decode parses either the versioned envelope or the legacy unversioned flat
// object of key → flag pairs. Keys that do not parse are skipped: the ledger
// built from the remaining entries is returned together with a
// *MalformedKeysError naming them.
func Decode(blob []byte) (Ledger, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return Ledger{}, fmt.Errorf("decode ledger: %w", err)
	}

	entries, err := entriesOf(raw)
	if err != nil {
		return Ledger{}, err
	}

	m := make(map[domain.RecordKey]bool, len(entries))
	var bad []string
	for s, v := range entries {
		k, err := ParseKey(s)
		if err != nil {
			bad = append(bad, s)
			continue
		}
		if v {
			m[k] = true
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return FromMap(m), &MalformedKeysError{Keys: bad}
	}
	return FromMap(m), nil
}

func entriesOf(raw map[string]json.RawMessage) (map[string]bool, error) {
	versionRaw, versioned := raw["version"]
	if !versioned {
		legacy := make(map[string]bool, len(raw))
		for k, v := range raw {
			var b bool
			if err := json.Unmarshal(v, &b); err != nil {
				return nil, fmt.Errorf("decode ledger: value for %q: %w", k, err)
			}
			legacy[k] = b
		}
		return legacy, nil
	}

	var version int
	if err := json.Unmarshal(versionRaw, &version); err != nil {
		return nil, fmt.Errorf("decode ledger: version: %w", err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	entries := map[string]bool{}
	if e, ok := raw["entries"]; ok && string(e) != "null" {
		if err := json.Unmarshal(e, &entries); err != nil {
			return nil, fmt.Errorf("decode ledger: entries: %w", err)
		}
	}
	return entries, nil
}
