package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/renameio/v2"
)

const (
	fileSuffix      = ".json"
	backupSuffix    = ".backup"
	filePermissions = 0o644
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// File stores each snapshot as <dir>/<name>.json. A save copies the previous
// version to <name>.json.backup and then atomically replaces the main file, so
// <name>.json always exists once written. Load falls back to the backup when
// the main file has gone missing.
type File struct {
	dir string
	log *slog.Logger
}

// NewFile creates a file store rooted at dir, creating the directory if needed.
func NewFile(dir string, log *slog.Logger) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &File{dir: dir, log: log.With("store", "file")}, nil
}

func (f *File) path(name string) (string, error) {
	if !validName.MatchString(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid record name %q", name)
	}
	return filepath.Join(f.dir, name+fileSuffix), nil
}

func (f *File) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, Unavailable("load", name, err)
	}
	p, err := f.path(name)
	if err != nil {
		return nil, Unavailable("load", name, err)
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return f.loadBackup(name, p+backupSuffix)
	}
	if err != nil {
		return nil, Unavailable("load", name, err)
	}
	return data, nil
}

func (f *File) loadBackup(name, backup string) ([]byte, error) {
	data, err := os.ReadFile(backup)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrAbsent
	}
	if err != nil {
		return nil, Unavailable("load", name, err)
	}
	f.log.Warn("main snapshot missing, loaded backup", slog.String("name", name), slog.String("path", backup))
	return data, nil
}

func (f *File) Save(ctx context.Context, name string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return Unavailable("save", name, err)
	}
	p, err := f.path(name)
	if err != nil {
		return Unavailable("save", name, err)
	}

	prev, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := renameio.WriteFile(p+backupSuffix, prev, filePermissions); err != nil {
			f.log.Warn("failed to write backup", slog.String("name", name), slog.String("error", err.Error()))
		}
	case !errors.Is(err, fs.ErrNotExist):
		f.log.Warn("failed to read previous version", slog.String("name", name), slog.String("error", err.Error()))
	}

	if err := renameio.WriteFile(p, blob, filePermissions); err != nil {
		return Unavailable("save", name, err)
	}
	return nil
}

// Ping checks that the storage directory is still accessible.
func (f *File) Ping(context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}
	return nil
}
