package store

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/afero"

	"securedb/internal/domain"
)

// OSFS is the operating system filesystem. Writes are atomic replacements.
type OSFS struct{}

// ReadFile reads the file at path.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// WriteFile writes data via a temp file in the same directory, then
// atomically replaces the target and applies perm.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}

// Exists reports whether path exists. Any stat failure counts as absent.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AferoFS adapts an afero filesystem, e.g. afero.NewMemMapFs for an
// in-memory store.
type AferoFS struct {
	Fs afero.Fs
}

// NewAferoFS wraps fsys.
func NewAferoFS(fsys afero.Fs) AferoFS { return AferoFS{Fs: fsys} }

// ReadFile reads the file at path.
func (a AferoFS) ReadFile(path string) ([]byte, error) { return afero.ReadFile(a.Fs, path) }

// WriteFile writes bytes via a temp file, then renames it over the target.
func (a AferoFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if ok, err := afero.DirExists(a.Fs, dir); err != nil {
		return err
	} else if !ok {
		return &fs.PathError{Op: "write", Path: path, Err: fs.ErrNotExist}
	}

	f, err := afero.TempFile(a.Fs, dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	renamed := false
	defer func() {
		if !renamed {
			_ = a.Fs.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := a.Fs.Chmod(tmp, perm); err != nil {
		return err
	}
	if err := a.Fs.Rename(tmp, path); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Exists reports whether path exists.
func (a AferoFS) Exists(path string) bool {
	ok, err := afero.Exists(a.Fs, path)
	return err == nil && ok
}

var (
	_ domain.Filesystem = OSFS{}
	_ domain.Filesystem = AferoFS{}
)
