// internal/writers/file.go
package writers

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// DigestSuffix is appended to a dataset path to name its checksum file.
const DigestSuffix = ".b2sum"

// File is a dataset output file. When checksumming is on, every byte
// written is also hashed with BLAKE2b-256 and Close writes the digest next
// to the file in b2sum format.
type File struct {
	path string
	fh   *os.File
	w    io.Writer
	h    hash.Hash
}

// Create creates (truncates) path, making parent directories as needed.
func Create(path string, checksum bool) (*File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create output directory")
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	f := &File{path: path, fh: fh, w: fh}
	if checksum {
		h, _ := blake2b.New256(nil) // only fails for keys > 64 bytes
		f.h = h
		f.w = io.MultiWriter(fh, h)
	}
	return f, nil
}

func (f *File) Write(p []byte) (int, error) { return f.w.Write(p) }

// Abort closes the file and removes it. No digest is written; use it when
// the dataset is incomplete.
func (f *File) Abort() error {
	cerr := f.fh.Close()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove partial output")
	}
	if cerr != nil {
		return errors.Wrap(cerr, "close output")
	}
	return nil
}

// Digest returns the hex BLAKE2b-256 of everything written so far, or ""
// when checksumming is off.
func (f *File) Digest() string {
	if f.h == nil {
		return ""
	}
	return hex.EncodeToString(f.h.Sum(nil))
}

// Close closes the file and writes the digest file if enabled.
func (f *File) Close() error {
	if err := f.fh.Close(); err != nil {
		return errors.Wrap(err, "close output")
	}
	if f.h == nil {
		return nil
	}
	line := fmt.Sprintf("%s  %s\n", f.Digest(), filepath.Base(f.path))
	if err := os.WriteFile(f.path+DigestSuffix, []byte(line), 0o644); err != nil {
		return errors.Wrap(err, "write digest")
	}
	return nil
}
