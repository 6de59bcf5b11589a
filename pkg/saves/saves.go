// Package saves persists and restores a cartridge's battery-backed RAM.
// A Store auto-discovers "<rom>.sav" next to the ROM on load, flushes to
// a temp file and renames it into place so a crash mid-write never
// corrupts the on-disk save, and skips the rename entirely when the RAM
// content hasn't changed since the last flush.
package saves

import (
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
)

// Store tracks one cartridge's save path and the hash of what was last
// written, so repeated Flush calls during idle gameplay are cheap no-ops.
type Store struct {
	path       string
	compressed bool
	lastHash   uint64
	hasHash    bool
}

// New returns a Store for romPath, saving to romPath with its extension
// replaced by ".sav" (or ".sav.br" when compress is true).
func New(romPath string, compress bool) *Store {
	ext := ".sav"
	if compress {
		ext = ".sav.br"
	}
	return &Store{
		path:       romPath[:len(romPath)-len(filepath.Ext(romPath))] + ext,
		compressed: compress,
	}
}

// Load reads the save file, if one exists, decompressing it when the
// Store was constructed with compress=true. It returns nil, nil when no
// save file is present yet.
func (s *Store) Load() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !s.compressed {
		s.lastHash, s.hasHash = xxhash.Sum64(raw), true
		return raw, nil
	}
	data, err := cbrotli.Decode(raw)
	if err != nil {
		return nil, err
	}
	s.lastHash, s.hasHash = xxhash.Sum64(data), true
	return data, nil
}

// Flush writes data to disk if it differs from the last flushed (or
// loaded) content. The write goes to a temp file in the same directory,
// then an atomic rename replaces the previous save.
func (s *Store) Flush(data []byte) error {
	hash := xxhash.Sum64(data)
	if s.hasHash && hash == s.lastHash {
		return nil
	}

	payload := data
	if s.compressed {
		encoded, err := cbrotli.Encode(data, cbrotli.WriterOptions{Quality: 9})
		if err != nil {
			return err
		}
		payload = encoded
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}

	s.lastHash, s.hasHash = hash, true
	return nil
}

// Path returns the on-disk save path this Store flushes to.
func (s *Store) Path() string { return s.path }
