// Package utils collects small, independent helpers cmd/godmg needs that
// don't belong inside the emulation core itself: ROM/archive loading, the
// native file-open dialog, and screenshot export.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/sqweek/dialog"
)

// AskForFile opens the native "open file" dialog rooted at startingDir.
func AskForFile(title, startingDir string) (string, error) {
	return dialog.File().SetStartDir(startingDir).Title(title).Load()
}

// IsSize reports whether filename exists and is exactly size bytes.
func IsSize(filename string, size int64) bool {
	fi, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return fi.Size() == size
}

// LoadROM reads filename and, if it names a zip/7z/gzip archive rather
// than a bare .gb/.gbc/.bin image, extracts the first entry from it.
func LoadROM(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gb", ".gbc", ".bin":
		return data, nil
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	case ".zip":
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		entry, err := zr.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer entry.Close()
		return io.ReadAll(entry)
	case ".7z":
		zr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		entry, err := zr.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer entry.Close()
		return io.ReadAll(entry)
	default:
		return data, nil
	}
}
