// Package export writes a solution table to disk as a plain-text listing and
// as a JSON array, using atomic temp-file, fsync, rename writes.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Default file names inside the output directory.
const (
	TextFile = "sols.txt"
	JSONFile = "sols.json"
)

// File modes. The JSON file is owner read/write and world read.
const (
	TextMode os.FileMode = 0o644
	JSONMode os.FileMode = 0o604
)

// WriteText writes one "<index> <expression>" line per entry, in index
// order. Unreached entries keep their line with an empty expression.
func WriteText(path string, entries []string) error {
	return writeAtomic(path, TextMode, func(w *bufio.Writer) error {
		for i, expr := range entries {
			if _, err := w.WriteString(strconv.Itoa(i)); err != nil {
				return err
			}
			if err := w.WriteByte(' '); err != nil {
				return err
			}
			if _, err := w.WriteString(expr); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteJSON writes entries as a JSON array of strings indexed by result and
// sets the file mode to JSONMode.
func WriteJSON(path string, entries []string) error {
	if entries == nil {
		entries = []string{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal solutions: %w", err)
	}
	return writeAtomic(path, JSONMode, func(w *bufio.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// ReadJSON loads a JSON array written by WriteJSON.
func ReadJSON(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return entries, nil
}

// WriteAll writes both files into dir and returns their paths.
func WriteAll(dir string, entries []string) (textPath, jsonPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	textPath = filepath.Join(dir, TextFile)
	jsonPath = filepath.Join(dir, JSONFile)

	if err := WriteText(textPath, entries); err != nil {
		return "", "", fmt.Errorf("write %s: %w", TextFile, err)
	}
	if err := WriteJSON(jsonPath, entries); err != nil {
		return "", "", fmt.Errorf("write %s: %w", JSONFile, err)
	}
	return textPath, jsonPath, nil
}

// writeAtomic writes through a temp file in the target directory, syncs it,
// renames it over path, and applies mode.
func writeAtomic(path string, mode os.FileMode, fill func(*bufio.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".sols-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := fill(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
