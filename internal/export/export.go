// Package export writes scramble history as JSON Lines, zstd-compressed
// when the file name ends in .zst.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/SeamusWaldron/cubestate/internal/storage"
)

// Record is one exported scramble.
type Record struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Length    int        `json:"length"`
	Policy    string     `json:"policy"`
	Seed      *uint64    `json:"seed,omitempty"`
	Scramble  string     `json:"scramble"`
	Solution  *string    `json:"solution,omitempty"`
	SolvedAt  *time.Time `json:"solved_at,omitempty"`
}

// FromScramble converts a stored scramble.
func FromScramble(s storage.Scramble) Record {
	return Record{
		ID:        s.ScrambleID,
		CreatedAt: s.CreatedAt,
		Length:    s.Length,
		Policy:    s.Policy,
		Seed:      s.Seed,
		Scramble:  s.ScrambleText,
		Solution:  s.SolutionText,
		SolvedAt:  s.SolvedAt,
	}
}

// Compressed reports whether path names a zstd file.
func Compressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// Write encodes one JSON object per line.
func Write(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
	}
	return nil
}

// Read decodes JSON Lines until EOF. Blank lines are ignored.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, sc.Err()
}

// WriteFile writes records to path, compressing when Compressed(path).
func WriteFile(path string, records []Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !Compressed(path) {
		w := bufio.NewWriter(f)
		if err := Write(w, records); err != nil {
			return err
		}
		return w.Flush()
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	w := bufio.NewWriterSize(enc, 128*1024)
	if err := Write(w, records); err != nil {
		enc.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadFile reads a file written by WriteFile.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	if !Compressed(path) {
		return Read(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()
	return Read(dec)
}
