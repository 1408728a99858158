package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleRecords() []Record {
	seed := uint64(7)
	solution := "U' R'"
	solvedAt := time.Date(2024, 3, 1, 12, 0, 5, 0, time.UTC)
	return []Record{
		{
			ID:        "a",
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Length:    2,
			Policy:    "strict",
			Seed:      &seed,
			Scramble:  "R U",
			Solution:  &solution,
			SolvedAt:  &solvedAt,
		},
		{
			ID:        "b",
			CreatedAt: time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC),
			Length:    3,
			Policy:    "opposite-pairs",
			Scramble:  "R L F2",
		},
	}
}

func TestWrite_OneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRecords()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if strings.Contains(lines[1], "solution") {
		t.Errorf("unsolved record should omit solution: %s", lines[1])
	}
}

func TestFileRoundTrip(t *testing.T) {
	for _, name := range []string{"history.jsonl", "history.jsonl.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleRecords()
			if err := WriteFile(path, want); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d records, want %d", len(got), len(want))
			}
			if got[0].Scramble != "R U" || *got[0].Seed != 7 || *got[0].Solution != "U' R'" {
				t.Errorf("record 0 = %+v", got[0])
			}
			if !got[1].CreatedAt.Equal(want[1].CreatedAt) || got[1].Seed != nil {
				t.Errorf("record 1 = %+v", got[1])
			}
		})
	}
}

func TestCompressedFileIsNotPlainJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.jsonl.zst")
	if err := WriteFile(path, sampleRecords()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, _ := os.ReadFile(path)
	// zstd frame magic
	if len(data) < 4 || !bytes.Equal(data[:4], []byte{0x28, 0xB5, 0x2F, 0xFD}) {
		t.Errorf("file does not start with a zstd frame: % x", data[:min(4, len(data))])
	}
}

func TestRead_BadLine(t *testing.T) {
	_, err := Read(strings.NewReader("{\"id\":\"a\"}\n\nnot json\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error = %v, want line 3", err)
	}
}
