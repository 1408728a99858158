package cubestate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState()
	snap := s.Snapshot()

	s.ApplyMove(R)
	if !snap.IsSolved() {
		t.Error("snapshot changed after the state moved")
	}

	snap.Faces[FaceU][0] = Red
	if s.At(FaceU, 0) == Red {
		t.Error("editing a snapshot must not reach the state")
	}
}

func TestSnapshotJSON(t *testing.T) {
	s := NewState()
	s.ApplySequence("R U F")
	snap := s.Snapshot()

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"U":["yellow","yellow","yellow","yellow","yellow","yellow","red","red","white"]`) {
		t.Errorf("unexpected encoding: %s", data)
	}

	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != snap {
		t.Error("snapshot changed across JSON")
	}
}

func TestSnapshotJSON_Rejects(t *testing.T) {
	good, _ := json.Marshal(NewState().Snapshot())

	cases := map[string]func(map[string]any){
		"missing face": func(m map[string]any) { delete(m, "B") },
		"short face":   func(m map[string]any) { m["U"] = []string{"yellow"} },
		"extra face":   func(m map[string]any) { m["X"] = m["U"] },
		"bad color":    func(m map[string]any) { m["F"].([]any)[0] = "pink" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			var copied map[string]any
			json.Unmarshal(good, &copied)
			mutate(copied)
			data, _ := json.Marshal(copied)

			var snap Snapshot
			if err := json.Unmarshal(data, &snap); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("error = %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}

func TestSnapshotValidate(t *testing.T) {
	s := NewState()
	s.ApplySequence("R U R' U' F2 D L' B")
	if err := s.Snapshot().Validate(); err != nil {
		t.Errorf("reachable state failed validation: %v", err)
	}

	bad := NewState().Snapshot()
	bad.Faces[FaceU][0] = Color(12)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("out-of-palette color: error = %v", err)
	}

	bad = NewState().Snapshot()
	bad.Faces[FaceU][0] = White
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("10 whites: error = %v", err)
	}

	bad = NewState().Snapshot()
	bad.Faces[FaceU][4], bad.Faces[FaceD][0] = White, Yellow
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("duplicate centers: error = %v", err)
	}
}

func TestSnapshotString(t *testing.T) {
	s := NewState()
	s.ApplySequence("L D")
	if s.Snapshot().String() != s.String() {
		t.Error("State.String and Snapshot.String should agree")
	}
	if lines := strings.Count(s.String(), "\n"); lines != 9 {
		t.Errorf("net has %d lines, want 9", lines)
	}
}
