package qtable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/mephistophelia/action"
	"github.com/samuelfneumann/mephistophelia/perception"
)

func radar(nearest perception.Slot, symbols ...perception.Symbol) perception.Radar {
	var r perception.Radar
	for i, s := range symbols {
		r[i].Symbol = s
	}
	r[nearest].Nearest = true
	return r
}

func TestEnsureCreatesZeroRow(t *testing.T) {
	q := New()
	s := radar(perception.Up, perception.Platform)

	if !q.Ensure(s) {
		t.Fatal("ensure on a new state should create a row")
	}
	if q.Ensure(s) {
		t.Error("ensure should be idempotent")
	}

	for _, a := range action.All() {
		if v := q.Value(s, a); v != 0.0 {
			t.Errorf("value(%v): want 0, have %v", a, v)
		}
	}
	if q.Len() != 1 {
		t.Errorf("len: want 1, have %d", q.Len())
	}
}

func TestEnsureKeepsValues(t *testing.T) {
	q := New()
	s := perception.Position{X: 1, Y: 2}
	q.Ensure(s)
	q.Set(s, action.JumpLeft, 3.5)
	q.Ensure(s)

	if v := q.Value(s, action.JumpLeft); v != 3.5 {
		t.Errorf("ensure overwrote an existing row: have %v", v)
	}
}

func TestBestActionFirstMax(t *testing.T) {
	s := perception.Position{}

	tests := []struct {
		row  Row
		want action.Action
	}{
		{Row{0, 0, 0, 0}, action.MoveLeft},
		{Row{0, 1, 1, 0}, action.MoveRight},
		{Row{-1, -2, -1, -3}, action.MoveLeft},
		{Row{-5, -5, 2, 2}, action.JumpLeft},
		{Row{0, 0, 0, 0.1}, action.JumpRight},
	}

	for _, test := range tests {
		q := New()
		q.Ensure(s)
		for a, v := range test.row {
			q.Set(s, action.Action(a), v)
		}

		if have := q.BestAction(s); have != test.want {
			t.Errorf("bestAction(%v): want %v, have %v", test.row, test.want,
				have)
		}
		if have, want := q.MaxValue(s), test.row[test.want]; have != want {
			t.Errorf("maxValue(%v): want %v, have %v", test.row, want, have)
		}
	}
}

func TestMissingRowPanics(t *testing.T) {
	q := NewEager(2, 2)
	outside := perception.Position{X: 3, Y: 0}

	reads := map[string]func(){
		"maxValue":   func() { q.MaxValue(outside) },
		"bestAction": func() { q.BestAction(outside) },
		"value":      func() { q.Value(outside, action.MoveLeft) },
		"set":        func() { q.Set(outside, action.MoveLeft, 1) },
	}

	for name, read := range reads {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: expected panic on missing row", name)
				}
			}()
			read()
		}()
	}
}

func TestNewEager(t *testing.T) {
	q := NewEager(3, 4)
	if q.Len() != 4*5 {
		t.Fatalf("len: want %d, have %d", 4*5, q.Len())
	}

	for x := 0; x <= 3; x++ {
		for y := 0; y <= 4; y++ {
			if !q.Has(perception.Position{X: x, Y: y}) {
				t.Errorf("missing row for (%d, %d)", x, y)
			}
		}
	}
	if q.Has(perception.Position{X: 4, Y: 0}) {
		t.Error("row created outside bounds")
	}
}

func TestStatesIsACopy(t *testing.T) {
	q := NewEager(0, 1)
	states := q.States()
	states[0] = perception.Position{X: 9, Y: 9}

	if q.States()[0] != (perception.Position{X: 0, Y: 0}) {
		t.Error("modifying the returned states changed the table")
	}
}

func filled() *QTable {
	q := New()
	states := []perception.State{
		perception.Position{X: 0, Y: 0},
		perception.Position{X: -3, Y: 1 << 40},
		radar(perception.Left, perception.Platform, perception.Goal),
		radar(perception.DownRight, perception.Empty, perception.Empty,
			perception.Deathground),
	}
	for i, s := range states {
		q.Ensure(s)
		for _, a := range action.All() {
			q.Set(s, a, float64(i)*10-float64(a)*0.25)
		}
	}
	return q
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := filled()
	filename := filepath.Join(t.TempDir(), "qtable.bin")

	if err := original.Save(filename); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored := New()
	ok, err := restored.Load(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("load: existing file reported as missing")
	}

	if !restored.Equal(original) {
		t.Error("restored table differs from the original")
	}
	for i, s := range restored.States() {
		if s != original.States()[i] {
			t.Errorf("state order: want %v at %d, have %v",
				original.States()[i], i, s)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(filename))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("save left %d files behind, want 1", len(entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	q := filled()
	ok, err := q.Load(filepath.Join(t.TempDir(), "none.bin"))
	if err != nil {
		t.Fatalf("load of a missing file should not error: %v", err)
	}
	if ok {
		t.Error("load of a missing file reported success")
	}
	if !q.Equal(filled()) {
		t.Error("load of a missing file changed the table")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	data, err := filled().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	flipped := append([]byte(nil), data...)
	flipped[len(magic)+2] = 9 // Action count

	badRadar := append([]byte(nil), data...)
	badRadar[len(badRadar)-8*action.Count-1] = 0xff // Symbol out of range

	corrupt := map[string][]byte{
		"empty":     {},
		"magic":     []byte("NOPE"),
		"truncated": data[:len(data)-3],
		"trailing":  append(append([]byte(nil), data...), 0),
		"actions":   flipped,
		"radar":     badRadar,
	}

	for name, bytes := range corrupt {
		filename := filepath.Join(t.TempDir(), name)
		if err := os.WriteFile(filename, bytes, 0o644); err != nil {
			t.Fatal(err)
		}

		q := New()
		q.Ensure(perception.Position{X: 7, Y: 7})
		ok, err := q.Load(filename)

		if err == nil || ok {
			t.Errorf("%v: expected error loading corrupt data", name)
			continue
		}
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("%v: error should wrap ErrCorrupt: %v", name, err)
		}
		if q.Len() != 1 || !q.Has(perception.Position{X: 7, Y: 7}) {
			t.Errorf("%v: failed load modified the table", name)
		}
	}
}

func BenchmarkBestAction(b *testing.B) {
	q := New()
	s := radar(perception.Up, perception.Platform, perception.Goal)
	q.Ensure(s)
	q.Set(s, action.JumpRight, 1)

	for i := 0; i < b.N; i++ {
		q.BestAction(s)
	}
}
