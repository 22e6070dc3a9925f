package checkpointer

import (
	"fmt"
	"strings"
	"testing"
)

type recorder struct {
	saved []string
	err   error
}

func (r *recorder) Save(filename string) error {
	r.saved = append(r.saved, filename)
	return r.err
}

func TestNStep(t *testing.T) {
	r := &recorder{}
	c := NewNStep(3, r, FilenameEnumerator(1, "q", ".bin"))

	for tick := 0; tick <= 10; tick++ {
		if err := c.Checkpoint(tick); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"q-000001.bin", "q-000002.bin", "q-000003.bin"}
	if fmt.Sprint(r.saved) != fmt.Sprint(want) {
		t.Errorf("saved: want %v, have %v", want, r.saved)
	}
}

func TestNStepError(t *testing.T) {
	r := &recorder{err: fmt.Errorf("disk full")}
	c := NewNStep(1, r, Fixed("q.bin"))

	err := c.Checkpoint(1)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("checkpoint should report the save error, have %v", err)
	}
}

func TestFileTimer(t *testing.T) {
	name := FileTimer("dir/q", ".bin")()
	if !strings.HasPrefix(name, "dir/q-") || !strings.HasSuffix(name, ".bin") {
		t.Errorf("unexpected timed filename %q", name)
	}
}

func TestNewNStepPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a zero interval")
		}
	}()
	NewNStep(0, &recorder{}, Fixed("q.bin"))
}
