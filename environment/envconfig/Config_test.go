package envconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/mephistophelia/perception"
)

const level = `..........
S.......G.
##########
xxxxxxxxxx
`

func writeLevel(t *testing.T) string {
	filename := filepath.Join(t.TempDir(), "level.txt")
	if err := os.WriteFile(filename, []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestCreate(t *testing.T) {
	for _, mode := range []perception.Mode{
		perception.PositionMode,
		perception.RadarMode,
	} {
		t.Run(string(mode), func(t *testing.T) {
			c := NewConfig(writeLevel(t), mode)
			p, step, err := c.Create()
			if err != nil {
				t.Fatal(err)
			}

			if !step.First() {
				t.Error("the first timestep should be of type First")
			}
			if kind := step.Observation.Kind(); string(mode) != kind.String() {
				t.Errorf("observation kind: want %v, have %v", mode, kind)
			}

			x, y := p.Bounds()
			if x != 640 || y != 256 {
				t.Errorf("bounds: want (640, 256), have (%d, %d)", x, y)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{"level", func(c *Config) { c.Level = "" }, "level"},
		{"tile", func(c *Config) { c.Tile = 0 }, "tile"},
		{"mode", func(c *Config) { c.Mode = "Sonar" }, "mode"},
		{"kinematics", func(c *Config) { c.Kinematics.Speed = DefaultTile }, "speeds"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewConfig("level.txt", perception.RadarMode)
			test.modify(&c)

			err := c.Validate()
			if err == nil {
				t.Fatal("expected an invalid configuration")
			}
			if !strings.Contains(err.Error(), test.err) {
				t.Errorf("want error containing %q, have %v", test.err, err)
			}
		})
	}
}

func TestCreateMissingLevel(t *testing.T) {
	c := NewConfig(filepath.Join(t.TempDir(), "none.txt"),
		perception.RadarMode)
	if _, _, err := c.Create(); err == nil {
		t.Error("creating a missing level should fail")
	}
}
