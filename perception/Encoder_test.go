package perception

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// tiles is a Geometry made of boxes in named groups
type tiles map[Group][]r2.Box

func (t tiles) Collides(probe r2.Box, g Group) bool {
	for _, box := range t[g] {
		if Overlaps(box, probe) {
			return true
		}
	}
	return false
}

func TestPositionEncoderRounds(t *testing.T) {
	enc, err := NewEncoder(PositionMode, 64, 100, 100)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		player r2.Vec
		want   Position
	}{
		{r2.Vec{X: 0, Y: 0}, Position{0, 0}},
		{r2.Vec{X: 10.4, Y: 20.6}, Position{10, 21}},
		{r2.Vec{X: 99.5, Y: 0.49}, Position{100, 0}},
	}

	for _, test := range tests {
		state := enc.Encode(Scene{Player: test.player})
		if state != test.want {
			t.Errorf("encode %v: want %v, have %v", test.player, test.want, state)
		}
	}
}

func TestPositionEncoderOutOfBoundsPanics(t *testing.T) {
	enc := PositionEncoder{XBound: 10, YBound: 10}

	for _, player := range []r2.Vec{{X: -1, Y: 0}, {X: 0, Y: 11}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("encode %v: expected panic", player)
				}
			}()
			enc.Encode(Scene{Player: player})
		}()
	}
}

func TestNewEncoderErrors(t *testing.T) {
	if _, err := NewEncoder(RadarMode, 0, 10, 10); err == nil {
		t.Error("radar encoder with zero tile size should error")
	}
	if _, err := NewEncoder(PositionMode, 64, -1, 10); err == nil {
		t.Error("position encoder with negative bound should error")
	}
	if _, err := NewEncoder("Sonar", 64, 10, 10); err == nil {
		t.Error("unknown mode should error")
	}
}

func TestRadarPlatformBeatsGoal(t *testing.T) {
	const tile = 10.0
	player := r2.Vec{X: 0, Y: 0}

	// The right probe is centred at (10, -5) and touches both a
	// platform tile and the goal tile
	right := ProbeCentres(player, tile)[Right]
	geometry := tiles{
		Platforms: {BoxAround(r2.Add(right, r2.Vec{X: 0, Y: -6}), r2.Vec{X: tile, Y: tile})},
		Goals:     {BoxAround(r2.Add(right, r2.Vec{X: 0, Y: 6}), r2.Vec{X: tile, Y: tile})},
	}

	enc := RadarEncoder{Tile: tile}
	state := enc.Encode(Scene{Player: player, Goal: right, Geometry: geometry}).(Radar)

	if state[Right].Symbol != Platform {
		t.Errorf("right probe: want %v, have %v", Platform, state[Right].Symbol)
	}
}

func TestRadarSymbols(t *testing.T) {
	const tile = 10.0
	player := r2.Vec{X: 100, Y: 100}
	centres := ProbeCentres(player, tile)
	size := r2.Vec{X: tile, Y: tile}

	geometry := tiles{
		Platforms:    {BoxAround(centres[Left], size)},
		Deathgrounds: {BoxAround(centres[DownRight], size)},
		Goals:        {BoxAround(centres[Up], size)},
	}

	enc := RadarEncoder{Tile: tile}
	state := enc.Encode(Scene{Player: player, Goal: centres[Up], Geometry: geometry}).(Radar)

	want := [Slots]Symbol{Platform, Empty, Goal, Empty, Empty, Empty, Deathground}
	for slot := range want {
		if state[slot].Symbol != want[slot] {
			t.Errorf("slot %v: want %v, have %v", Slot(slot), want[slot],
				state[slot].Symbol)
		}
	}
	if nearest := state.NearestSlot(); nearest != Up {
		t.Errorf("nearest: want %v, have %v", Up, nearest)
	}
}

func TestRadarExactlyOneNearest(t *testing.T) {
	const tile = 64.0
	enc := RadarEncoder{Tile: tile}
	goal := r2.Vec{X: 500, Y: 300}

	for x := -200.0; x <= 1200; x += 37 {
		for y := -200.0; y <= 800; y += 41 {
			state := enc.Encode(Scene{
				Player:   r2.Vec{X: x, Y: y},
				Goal:     goal,
				Geometry: tiles{},
			}).(Radar)

			count := 0
			for _, reading := range state {
				if reading.Nearest {
					count++
				}
			}
			if count != 1 {
				t.Fatalf("player (%v, %v): want 1 nearest probe, have %d",
					x, y, count)
			}
		}
	}
}

func TestRadarNearestTieGoesToFirstSlot(t *testing.T) {
	const tile = 10.0
	enc := RadarEncoder{Tile: tile}

	// DownLeft (-10, -15) and DownRight (10, -15) are equidistant
	state := enc.Encode(Scene{
		Player:   r2.Vec{},
		Goal:     r2.Vec{X: 0, Y: -15},
		Geometry: tiles{},
	}).(Radar)

	if nearest := state.NearestSlot(); nearest != DownLeft {
		t.Errorf("nearest: want %v, have %v", DownLeft, nearest)
	}
}

func TestRadarSlotOrderIsSignificant(t *testing.T) {
	var a, b Radar
	a[Left] = Reading{Symbol: Platform, Nearest: true}
	a[Right] = Reading{Symbol: Deathground}
	b[Left] = Reading{Symbol: Deathground}
	b[Right] = Reading{Symbol: Platform, Nearest: true}

	if State(a) == State(b) {
		t.Error("radars with permuted readings should be distinct states")
	}

	seen := map[State]int{a: 1}
	if _, ok := seen[b]; ok {
		t.Error("permuted radar should not index the same map entry")
	}

	c := a
	if State(a) != State(c) {
		t.Error("equal radars should be equal states")
	}
}

func TestPositionAndRadarNeverCollide(t *testing.T) {
	seen := map[State]bool{Position{0, 0}: true}
	if seen[Radar{}] {
		t.Error("radar state should not equal a position state")
	}
}

func BenchmarkRadarEncode(b *testing.B) {
	const tile = 64.0
	enc := RadarEncoder{Tile: tile}
	size := r2.Vec{X: tile, Y: tile}

	var geometry tiles = map[Group][]r2.Box{}
	for i := 0; i < 18; i++ {
		centre := r2.Vec{X: float64(i)*tile + tile/2, Y: tile / 2}
		geometry[Platforms] = append(geometry[Platforms], BoxAround(centre, size))
	}
	scene := Scene{
		Player:   r2.Vec{X: 300, Y: 100},
		Goal:     r2.Vec{X: 1000, Y: 500},
		Geometry: geometry,
	}

	for i := 0; i < b.N; i++ {
		enc.Encode(scene)
	}
}
