package platformer

import (
	"github.com/ByteArena/box2d"
	"github.com/samuelfneumann/mephistophelia/perception"
	"gonum.org/v1/gonum/spatial/r2"
)

// index answers overlap queries against static level tiles. Each tile
// is a static box2d body whose fixture lives in the world's broad
// phase, so a query only tests the tiles whose bounding boxes are near
// the probe.
type index struct {
	world box2d.B2World
	tiles map[*box2d.B2Fixture]tile
}

type tile struct {
	group perception.Group
	box   r2.Box
}

// newIndex builds an index over every tile of the level
func newIndex(level *Level) *index {
	idx := &index{
		world: box2d.MakeB2World(box2d.B2Vec2{X: 0, Y: 0}),
		tiles: make(map[*box2d.B2Fixture]tile),
	}

	for group, boxes := range level.Boxes {
		for _, box := range boxes {
			idx.add(group, box)
		}
	}
	return idx
}

func (idx *index) add(group perception.Group, box r2.Box) {
	centre := r2.Scale(0.5, r2.Add(box.Min, box.Max))
	half := r2.Scale(0.5, r2.Sub(box.Max, box.Min))

	def := box2d.NewB2BodyDef()
	def.Type = 0 // Static
	def.Position.Set(centre.X, centre.Y)
	body := idx.world.CreateBody(def)

	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(half.X, half.Y)

	fixtureDef := box2d.MakeB2FixtureDef()
	fixtureDef.Shape = shape
	fixture := body.CreateFixtureFromDef(&fixtureDef)

	idx.tiles[fixture] = tile{group, box}
}

// overlapping calls f with every tile of group g that overlaps probe
// until f returns false
func (idx *index) overlapping(probe r2.Box, g perception.Group,
	f func(r2.Box) bool) {
	aabb := box2d.B2AABB{
		LowerBound: box2d.B2Vec2{X: probe.Min.X, Y: probe.Min.Y},
		UpperBound: box2d.B2Vec2{X: probe.Max.X, Y: probe.Max.Y},
	}

	// The broad phase works on enlarged boxes, so candidates are
	// checked exactly
	idx.world.QueryAABB(func(fixture *box2d.B2Fixture) bool {
		t, ok := idx.tiles[fixture]
		if !ok || t.group != g || !perception.Overlaps(t.box, probe) {
			return true
		}
		return f(t.box)
	}, aabb)
}

// collides returns whether probe overlaps any tile of group g
func (idx *index) collides(probe r2.Box, g perception.Group) bool {
	hit := false
	idx.overlapping(probe, g, func(r2.Box) bool {
		hit = true
		return false
	})
	return hit
}
