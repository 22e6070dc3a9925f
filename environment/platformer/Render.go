package platformer

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/mephistophelia/perception"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	skyShade          = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	platformColour    = color.RGBA{R: 128, G: 102, B: 230, A: 255}
	deathgroundColour = color.RGBA{R: 255, G: 76, B: 76, A: 255}
	goalColour        = color.RGBA{R: 255, G: 166, B: 0, A: 255}
	playerColour      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	probeColour       = color.RGBA{R: 77, G: 200, B: 128, A: 255}
	nearestColour     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Render draws the level, the player, the player's radar probes and a
// line from the player to the goal, and returns the drawing context
func (p *Platformer) Render() *gg.Context {
	bounds := p.level.Bounds()
	dc := gg.NewContext(int(bounds.X), int(bounds.Y))
	dc.SetColor(skyShade)
	dc.Clear()

	// Level y increases upwards, image y downwards
	toPixel := func(v r2.Vec) (float64, float64) {
		return v.X, bounds.Y - v.Y
	}
	drawBox := func(b r2.Box) {
		x, y := toPixel(r2.Vec{X: b.Min.X, Y: b.Max.Y})
		dc.DrawRectangle(x, y, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
	}

	colours := map[perception.Group]color.Color{
		perception.Platforms:    platformColour,
		perception.Deathgrounds: deathgroundColour,
		perception.Goals:        goalColour,
	}
	for group, boxes := range p.level.Boxes {
		for _, box := range boxes {
			drawBox(box)
		}
		dc.SetColor(colours[group])
		dc.Fill()
	}

	// Radar probes, the nearest to the goal highlighted
	player := p.physics.Center()
	probes := perception.Probes(player, p.level.Tile)
	var radar perception.Radar
	isRadar := p.Mode() == perception.RadarMode
	if isRadar {
		radar = p.observe().(perception.Radar)
	}
	dc.SetLineWidth(2.0)
	for i, probe := range probes {
		drawBox(probe)
		dc.SetColor(probeColour)
		if isRadar && radar[i].Nearest {
			dc.SetColor(nearestColour)
		}
		dc.Stroke()
	}

	drawBox(perception.BoxAround(player, p.physics.Size()))
	dc.SetColor(playerColour)
	dc.Fill()

	x1, y1 := toPixel(player)
	x2, y2 := toPixel(p.level.Goal)
	dc.DrawLine(x1, y1, x2, y2)
	dc.SetColor(goalColour)
	dc.SetLineWidth(1.0)
	dc.Stroke()

	return dc
}

// SavePNG renders the level to a PNG file
func (p *Platformer) SavePNG(filename string) error {
	if err := p.Render().SavePNG(filename); err != nil {
		return fmt.Errorf("savePNG: could not save render: %v", err)
	}
	return nil
}

// EncodePNG renders the level as a PNG to w
func (p *Platformer) EncodePNG(w io.Writer) error {
	if err := p.Render().EncodePNG(w); err != nil {
		return fmt.Errorf("encodePNG: could not encode render: %v", err)
	}
	return nil
}
