// This file is part of HDMIWing.
//
// HDMIWing is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// HDMIWing is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with HDMIWing.  If not, see <https://www.gnu.org/licenses/>.

// Package timing generates the coordinate and sync information that paces
// the video side of the peripheral. One tick corresponds to one pixel clock
// of the 1280x720 output signal.
//
// The generator is the clock of the whole tick domain. It never stalls and
// it never skips: every frame is exactly HorizTotal*VertTotal ticks, of
// which exactly HorizActive*VertActive are in the active picture area.
package timing

// The 1280x720@60 signal timing. Counts are in pixel clocks for the
// horizontal values and in scanlines for the vertical values.
const (
	HorizActive     = 1280
	HorizFrontPorch = 110
	HorizSyncWidth  = 40
	HorizBackPorch  = 220
	HorizTotal      = HorizActive + HorizFrontPorch + HorizSyncWidth + HorizBackPorch

	VertActive     = 720
	VertFrontPorch = 5
	VertSyncWidth  = 5
	VertBackPorch  = 20
	VertTotal      = VertActive + VertFrontPorch + VertSyncWidth + VertBackPorch

	FramesPerSecond = 60
	TicksPerFrame   = HorizTotal * VertTotal
)

// Coords identifies a single tick within the frame sequence. X and Y count
// from the top-left of the active picture area; the blanking intervals have
// X >= HorizActive and Y >= VertActive respectively.
type Coords struct {
	X     int
	Y     int
	Frame int
}

// State is everything the compositor needs to know about the current tick:
// where the beam is and which of the sync/blank flags are raised.
type State struct {
	Coords

	// Active is true when the coordinates are inside the active picture
	// area. When Active is false the output color must be black.
	Active bool

	// sync pulses. both are positive polarity
	HSync bool
	VSync bool
}

// Generator produces one State per tick. It is owned and stepped exclusively
// by the tick context.
type Generator struct {
	x     int
	y     int
	frame int
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The generator begins at the top-left of the active area of frame
// zero.
func NewGenerator() *Generator {
	return &Generator{}
}

// Coords returns the position of the next tick without advancing the
// generator.
func (g *Generator) Coords() Coords {
	return Coords{X: g.x, Y: g.y, Frame: g.frame}
}

// Tick returns the State for the current position and advances the generator
// by one pixel clock.
func (g *Generator) Tick() State {
	s := State{
		Coords: Coords{X: g.x, Y: g.y, Frame: g.frame},
		Active: g.x < HorizActive && g.y < VertActive,
		HSync:  g.x >= HorizActive+HorizFrontPorch && g.x < HorizActive+HorizFrontPorch+HorizSyncWidth,
		VSync:  g.y >= VertActive+VertFrontPorch && g.y < VertActive+VertFrontPorch+VertSyncWidth,
	}

	g.x++
	if g.x >= HorizTotal {
		g.x = 0
		g.y++
		if g.y >= VertTotal {
			g.y = 0
			g.frame++
		}
	}

	return s
}
