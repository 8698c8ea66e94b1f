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

package timing_test

import (
	"testing"

	"github.com/hqvga/hdmiwing/hardware/timing"
	"github.com/hqvga/hdmiwing/test"
)

func TestFrameCounts(t *testing.T) {
	g := timing.NewGenerator()

	active := 0
	hsync := 0
	vsync := 0

	for i := 0; i < timing.TicksPerFrame; i++ {
		s := g.Tick()
		test.Equate(t, s.Frame, 0)
		if s.Active {
			active++
		}
		if s.HSync {
			hsync++
		}
		if s.VSync {
			vsync++
		}
	}

	test.Equate(t, active, timing.HorizActive*timing.VertActive)
	test.Equate(t, hsync, timing.HorizSyncWidth*timing.VertTotal)
	test.Equate(t, vsync, timing.VertSyncWidth*timing.HorizTotal)

	// the next tick is the first of frame one
	s := g.Tick()
	test.Equate(t, s.Frame, 1)
	test.Equate(t, s.X, 0)
	test.Equate(t, s.Y, 0)
}

func TestSyncPlacement(t *testing.T) {
	g := timing.NewGenerator()

	for i := 0; i < timing.TicksPerFrame; i++ {
		s := g.Tick()

		// hsync pulse begins after the front porch and lasts for the sync
		// width
		hs := s.X >= timing.HorizActive+timing.HorizFrontPorch &&
			s.X < timing.HorizActive+timing.HorizFrontPorch+timing.HorizSyncWidth
		test.Equate(t, s.HSync, hs)

		vs := s.Y >= timing.VertActive+timing.VertFrontPorch &&
			s.Y < timing.VertActive+timing.VertFrontPorch+timing.VertSyncWidth
		test.Equate(t, s.VSync, vs)

		// active never coincides with either sync pulse
		if s.Active {
			test.ExpectedFailure(t, s.HSync)
			test.ExpectedFailure(t, s.VSync)
		}
	}
}
