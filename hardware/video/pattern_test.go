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

package video

import (
	"testing"

	"github.com/hqvga/hdmiwing/hardware/timing"
	"github.com/hqvga/hdmiwing/test"
)

func TestPatternBars(t *testing.T) {
	// the leftmost bar is white for every scanline
	for _, y := range []int{0, 100, timing.VertActive - 1} {
		r, g, b := renderPattern(0, y, PatternBars)
		test.Equate(t, r, uint8(0xff))
		test.Equate(t, g, uint8(0xff))
		test.Equate(t, b, uint8(0xff))
	}

	// each bar is barWidth pixels wide and follows the fixed color cycle
	for i, c := range barColors {
		r, g, b := renderPattern(i*barWidth, 0, PatternBars)
		test.Equate(t, r, c[0])
		test.Equate(t, g, c[1])
		test.Equate(t, b, c[2])

		r, g, b = renderPattern(i*barWidth+barWidth-1, 0, PatternBars)
		test.Equate(t, r, c[0])
		test.Equate(t, g, c[1])
		test.Equate(t, b, c[2])
	}
}

func TestPatternGrid(t *testing.T) {
	// grid lines on the period boundary
	r, g, b := renderPattern(gridPeriod, 5, PatternGrid)
	test.Equate(t, r, uint8(0xff))
	test.Equate(t, g, uint8(0xff))
	test.Equate(t, b, uint8(0xff))

	// and on the outer edge
	r, _, _ = renderPattern(timing.HorizActive-1, 5, PatternGrid)
	test.Equate(t, r, uint8(0xff))
	_, g, _ = renderPattern(5, timing.VertActive-1, PatternGrid)
	test.Equate(t, g, uint8(0xff))

	// black between the lines
	r, g, b = renderPattern(5, 5, PatternGrid)
	test.Equate(t, r, uint8(0x00))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))
}

func TestPatternRamp(t *testing.T) {
	// intensity proportional to x
	r, g, b := renderPattern(0, 0, PatternRamp)
	test.Equate(t, r, uint8(0x00))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))

	r, g, b = renderPattern(rampDivisor*100, 0, PatternRamp)
	test.Equate(t, r, uint8(100))
	test.Equate(t, g, uint8(100))
	test.Equate(t, b, uint8(100))

	// clamped at full intensity past the saturation threshold
	for _, x := range []int{rampSaturation, timing.HorizActive - 1} {
		r, _, _ = renderPattern(x, 0, PatternRamp)
		test.Equate(t, r, uint8(0xff))
	}
}

func TestPatternPurity(t *testing.T) {
	// identical arguments always produce identical colors
	for i := 0; i < 10; i++ {
		r, g, b := renderPattern(123, 456, PatternBars)
		r2, g2, b2 := renderPattern(123, 456, PatternBars)
		test.Equate(t, r, r2)
		test.Equate(t, g, g2)
		test.Equate(t, b, b2)
	}
}

func TestPatternUnknownVariant(t *testing.T) {
	r, g, b := renderPattern(640, 360, 0xfe)
	test.Equate(t, r, uint8(0x00))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))
}
