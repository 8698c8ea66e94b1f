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

import "github.com/hqvga/hdmiwing/hardware/timing"

// The test pattern variants selected by the VIDEO_PATTERN register.
const (
	PatternBars uint8 = iota
	PatternGrid
	PatternRamp
)

// geometry of the test patterns
const (
	barWidth   = timing.HorizActive / 8
	gridPeriod = 16

	// x values at and beyond rampSaturation render at full intensity
	rampSaturation = 255 * rampDivisor
	rampDivisor    = timing.HorizActive / 256
)

// the fixed eight color cycle of the bars pattern, left to right.
var barColors = [8][3]uint8{
	{0xff, 0xff, 0xff}, // white
	{0xff, 0xff, 0x00}, // yellow
	{0x00, 0xff, 0xff}, // cyan
	{0x00, 0xff, 0x00}, // green
	{0xff, 0x00, 0xff}, // magenta
	{0xff, 0x00, 0x00}, // red
	{0x00, 0x00, 0xff}, // blue
	{0x00, 0x00, 0x00}, // black
}

// renderPattern computes the test pattern color for a coordinate. It is a
// pure function of its arguments: no state, no side effects, cheap enough to
// call at the full tick rate.
func renderPattern(x int, y int, variant uint8) (uint8, uint8, uint8) {
	switch variant {
	case PatternBars:
		c := barColors[(x/barWidth)&0x07]
		return c[0], c[1], c[2]

	case PatternGrid:
		if x%gridPeriod == 0 || y%gridPeriod == 0 ||
			x == timing.HorizActive-1 || y == timing.VertActive-1 {
			return 0xff, 0xff, 0xff
		}
		return 0x00, 0x00, 0x00

	case PatternRamp:
		v := x / rampDivisor
		if x >= rampSaturation {
			v = 255
		}
		return uint8(v), uint8(v), uint8(v)
	}

	// unrecognised variant renders black rather than anything undefined
	return 0x00, 0x00, 0x00
}
