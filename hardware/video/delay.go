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

// PipelineDepth is the length of the longest lookup chain in the render
// sources: character cell fetch, font row fetch, pixel select. The
// compositor delays coordinates and sync flags by this many ticks so that
// flags stay aligned with the pixel data that emerges from the chain.
const PipelineDepth = 3

// delayLine is a fixed depth shift register of timing states. Every shift
// accepts one state and returns the state submitted PipelineDepth shifts
// earlier.
type delayLine struct {
	buf [PipelineDepth]timing.State
	idx int
}

// newDelayLine primes the line with states that carry out-of-frame
// coordinates, so the first PipelineDepth outputs are blank rather than a
// spurious rendering of coordinate (0,0).
func newDelayLine() delayLine {
	dl := delayLine{}
	for i := range dl.buf {
		dl.buf[i].Coords = timing.Coords{X: -1, Y: -1, Frame: -1}
	}
	return dl
}

func (dl *delayLine) shift(s timing.State) timing.State {
	out := dl.buf[dl.idx]
	dl.buf[dl.idx] = s
	dl.idx++
	if dl.idx >= PipelineDepth {
		dl.idx = 0
	}
	return out
}
