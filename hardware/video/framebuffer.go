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

// geometry of the framebuffer mode. the low resolution grid is scaled by a
// fixed integer ratio and centred horizontally in the active area; it fills
// the active height exactly.
const (
	FBWidth  = 160
	FBHeight = 120
	FBScale  = 6

	fbCells   = FBWidth * FBHeight
	fbXOrigin = (timing.HorizActive - FBWidth*FBScale) / 2
)

// register offsets in the framebuffer block.
const (
	fbAddrHi uint8 = iota
	fbAddrLo
	fbData
	fbCtrl
)

// Framebuffer is the pixel grid renderer and its register block. One byte
// per pixel, packed 3-3-2 red/green/blue, row-major.
//
// Pixels are addressed through the auto-incrementing pointer: the byte at
// pointer p is pixel (p mod FBWidth, p div FBWidth).
type Framebuffer struct {
	pixels [fbCells]uint8

	// saturates at fbCells. accesses beyond the last pixel are dropped
	ptr uint16
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

func (fb *Framebuffer) setPointer(v uint16) {
	if v > fbCells {
		v = fbCells
	}
	fb.ptr = v
}

// WriteRegister implements the bus.Slave interface.
func (fb *Framebuffer) WriteRegister(offset uint8, data uint8) bool {
	switch offset {
	case fbAddrHi:
		fb.setPointer(uint16(data)<<8 | fb.ptr&0x00ff)

	case fbAddrLo:
		fb.setPointer(fb.ptr&0xff00 | uint16(data))

	case fbData:
		if fb.ptr < fbCells {
			fb.pixels[fb.ptr] = data
			fb.ptr++
		}

	case fbCtrl:
		if data&0x01 == 0x01 {
			for i := range fb.pixels {
				fb.pixels[i] = 0x00
			}
		}
	}

	return true
}

// ReadRegister implements the bus.Slave interface.
func (fb *Framebuffer) ReadRegister(offset uint8) (uint8, bool) {
	switch offset {
	case fbAddrHi:
		return uint8(fb.ptr >> 8), true

	case fbAddrLo:
		return uint8(fb.ptr), true

	case fbData:
		if fb.ptr < fbCells {
			data := fb.pixels[fb.ptr]
			fb.ptr++
			return data, true
		}
		return 0, true
	}

	return 0, true
}

// expand a 3-bit channel to 8 bits by bit replication. the minimum and
// maximum channel values map to true black and full intensity, which a
// simple shift would not give.
func expand3(v uint8) uint8 {
	return v<<5 | v<<2 | v>>1
}

// expand a 2-bit channel to 8 bits by bit replication.
func expand2(v uint8) uint8 {
	return v<<6 | v<<4 | v<<2 | v
}

// render computes the color of one coordinate of the upscaled framebuffer.
// Coordinates outside the centred region render as the black border,
// whatever the framebuffer contents.
func (fb *Framebuffer) render(x int, y int) (uint8, uint8, uint8) {
	if x < fbXOrigin || x >= fbXOrigin+FBWidth*FBScale || y < 0 || y >= FBHeight*FBScale {
		return 0x00, 0x00, 0x00
	}

	sx := (x - fbXOrigin) / FBScale
	sy := y / FBScale
	p := fb.pixels[sy*FBWidth+sx]

	return expand3(p >> 5), expand3((p >> 2) & 0x07), expand2(p & 0x03)
}
