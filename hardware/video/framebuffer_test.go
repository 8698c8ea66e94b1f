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

	"github.com/hqvga/hdmiwing/test"
)

func TestFramebufferChannelExpansion(t *testing.T) {
	// expansion is by bit replication: minimum and maximum channel values
	// map to true black and full intensity
	test.Equate(t, expand3(0), uint8(0x00))
	test.Equate(t, expand3(7), uint8(0xff))
	test.Equate(t, expand2(0), uint8(0x00))
	test.Equate(t, expand2(3), uint8(0xff))

	// a simple shift would leave the low bits empty; replication fills them
	test.Equate(t, expand3(4), uint8(0x92))
	test.Equate(t, expand2(2), uint8(0xaa))
}

func TestFramebufferRoundTrip(t *testing.T) {
	fb := NewFramebuffer()

	// write 3-3-2 white at pixel address 0
	fb.WriteRegister(fbAddrHi, 0x00)
	fb.WriteRegister(fbAddrLo, 0x00)
	fb.WriteRegister(fbData, 0xff)

	// the whole top-left scaled block renders full-intensity white
	for y := 0; y < FBScale; y++ {
		for x := fbXOrigin; x < fbXOrigin+FBScale; x++ {
			r, g, b := fb.render(x, y)
			test.Equate(t, r, uint8(0xff))
			test.Equate(t, g, uint8(0xff))
			test.Equate(t, b, uint8(0xff))
		}
	}

	// the neighbouring block is untouched
	r, g, b := fb.render(fbXOrigin+FBScale, 0)
	test.Equate(t, r, uint8(0x00))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))
}

func TestFramebufferBorder(t *testing.T) {
	fb := NewFramebuffer()

	// fill the entire framebuffer with white
	fb.WriteRegister(fbAddrHi, 0x00)
	fb.WriteRegister(fbAddrLo, 0x00)
	for i := 0; i < fbCells; i++ {
		fb.WriteRegister(fbData, 0xff)
	}

	// the border renders black regardless of framebuffer contents
	for _, x := range []int{0, fbXOrigin - 1} {
		r, g, b := fb.render(x, 0)
		test.Equate(t, r, uint8(0x00))
		test.Equate(t, g, uint8(0x00))
		test.Equate(t, b, uint8(0x00))
	}
	r, _, _ := fb.render(fbXOrigin+FBWidth*FBScale, 0)
	test.Equate(t, r, uint8(0x00))

	// but the centred region is white from edge to edge
	r, _, _ = fb.render(fbXOrigin, 0)
	test.Equate(t, r, uint8(0xff))
	r, _, _ = fb.render(fbXOrigin+FBWidth*FBScale-1, FBHeight*FBScale-1)
	test.Equate(t, r, uint8(0xff))
}

func TestFramebufferAddressing(t *testing.T) {
	fb := NewFramebuffer()

	// pixel address p is pixel (p mod width, p div width)
	p := 3*FBWidth + 17
	fb.WriteRegister(fbAddrHi, uint8(p>>8))
	fb.WriteRegister(fbAddrLo, uint8(p&0xff))
	fb.WriteRegister(fbData, 0xe0) // full red

	r, g, b := fb.render(fbXOrigin+17*FBScale, 3*FBScale)
	test.Equate(t, r, uint8(0xff))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))
}

func TestFramebufferPointerSaturation(t *testing.T) {
	fb := NewFramebuffer()

	// writes beyond the last pixel are dropped
	fb.WriteRegister(fbAddrHi, 0xff)
	fb.WriteRegister(fbAddrLo, 0xff)
	test.Equate(t, fb.ptr, uint16(fbCells))

	fb.WriteRegister(fbData, 0xff)
	test.Equate(t, fb.ptr, uint16(fbCells))
	for i := range fb.pixels {
		test.Equate(t, fb.pixels[i], uint8(0x00))
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer()

	fb.WriteRegister(fbAddrHi, 0x00)
	fb.WriteRegister(fbAddrLo, 0x00)
	fb.WriteRegister(fbData, 0xff)

	fb.WriteRegister(fbCtrl, 0x01)
	test.Equate(t, fb.pixels[0], uint8(0x00))
}
