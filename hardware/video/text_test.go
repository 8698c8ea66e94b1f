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

func TestTextCharWrite(t *testing.T) {
	txt := NewText()

	test.ExpectedSuccess(t, txt.WriteRegister(textCursorX, 0))
	test.ExpectedSuccess(t, txt.WriteRegister(textCursorY, 0))
	test.ExpectedSuccess(t, txt.WriteRegister(textAttr, 0x0f))
	test.ExpectedSuccess(t, txt.WriteRegister(textChar, 'A'))

	// the glyph and the default attribute land in the cell together
	test.Equate(t, txt.chars[0], uint8('A'))
	test.Equate(t, txt.attrs[0], uint8(0x0f))

	// and the cursor advances
	test.Equate(t, txt.cursorX, uint8(1))
	test.Equate(t, txt.cursorY, uint8(0))
}

func TestTextCursorWrap(t *testing.T) {
	txt := NewText()

	// a full row of writes wraps the cursor to the start of the next row
	txt.WriteRegister(textCursorX, 0)
	txt.WriteRegister(textCursorY, 0)
	for i := 0; i < TextCols; i++ {
		test.Equate(t, txt.cursorX, uint8(i))
		test.Equate(t, txt.cursorY, uint8(0))
		txt.WriteRegister(textChar, '.')
	}
	test.Equate(t, txt.cursorX, uint8(0))
	test.Equate(t, txt.cursorY, uint8(1))

	// writing the very last cell of the grid wraps to the origin
	txt.WriteRegister(textCursorX, TextCols-1)
	txt.WriteRegister(textCursorY, TextRows-1)
	txt.WriteRegister(textChar, '.')
	test.Equate(t, txt.cursorX, uint8(0))
	test.Equate(t, txt.cursorY, uint8(0))
}

func TestTextCursorClamp(t *testing.T) {
	txt := NewText()

	// out of range cursor positions clamp to the grid bounds
	txt.WriteRegister(textCursorX, 0xff)
	txt.WriteRegister(textCursorY, 0xff)
	test.Equate(t, txt.cursorX, uint8(TextCols-1))
	test.Equate(t, txt.cursorY, uint8(TextRows-1))
}

func TestTextClearSweep(t *testing.T) {
	txt := NewText()

	txt.WriteRegister(textAttr, 0x17)
	txt.WriteRegister(textCursorX, 10)
	txt.WriteRegister(textCursorY, 10)
	txt.WriteRegister(textChar, 'x')

	test.ExpectedSuccess(t, txt.WriteRegister(textCtrl, 0x01))

	// writes are rejected while the sweep runs. reads are not
	test.ExpectedFailure(t, txt.WriteRegister(textChar, 'y'))
	test.ExpectedFailure(t, txt.WriteRegister(textCursorX, 0))
	busy, ok := txt.ReadRegister(textCtrl)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, busy, uint8(0x01))

	// the sweep takes exactly one tick per cell
	for i := 0; i < textCells-1; i++ {
		txt.stepClear()
		test.ExpectedSuccess(t, txt.clearing.Load())
	}
	txt.stepClear()
	test.ExpectedFailure(t, txt.clearing.Load())

	// every cell is space/default-attribute and the cursor is home
	for i := 0; i < textCells; i++ {
		test.Equate(t, txt.chars[i], uint8(' '))
		test.Equate(t, txt.attrs[i], uint8(0x17))
	}
	test.Equate(t, txt.cursorX, uint8(0))
	test.Equate(t, txt.cursorY, uint8(0))

	// and the block accepts writes again
	test.ExpectedSuccess(t, txt.WriteRegister(textChar, 'y'))
}

func TestTextSequentialAccess(t *testing.T) {
	txt := NewText()

	// pointer writes through the hi/lo registers
	txt.WriteRegister(textAddrHi, 0x01)
	txt.WriteRegister(textAddrLo, 0x02)
	test.Equate(t, txt.ptr, uint16(0x0102))

	txt.WriteRegister(textData, 'a')
	txt.WriteRegister(textData, 'b')
	test.Equate(t, txt.chars[0x0102], uint8('a'))
	test.Equate(t, txt.chars[0x0103], uint8('b'))
	test.Equate(t, txt.ptr, uint16(0x0104))

	// attribute RAM has its own data register but shares the pointer
	txt.WriteRegister(textAddrHi, 0x00)
	txt.WriteRegister(textAddrLo, 0x00)
	txt.WriteRegister(textAttrData, 0x42)
	test.Equate(t, txt.attrs[0], uint8(0x42))

	// reads auto-increment too
	txt.WriteRegister(textAddrHi, 0x01)
	txt.WriteRegister(textAddrLo, 0x02)
	v, _ := txt.ReadRegister(textData)
	test.Equate(t, v, uint8('a'))
	v, _ = txt.ReadRegister(textData)
	test.Equate(t, v, uint8('b'))
}

func TestTextPointerClamp(t *testing.T) {
	txt := NewText()

	// a pointer beyond the grid saturates; writes there are dropped and
	// never wrap into the attribute memory
	txt.WriteRegister(textAddrHi, 0xff)
	txt.WriteRegister(textAddrLo, 0xff)
	test.Equate(t, txt.ptr, uint16(textCells))

	txt.WriteRegister(textData, 'x')
	test.Equate(t, txt.ptr, uint16(textCells))
	for i := range txt.attrs {
		if txt.attrs[i] == 'x' {
			t.Fatalf("sequential write wrapped into attribute memory at %d", i)
		}
	}

	// the last valid cell is still writable
	txt.WriteRegister(textAddrHi, uint8((textCells-1)>>8))
	txt.WriteRegister(textAddrLo, uint8((textCells-1)&0xff))
	txt.WriteRegister(textData, 'x')
	test.Equate(t, txt.chars[textCells-1], uint8('x'))
	test.Equate(t, txt.ptr, uint16(textCells))
}

func TestTextRender(t *testing.T) {
	txt := NewText()

	// white on black 'A' at the top-left cell
	txt.WriteRegister(textCursorX, 0)
	txt.WriteRegister(textCursorY, 0)
	txt.WriteRegister(textAttr, (ColBlack<<4)|ColWhite)
	txt.WriteRegister(textChar, 'A')

	// every output pixel of the cell is either the foreground or the
	// background color and the set of lit sub-columns matches the font row
	for y := 0; y < cellHeight; y++ {
		for x := 0; x < cellWidth; x++ {
			r, g, b := txt.render(x, y)
			bits := txt.font[int('A')*fontHeight+y/subScaleY]
			if bits&(0x80>>(x/subScaleX)) != 0 {
				test.Equate(t, r, uint8(0xff))
				test.Equate(t, g, uint8(0xff))
				test.Equate(t, b, uint8(0xff))
			} else {
				test.Equate(t, r, uint8(0x00))
				test.Equate(t, g, uint8(0x00))
				test.Equate(t, b, uint8(0x00))
			}
		}
	}
}

func TestTextRenderOutOfRange(t *testing.T) {
	txt := NewText()

	// coordinates outside the grid render as black, they do not fault
	r, g, b := txt.render(-1, -1)
	test.Equate(t, r, uint8(0x00))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))

	r, g, b = txt.render(TextCols*cellWidth, TextRows*cellHeight)
	test.Equate(t, r, uint8(0x00))
	test.Equate(t, g, uint8(0x00))
	test.Equate(t, b, uint8(0x00))
}

func TestTextFallbackGlyph(t *testing.T) {
	txt := NewText()

	// a glyph code with no bitmap renders as a solid block of foreground
	txt.WriteRegister(textAttr, (ColBlack<<4)|ColWhite)
	txt.WriteRegister(textCursorX, 0)
	txt.WriteRegister(textCursorY, 0)
	txt.WriteRegister(textChar, 0x01)

	for y := 0; y < cellHeight; y++ {
		for x := 0; x < cellWidth; x++ {
			r, _, _ := txt.render(x, y)
			test.Equate(t, r, uint8(0xff))
		}
	}
}

func TestTextFontUpload(t *testing.T) {
	txt := NewText()

	// upload a custom bitmap for glyph 0x01: the top half lit, the bottom
	// half clear
	txt.WriteRegister(textFontAddr, 0x01)
	for row := 0; row < fontHeight; row++ {
		var v uint8
		if row < fontHeight/2 {
			v = 0xff
		}
		txt.WriteRegister(textFontData, v)
	}

	txt.WriteRegister(textAttr, (ColBlack<<4)|ColWhite)
	txt.WriteRegister(textCursorX, 0)
	txt.WriteRegister(textCursorY, 0)
	txt.WriteRegister(textChar, 0x01)

	// the uploaded bitmap renders in place of the ROM fallback
	r, _, _ := txt.render(0, 0)
	test.Equate(t, r, uint8(0xff))
	r, _, _ = txt.render(0, cellHeight-1)
	test.Equate(t, r, uint8(0x00))
}
