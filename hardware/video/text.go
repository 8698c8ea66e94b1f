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
	"sync/atomic"
)

// geometry of the text mode. the 80x30 grid fills the active area exactly:
// each cell is 16x24 output pixels, rendered from an 8x8 font bitmap scaled
// 2x horizontally and 3x vertically.
const (
	TextCols = 80
	TextRows = 30

	textCells = TextCols * TextRows

	cellWidth  = 16
	cellHeight = 24

	fontWidth  = 8
	fontHeight = 8
	fontSize   = 256 * fontHeight

	subScaleX = cellWidth / fontWidth
	subScaleY = cellHeight / fontHeight
)

// register offsets in the text block.
const (
	textCtrl uint8 = iota
	textCursorX
	textCursorY
	textAttr
	textChar
	textAttrWr
	textAddrHi
	textAddrLo
	textData
	textAttrData
	textFontAddr
	textFontData
)

// Text is the character grid renderer and its register block.
//
// The character, attribute and font memories are written only by the bus
// context and read only by the tick context. Each cell is a single byte so
// no read can observe a torn value. The one exception is the clear sweep,
// which writes cells from the tick context; the register block rejects all
// bus writes while the sweep runs, keeping the single-writer rule intact.
type Text struct {
	chars [textCells]uint8
	attrs [textCells]uint8
	font  [fontSize]uint8

	cursorX uint8
	cursorY uint8

	// attribute applied by subsequent character writes
	attr uint8

	// sequential access pointer into the character and attribute memories.
	// independent of the cursor. saturates at textCells; accesses beyond the
	// last cell are dropped, they never wrap into foreign memory
	ptr uint16

	// font upload state. a write to textFontAddr selects the glyph and
	// resets the row counter
	fontGlyph uint8
	fontRow   uint8

	// the clear sweep. the trigger crosses from the bus context to the tick
	// context; the sweep index is owned by the tick context alone
	clearing atomic.Bool
	clearIdx int
}

// NewText is the preferred method of initialisation for the Text type.
func NewText() *Text {
	txt := &Text{}
	copy(txt.font[:], fontROM[:])
	txt.attr = (ColBlack << 4) | ColLightGray
	return txt
}

func cellIndex(col uint8, row uint8) int {
	return int(row)*TextCols + int(col)
}

// advance the cursor by one cell. wraps to the next row at the last column
// and to the top of the grid at the last row. there is no scrolling.
func (txt *Text) advance() {
	txt.cursorX++
	if txt.cursorX >= TextCols {
		txt.cursorX = 0
		txt.cursorY++
		if txt.cursorY >= TextRows {
			txt.cursorY = 0
		}
	}
}

func (txt *Text) setPointer(v uint16) {
	if v > textCells {
		v = textCells
	}
	txt.ptr = v
}

// WriteRegister implements the bus.Slave interface. Every write is rejected
// while the clear sweep is running.
func (txt *Text) WriteRegister(offset uint8, data uint8) bool {
	if txt.clearing.Load() {
		return false
	}

	switch offset {
	case textCtrl:
		if data&0x01 == 0x01 {
			txt.clearing.Store(true)
		}

	case textCursorX:
		if data >= TextCols {
			data = TextCols - 1
		}
		txt.cursorX = data

	case textCursorY:
		if data >= TextRows {
			data = TextRows - 1
		}
		txt.cursorY = data

	case textAttr:
		txt.attr = data

	case textChar:
		i := cellIndex(txt.cursorX, txt.cursorY)
		txt.chars[i] = data
		txt.attrs[i] = txt.attr
		txt.advance()

	case textAttrWr:
		txt.attrs[cellIndex(txt.cursorX, txt.cursorY)] = data

	case textAddrHi:
		txt.setPointer(uint16(data)<<8 | txt.ptr&0x00ff)

	case textAddrLo:
		txt.setPointer(txt.ptr&0xff00 | uint16(data))

	case textData:
		if txt.ptr < textCells {
			txt.chars[txt.ptr] = data
			txt.ptr++
		}

	case textAttrData:
		if txt.ptr < textCells {
			txt.attrs[txt.ptr] = data
			txt.ptr++
		}

	case textFontAddr:
		txt.fontGlyph = data
		txt.fontRow = 0

	case textFontData:
		txt.font[int(txt.fontGlyph)*fontHeight+int(txt.fontRow)] = data
		txt.fontRow = (txt.fontRow + 1) % fontHeight
	}

	// writes to unused offsets inside the block are accepted and ignored
	return true
}

// ReadRegister implements the bus.Slave interface. Reads are serviced even
// while the clear sweep is running.
func (txt *Text) ReadRegister(offset uint8) (uint8, bool) {
	switch offset {
	case textCtrl:
		if txt.clearing.Load() {
			return 0x01, true
		}
		return 0x00, true

	case textCursorX:
		return txt.cursorX, true

	case textCursorY:
		return txt.cursorY, true

	case textAttr:
		return txt.attr, true

	case textAddrHi:
		return uint8(txt.ptr >> 8), true

	case textAddrLo:
		return uint8(txt.ptr), true

	case textData:
		if txt.ptr < textCells {
			data := txt.chars[txt.ptr]
			txt.ptr++
			return data, true
		}
		return 0, true

	case textAttrData:
		if txt.ptr < textCells {
			data := txt.attrs[txt.ptr]
			txt.ptr++
			return data, true
		}
		return 0, true
	}

	return 0, true
}

// stepClear progresses the clear sweep by one cell. Called once per tick
// from the compositor whether a sweep is running or not.
//
// The sweep takes exactly textCells ticks. On the final tick the cursor
// returns to the origin and the trigger flag drops, unblocking the register
// block.
func (txt *Text) stepClear() {
	if !txt.clearing.Load() {
		return
	}

	txt.chars[txt.clearIdx] = ' '
	txt.attrs[txt.clearIdx] = txt.attr
	txt.clearIdx++

	if txt.clearIdx >= textCells {
		txt.clearIdx = 0
		txt.cursorX = 0
		txt.cursorY = 0
		txt.clearing.Store(false)
	}
}

// render computes the color of one coordinate of the text grid. Coordinates
// outside the grid render as black.
func (txt *Text) render(x int, y int) (uint8, uint8, uint8) {
	col := x / cellWidth
	row := y / cellHeight
	if col < 0 || col >= TextCols || row < 0 || row >= TextRows {
		return 0x00, 0x00, 0x00
	}

	i := cellIndex(uint8(col), uint8(row))
	glyph := txt.chars[i]
	attr := txt.attrs[i]

	subX := (x % cellWidth) / subScaleX
	subY := (y % cellHeight) / subScaleY
	bits := txt.font[int(glyph)*fontHeight+subY]

	var idx uint8
	if bits&(0x80>>subX) != 0 {
		idx = attr & 0x0f
	} else {
		idx = attr >> 4
	}

	c := palette[idx]
	return c[0], c[1], c[2]
}
