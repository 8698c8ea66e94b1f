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

// Package registers is the canonical register map of the peripheral: the
// address region claimed by each block and the full address of every named
// register. The symbolic names are used by the monitor; the blocks
// themselves work in offsets relative to their region origin.
package registers

// Address regions, one per register block. Origin and memtop are inclusive.
const (
	LEDOrigin  uint8 = 0x00
	LEDMemtop  uint8 = 0x0f
	ModeOrigin uint8 = 0x10
	ModeMemtop uint8 = 0x1f
	TextOrigin uint8 = 0x20
	TextMemtop uint8 = 0x2f
	FBOrigin   uint8 = 0x30
	FBMemtop   uint8 = 0x3f
)

// Full addresses of the named registers.
const (
	LEDGreen uint8 = 0x00
	LEDRed   uint8 = 0x01
	LEDBlue  uint8 = 0x02
	LEDCtrl  uint8 = 0x03

	VideoMode    uint8 = 0x10
	VideoPattern uint8 = 0x11
	VideoStatus  uint8 = 0x12
	VideoVersion uint8 = 0x13

	TextCtrl     uint8 = 0x20
	TextCursorX  uint8 = 0x21
	TextCursorY  uint8 = 0x22
	TextAttr     uint8 = 0x23
	TextChar     uint8 = 0x24
	TextAttrWr   uint8 = 0x25
	TextAddrHi   uint8 = 0x26
	TextAddrLo   uint8 = 0x27
	TextData     uint8 = 0x28
	TextAttrData uint8 = 0x29
	TextFontAddr uint8 = 0x2a
	TextFontData uint8 = 0x2b

	FBAddrHi uint8 = 0x30
	FBAddrLo uint8 = 0x31
	FBData   uint8 = 0x32
	FBCtrl   uint8 = 0x33
)

// Names maps a symbolic register name to its full address.
var Names = map[string]uint8{
	"LED_GREEN":      LEDGreen,
	"LED_RED":        LEDRed,
	"LED_BLUE":       LEDBlue,
	"LED_CTRL":       LEDCtrl,
	"VIDEO_MODE":     VideoMode,
	"VIDEO_PATTERN":  VideoPattern,
	"VIDEO_STATUS":   VideoStatus,
	"VIDEO_VERSION":  VideoVersion,
	"TEXT_CTRL":      TextCtrl,
	"TEXT_CURSOR_X":  TextCursorX,
	"TEXT_CURSOR_Y":  TextCursorY,
	"TEXT_ATTR":      TextAttr,
	"TEXT_CHAR":      TextChar,
	"TEXT_ATTR_WR":   TextAttrWr,
	"TEXT_ADDR_HI":   TextAddrHi,
	"TEXT_ADDR_LO":   TextAddrLo,
	"TEXT_DATA":      TextData,
	"TEXT_ATTR_DATA": TextAttrData,
	"TEXT_FONT_ADDR": TextFontAddr,
	"TEXT_FONT_DATA": TextFontData,
	"FB_ADDR_HI":     FBAddrHi,
	"FB_ADDR_LO":     FBAddrLo,
	"FB_DATA":        FBData,
	"FB_CTRL":        FBCtrl,
}
