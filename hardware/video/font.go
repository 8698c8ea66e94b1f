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

// The built-in font. Eight bytes per glyph, one byte per row, most
// significant bit leftmost. The font RAM of every text block is initialised
// from this table and can be overwritten through the font upload registers.
//
// Codes without a bitmap of their own (everything outside the printable
// ASCII range) are a solid block. A stray glyph code therefore renders as
// something obviously wrong rather than as undefined pixels.
var fontROM [fontSize]uint8

func init() {
	for i := range fontROM {
		fontROM[i] = 0xff
	}
	for c, d := range fontBitmaps {
		copy(fontROM[int(c)*fontHeight:], d[:])
	}
}

// bitmaps for the printable ASCII range.
var fontBitmaps = map[byte][fontHeight]uint8{
	' ':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'!':  {0x18, 0x3c, 0x3c, 0x18, 0x18, 0x00, 0x18, 0x00},
	'"':  {0x66, 0x66, 0x24, 0x00, 0x00, 0x00, 0x00, 0x00},
	'#':  {0x6c, 0x6c, 0xfe, 0x6c, 0xfe, 0x6c, 0x6c, 0x00},
	'$':  {0x18, 0x3e, 0x60, 0x3c, 0x06, 0x7c, 0x18, 0x00},
	'%':  {0x00, 0xc6, 0xcc, 0x18, 0x30, 0x66, 0xc6, 0x00},
	'&':  {0x38, 0x6c, 0x38, 0x76, 0xdc, 0xcc, 0x76, 0x00},
	'\'': {0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00},
	'(':  {0x0c, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0c, 0x00},
	')':  {0x30, 0x18, 0x0c, 0x0c, 0x0c, 0x18, 0x30, 0x00},
	'*':  {0x00, 0x66, 0x3c, 0xff, 0x3c, 0x66, 0x00, 0x00},
	'+':  {0x00, 0x18, 0x18, 0x7e, 0x18, 0x18, 0x00, 0x00},
	',':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30},
	'-':  {0x00, 0x00, 0x00, 0x7e, 0x00, 0x00, 0x00, 0x00},
	'.':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	'/':  {0x06, 0x0c, 0x18, 0x30, 0x60, 0xc0, 0x80, 0x00},
	'0':  {0x7c, 0xc6, 0xce, 0xde, 0xf6, 0xe6, 0x7c, 0x00},
	'1':  {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7e, 0x00},
	'2':  {0x3c, 0x66, 0x06, 0x0c, 0x30, 0x60, 0x7e, 0x00},
	'3':  {0x3c, 0x66, 0x06, 0x1c, 0x06, 0x66, 0x3c, 0x00},
	'4':  {0x0c, 0x1c, 0x3c, 0x6c, 0x7e, 0x0c, 0x1e, 0x00},
	'5':  {0x7e, 0x60, 0x7c, 0x06, 0x06, 0x66, 0x3c, 0x00},
	'6':  {0x1c, 0x30, 0x60, 0x7c, 0x66, 0x66, 0x3c, 0x00},
	'7':  {0x7e, 0x66, 0x06, 0x0c, 0x18, 0x18, 0x18, 0x00},
	'8':  {0x3c, 0x66, 0x66, 0x3c, 0x66, 0x66, 0x3c, 0x00},
	'9':  {0x3c, 0x66, 0x66, 0x3e, 0x06, 0x0c, 0x38, 0x00},
	':':  {0x00, 0x18, 0x18, 0x00, 0x00, 0x18, 0x18, 0x00},
	';':  {0x00, 0x18, 0x18, 0x00, 0x00, 0x18, 0x18, 0x30},
	'<':  {0x0c, 0x18, 0x30, 0x60, 0x30, 0x18, 0x0c, 0x00},
	'=':  {0x00, 0x00, 0x7e, 0x00, 0x00, 0x7e, 0x00, 0x00},
	'>':  {0x30, 0x18, 0x0c, 0x06, 0x0c, 0x18, 0x30, 0x00},
	'?':  {0x3c, 0x66, 0x06, 0x0c, 0x18, 0x00, 0x18, 0x00},
	'@':  {0x7c, 0xc6, 0xde, 0xde, 0xde, 0xc0, 0x78, 0x00},
	'A':  {0x18, 0x3c, 0x66, 0x66, 0x7e, 0x66, 0x66, 0x00},
	'B':  {0x7c, 0x66, 0x66, 0x7c, 0x66, 0x66, 0x7c, 0x00},
	'C':  {0x3c, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3c, 0x00},
	'D':  {0x78, 0x6c, 0x66, 0x66, 0x66, 0x6c, 0x78, 0x00},
	'E':  {0x7e, 0x60, 0x60, 0x78, 0x60, 0x60, 0x7e, 0x00},
	'F':  {0x7e, 0x60, 0x60, 0x78, 0x60, 0x60, 0x60, 0x00},
	'G':  {0x3c, 0x66, 0x60, 0x6e, 0x66, 0x66, 0x3e, 0x00},
	'H':  {0x66, 0x66, 0x66, 0x7e, 0x66, 0x66, 0x66, 0x00},
	'I':  {0x3c, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3c, 0x00},
	'J':  {0x1e, 0x0c, 0x0c, 0x0c, 0x0c, 0x6c, 0x38, 0x00},
	'K':  {0x66, 0x6c, 0x78, 0x70, 0x78, 0x6c, 0x66, 0x00},
	'L':  {0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7e, 0x00},
	'M':  {0xc6, 0xee, 0xfe, 0xd6, 0xc6, 0xc6, 0xc6, 0x00},
	'N':  {0x66, 0x76, 0x7e, 0x7e, 0x6e, 0x66, 0x66, 0x00},
	'O':  {0x3c, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'P':  {0x7c, 0x66, 0x66, 0x7c, 0x60, 0x60, 0x60, 0x00},
	'Q':  {0x3c, 0x66, 0x66, 0x66, 0x66, 0x6e, 0x3c, 0x06},
	'R':  {0x7c, 0x66, 0x66, 0x7c, 0x78, 0x6c, 0x66, 0x00},
	'S':  {0x3c, 0x66, 0x60, 0x3c, 0x06, 0x66, 0x3c, 0x00},
	'T':  {0x7e, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'U':  {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'V':  {0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x18, 0x00},
	'W':  {0xc6, 0xc6, 0xc6, 0xd6, 0xfe, 0xee, 0xc6, 0x00},
	'X':  {0x66, 0x66, 0x3c, 0x18, 0x3c, 0x66, 0x66, 0x00},
	'Y':  {0x66, 0x66, 0x66, 0x3c, 0x18, 0x18, 0x18, 0x00},
	'Z':  {0x7e, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x7e, 0x00},
	'[':  {0x3c, 0x30, 0x30, 0x30, 0x30, 0x30, 0x3c, 0x00},
	'\\': {0xc0, 0x60, 0x30, 0x18, 0x0c, 0x06, 0x02, 0x00},
	']':  {0x3c, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x3c, 0x00},
	'^':  {0x18, 0x3c, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00},
	'_':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff},
	'`':  {0x30, 0x18, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00},
	'a':  {0x00, 0x00, 0x3c, 0x06, 0x3e, 0x66, 0x3e, 0x00},
	'b':  {0x60, 0x60, 0x7c, 0x66, 0x66, 0x66, 0x7c, 0x00},
	'c':  {0x00, 0x00, 0x3c, 0x66, 0x60, 0x66, 0x3c, 0x00},
	'd':  {0x06, 0x06, 0x3e, 0x66, 0x66, 0x66, 0x3e, 0x00},
	'e':  {0x00, 0x00, 0x3c, 0x66, 0x7e, 0x60, 0x3c, 0x00},
	'f':  {0x1c, 0x36, 0x30, 0x78, 0x30, 0x30, 0x30, 0x00},
	'g':  {0x00, 0x00, 0x3e, 0x66, 0x66, 0x3e, 0x06, 0x7c},
	'h':  {0x60, 0x60, 0x7c, 0x66, 0x66, 0x66, 0x66, 0x00},
	'i':  {0x18, 0x00, 0x38, 0x18, 0x18, 0x18, 0x3c, 0x00},
	'j':  {0x0c, 0x00, 0x1c, 0x0c, 0x0c, 0x0c, 0x6c, 0x38},
	'k':  {0x60, 0x60, 0x66, 0x6c, 0x78, 0x6c, 0x66, 0x00},
	'l':  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3c, 0x00},
	'm':  {0x00, 0x00, 0xec, 0xfe, 0xd6, 0xc6, 0xc6, 0x00},
	'n':  {0x00, 0x00, 0x7c, 0x66, 0x66, 0x66, 0x66, 0x00},
	'o':  {0x00, 0x00, 0x3c, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'p':  {0x00, 0x00, 0x7c, 0x66, 0x66, 0x7c, 0x60, 0x60},
	'q':  {0x00, 0x00, 0x3e, 0x66, 0x66, 0x3e, 0x06, 0x06},
	'r':  {0x00, 0x00, 0x7c, 0x66, 0x60, 0x60, 0x60, 0x00},
	's':  {0x00, 0x00, 0x3e, 0x60, 0x3c, 0x06, 0x7c, 0x00},
	't':  {0x18, 0x18, 0x7e, 0x18, 0x18, 0x1a, 0x0c, 0x00},
	'u':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x66, 0x3e, 0x00},
	'v':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3c, 0x18, 0x00},
	'w':  {0x00, 0x00, 0xc6, 0xc6, 0xd6, 0xfe, 0x6c, 0x00},
	'x':  {0x00, 0x00, 0x66, 0x3c, 0x18, 0x3c, 0x66, 0x00},
	'y':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3e, 0x0c, 0x78},
	'z':  {0x00, 0x00, 0x7e, 0x0c, 0x18, 0x30, 0x7e, 0x00},
	'{':  {0x0e, 0x18, 0x18, 0x70, 0x18, 0x18, 0x0e, 0x00},
	'|':  {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'}':  {0x70, 0x18, 0x18, 0x0e, 0x18, 0x18, 0x70, 0x00},
	'~':  {0x76, 0xdc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}
