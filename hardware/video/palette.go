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

// The sixteen colors a text attribute nibble can select. The layout of the
// nibble is [3]=bright [2]=red [1]=green [0]=blue, which gives the
// traditional CGA ordering.
const (
	ColBlack = iota
	ColBlue
	ColGreen
	ColCyan
	ColRed
	ColMagenta
	ColBrown
	ColLightGray
	ColDarkGray
	ColLightBlue
	ColLightGreen
	ColLightCyan
	ColLightRed
	ColLightMagenta
	ColYellow
	ColWhite
)

// palette maps a 4-bit attribute index to full range RGB.
var palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0x00, 0x00, 0xaa}, // blue
	{0x00, 0xaa, 0x00}, // green
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0x00, 0x00}, // red
	{0xaa, 0x00, 0xaa}, // magenta
	{0xaa, 0x55, 0x00}, // brown
	{0xaa, 0xaa, 0xaa}, // light gray
	{0x55, 0x55, 0x55}, // dark gray
	{0x55, 0x55, 0xff}, // light blue
	{0x55, 0xff, 0x55}, // light green
	{0x55, 0xff, 0xff}, // light cyan
	{0xff, 0x55, 0x55}, // light red
	{0xff, 0x55, 0xff}, // light magenta
	{0xff, 0xff, 0x55}, // yellow
	{0xff, 0xff, 0xff}, // white
}
