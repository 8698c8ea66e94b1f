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

	"github.com/hqvga/hdmiwing/version"
)

// The video modes selected by the VIDEO_MODE register.
const (
	ModePattern uint8 = iota
	ModeText
	ModeFramebuffer
)

// register offsets in the mode block.
const (
	modeSelect uint8 = iota
	modePattern
	modeStatus
	modeVersion
)

// ModeRegisters is the video mode control block. The mode and pattern
// registers are the only state that crosses from the bus context to the
// tick context, so both live in a single atomically published word: the
// tick context always observes a fully-old or fully-new pair, never a
// partial update.
type ModeRegisters struct {
	// mode in bits 0-7, pattern variant in bits 8-15
	packed atomic.Uint32
}

// NewModeRegisters is the preferred method of initialisation for the
// ModeRegisters type.
func NewModeRegisters() *ModeRegisters {
	return &ModeRegisters{}
}

// snapshot returns the mode and pattern variant as one consistent pair.
// Called from the tick context.
func (md *ModeRegisters) snapshot() (uint8, uint8) {
	v := md.packed.Load()
	return uint8(v), uint8(v >> 8)
}

// WriteRegister implements the bus.Slave interface.
func (md *ModeRegisters) WriteRegister(offset uint8, data uint8) bool {
	// the bus context is the only writer so a load/store pair is enough
	switch offset {
	case modeSelect:
		md.packed.Store(md.packed.Load()&0xff00 | uint32(data))
	case modePattern:
		md.packed.Store(md.packed.Load()&0x00ff | uint32(data)<<8)
	}

	// the status and version registers are read-only. writes to them, and
	// to the unused offsets of the block, are accepted and ignored
	return true
}

// ReadRegister implements the bus.Slave interface.
func (md *ModeRegisters) ReadRegister(offset uint8) (uint8, bool) {
	switch offset {
	case modeSelect:
		mode, _ := md.snapshot()
		return mode, true

	case modePattern:
		_, variant := md.snapshot()
		return variant, true

	case modeStatus:
		// bit 0: the video signal is running. always true once the
		// peripheral is constructed
		return 0x01, true

	case modeVersion:
		return version.CoreRevision, true
	}

	return 0, true
}
