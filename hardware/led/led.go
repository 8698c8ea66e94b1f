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

// Package led is the ancillary RGB LED sequencer block. The real hardware
// fades the LED towards a newly written color over a short period and
// reports the fade through a busy flag; the emulation models the fade as a
// countdown in the tick domain. No light is produced anywhere.
package led

import (
	"sync/atomic"

	"github.com/hqvga/hdmiwing/hardware/timing"
)

// the fade sequencer runs for a fixed number of ticks after any channel
// write. two frames approximates the fade duration of the hardware.
const sequenceTicks = 2 * timing.TicksPerFrame

// register offsets in the LED block.
const (
	ledGreen uint8 = iota
	ledRed
	ledBlue
	ledCtrl
)

// LED is the color sequencer register block.
type LED struct {
	green uint8
	red   uint8
	blue  uint8
	ctrl  uint8

	// the busy flag crosses from the tick context (which retires the fade)
	// to the bus context (which polls it)
	busy      atomic.Bool
	countdown atomic.Int32
}

// NewLED is the preferred method of initialisation for the LED type.
func NewLED() *LED {
	return &LED{}
}

// WriteRegister implements the bus.Slave interface. A write to any of the
// color channels restarts the fade sequencer.
func (l *LED) WriteRegister(offset uint8, data uint8) bool {
	switch offset {
	case ledGreen:
		l.green = data
	case ledRed:
		l.red = data
	case ledBlue:
		l.blue = data
	case ledCtrl:
		l.ctrl = data
		return true
	default:
		return true
	}

	l.countdown.Store(sequenceTicks)
	l.busy.Store(true)

	return true
}

// ReadRegister implements the bus.Slave interface.
func (l *LED) ReadRegister(offset uint8) (uint8, bool) {
	switch offset {
	case ledGreen:
		return l.green, true
	case ledRed:
		return l.red, true
	case ledBlue:
		return l.blue, true
	case ledCtrl:
		v := l.ctrl & 0xfe
		if l.busy.Load() {
			v |= 0x01
		}
		return v, true
	}

	return 0, true
}

// Step the fade sequencer by one tick. Called from the tick context.
func (l *LED) Step() {
	if !l.busy.Load() {
		return
	}
	if l.countdown.Add(-1) <= 0 {
		l.busy.Store(false)
	}
}
