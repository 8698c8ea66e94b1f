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

package led

import (
	"testing"

	"github.com/hqvga/hdmiwing/test"
)

func TestLEDChannels(t *testing.T) {
	l := NewLED()

	test.ExpectedSuccess(t, l.WriteRegister(ledGreen, 0x11))
	test.ExpectedSuccess(t, l.WriteRegister(ledRed, 0x22))
	test.ExpectedSuccess(t, l.WriteRegister(ledBlue, 0x33))

	v, ok := l.ReadRegister(ledGreen)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, uint8(0x11))
	v, _ = l.ReadRegister(ledRed)
	test.Equate(t, v, uint8(0x22))
	v, _ = l.ReadRegister(ledBlue)
	test.Equate(t, v, uint8(0x33))
}

func TestLEDBusy(t *testing.T) {
	l := NewLED()

	// idle on creation
	v, _ := l.ReadRegister(ledCtrl)
	test.Equate(t, v&0x01, uint8(0x00))

	// a channel write starts the fade sequencer
	l.WriteRegister(ledRed, 0xff)
	v, _ = l.ReadRegister(ledCtrl)
	test.Equate(t, v&0x01, uint8(0x01))

	// which retires after the fixed number of ticks
	for i := 0; i < sequenceTicks; i++ {
		l.Step()
	}
	v, _ = l.ReadRegister(ledCtrl)
	test.Equate(t, v&0x01, uint8(0x00))
}
