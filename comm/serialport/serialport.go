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

// Package serialport pumps the bus protocol over a real serial device,
// letting an external controller drive the emulated peripheral the same way
// it would drive the hardware.
package serialport

import (
	"fmt"

	"go.bug.st/serial"

	"github.com/hqvga/hdmiwing/comm"
	"github.com/hqvga/hdmiwing/logger"
)

// DefaultBaud is used when the caller does not care.
const DefaultBaud = 115200

// Listen opens the named serial device and serves bus transactions from it
// until the port fails or closes. Each completed frame is answered with its
// single reply byte before the next frame is decoded; the protocol has no
// pipelining so there is nothing to overlap.
//
// Listen blocks. Run it in its own goroutine, which becomes the bus context
// of the peripheral.
func Listen(device string, baud int, e comm.Endpoint) error {
	if baud <= 0 {
		baud = DefaultBaud
	}

	p, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("serialport: %w", err)
	}
	defer p.Close()

	logger.Logf("serialport", "listening on %s at %d baud", device, baud)

	dec := comm.NewDecoder(e)
	buf := make([]byte, 64)

	for {
		n, err := p.Read(buf)
		if err != nil {
			return fmt.Errorf("serialport: %w", err)
		}
		if n == 0 {
			// port closed
			return nil
		}

		for _, b := range buf[:n] {
			reply, ok := dec.WriteByte(b)
			if !ok {
				continue
			}
			if err := writeAll(p, []byte{reply}); err != nil {
				return fmt.Errorf("serialport: %w", err)
			}
		}
	}
}

func writeAll(p serial.Port, buf []byte) error {
	for len(buf) > 0 {
		n, err := p.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
