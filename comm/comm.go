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

// Package comm decodes the wire protocol spoken by the host controller into
// bus transactions. Frames are three bytes: a command byte, an address byte
// and a data byte (a placeholder of 0x00 for reads). Every frame is answered
// with exactly one byte: the register value for a read, an acknowledgement
// for a write.
//
// The framing below this level (SPI chip select, serial line discipline) is
// the transport's problem; see the serialport sub-package for one transport.
package comm

import "github.com/hqvga/hdmiwing/hardware/bus"

// The command bytes of the wire protocol.
const (
	CmdWrite uint8 = 0x01
	CmdRead  uint8 = 0x02
)

// The reply bytes for a write frame.
const (
	AckOK       uint8 = 0x01
	AckRejected uint8 = 0x00
)

// Endpoint is the register side of the transport: anything that can answer
// a bus transaction. Implemented by hardware.Wing.
type Endpoint interface {
	Route(tx bus.Transaction) bus.Reply
}

// Handle one decoded frame, returning the single reply byte. An unknown
// command byte answers 0x00 and routes nothing.
func Handle(e Endpoint, cmd uint8, addr uint8, data uint8) uint8 {
	switch cmd {
	case CmdWrite:
		rep := e.Route(bus.Transaction{Address: addr, Data: data, IsWrite: true})
		if rep.Accepted {
			return AckOK
		}
		return AckRejected

	case CmdRead:
		rep := e.Route(bus.Transaction{Address: addr})
		return rep.Data
	}

	return 0x00
}

// Decoder accumulates a byte stream into three byte frames and hands each
// completed frame to the endpoint. It is a plain state machine: safe to feed
// from a single transport goroutine, one byte at a time.
type Decoder struct {
	e     Endpoint
	frame [3]uint8
	cnt   int
}

// NewDecoder is the preferred method of initialisation for the Decoder
// type.
func NewDecoder(e Endpoint) *Decoder {
	return &Decoder{e: e}
}

// WriteByte feeds one byte of the stream to the decoder. When the byte
// completes a frame the frame is handled and the reply byte is returned
// with ok set to true.
func (d *Decoder) WriteByte(b uint8) (reply uint8, ok bool) {
	d.frame[d.cnt] = b
	d.cnt++

	if d.cnt < len(d.frame) {
		return 0, false
	}
	d.cnt = 0

	return Handle(d.e, d.frame[0], d.frame[1], d.frame[2]), true
}
