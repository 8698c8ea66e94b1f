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

// Package bus defines the register bus of the peripheral: the transaction
// type that travels over it, the interface every register block implements
// and the router that partitions the 8-bit address space between blocks.
//
// Transactions arrive one at a time from the bus transport. The router
// answers every transaction exactly once, whether or not any block claims the
// address. There is no pipelining and no way for a transaction to block.
package bus

// Transaction is a single addressed read or write request. Transactions are
// issued one at a time by the bus transport.
type Transaction struct {
	Address uint8
	Data    uint8
	IsWrite bool
}

// Reply is the answer to a Transaction. Accepted is false if no register
// block claims the address or if the claiming block declined the access.
type Reply struct {
	Data     uint8
	Accepted bool
}

// Slave is a register block residing on the bus. Offsets are relative to the
// origin of the block's address region.
//
// Implementations must answer every access without blocking. An access that
// the block cannot service is declined by returning false; it must not
// mutate any state in that case.
type Slave interface {
	// ReadRegister returns the value of the register at offset. The second
	// return value is false if the read was declined.
	ReadRegister(offset uint8) (uint8, bool)

	// WriteRegister writes data to the register at offset. Returns false if
	// the write was declined.
	WriteRegister(offset uint8, data uint8) bool
}
