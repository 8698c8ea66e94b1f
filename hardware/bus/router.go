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

package bus

import "fmt"

// region is one slave's slice of the address space. origin and memtop are
// inclusive.
type region struct {
	label  string
	origin uint8
	memtop uint8
	slave  Slave
}

// Router partitions the 8-bit address space into non-overlapping regions and
// forwards each transaction to the single slave whose region contains the
// transaction address.
type Router struct {
	regions []region
}

// NewRouter is the preferred method of initialisation for the Router type.
func NewRouter() *Router {
	return &Router{
		regions: make([]region, 0, 4),
	}
}

// Attach a slave to the router, claiming the address range origin to memtop
// (inclusive). Returns an error if the range is badly formed or overlaps a
// region that has already been claimed.
func (rt *Router) Attach(label string, origin uint8, memtop uint8, slave Slave) error {
	if origin > memtop {
		return fmt.Errorf("bus: %s: origin %#02x is above memtop %#02x", label, origin, memtop)
	}

	for _, r := range rt.regions {
		if origin <= r.memtop && memtop >= r.origin {
			return fmt.Errorf("bus: %s: range %#02x-%#02x overlaps %s", label, origin, memtop, r.label)
		}
	}

	rt.regions = append(rt.regions, region{
		label:  label,
		origin: origin,
		memtop: memtop,
		slave:  slave,
	})

	return nil
}

// Route a transaction to the slave that claims the transaction address. An
// address outside every claimed region answers {0, false} and mutates
// nothing. Every call produces exactly one reply.
func (rt *Router) Route(tx Transaction) Reply {
	for _, r := range rt.regions {
		if tx.Address >= r.origin && tx.Address <= r.memtop {
			offset := tx.Address - r.origin
			if tx.IsWrite {
				return Reply{Accepted: r.slave.WriteRegister(offset, tx.Data)}
			}
			data, ok := r.slave.ReadRegister(offset)
			return Reply{Data: data, Accepted: ok}
		}
	}

	return Reply{}
}
