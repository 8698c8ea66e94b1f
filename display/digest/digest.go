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

// Package digest fingerprints the video output without displaying it
// anywhere. Fingerprints are chained: the hash of each frame folds in the
// hash of the frame before it, so a single value at the end of a run stands
// for the whole sequence of frames. Useful for regression comparison of two
// runs of the same register script.
//
// Note that xxhash is not a cryptographic hash. It doesn't need to be for
// this application.
package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/hardware/timing"
)

const pixelDepth = 3

// hashLen is the number of bytes reserved at the head of the pixel buffer
// for the chained fingerprint of the previous frame.
const hashLen = 8

// Video is an implementation of the display.Sink interface. It hashes every
// completed frame of active pixels.
type Video struct {
	digest   uint64
	pixels   []byte
	idx      int
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{
		pixels: make([]byte, hashLen+timing.HorizActive*timing.VertActive*pixelDepth),
		idx:    hashLen,
	}
	return dig
}

// Hash returns the chained fingerprint as a printable string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%016x", dig.digest)
}

// ResetDigest breaks the fingerprint chain.
func (dig *Video) ResetDigest() {
	dig.digest = 0
}

// NewFrame implements the display.Sink interface. The frame that has just
// finished is folded into the chain.
func (dig *Video) NewFrame(frameNum int) error {
	// nothing to fold in before the first frame has been seen
	if frameNum > 0 {
		binary.BigEndian.PutUint64(dig.pixels, dig.digest)
		dig.digest = xxhash.Sum64(dig.pixels)
	}
	dig.frameNum = frameNum
	dig.idx = hashLen
	return nil
}

// Emit implements the display.Sink interface.
func (dig *Video) Emit(sig display.Signal) error {
	if !sig.Active || dig.idx > len(dig.pixels)-pixelDepth {
		return nil
	}
	dig.pixels[dig.idx] = sig.R
	dig.pixels[dig.idx+1] = sig.G
	dig.pixels[dig.idx+2] = sig.B
	dig.idx += pixelDepth
	return nil
}

// EndRendering implements the display.Sink interface. The partially
// accumulated final frame is folded into the chain.
func (dig *Video) EndRendering() error {
	binary.BigEndian.PutUint64(dig.pixels, dig.digest)
	dig.digest = xxhash.Sum64(dig.pixels)
	return nil
}
