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

// Package display defines the interface between the video compositor and
// whatever is consuming the composited signal. The compositor emits exactly
// one Signal per tick; a Sink does with it what it will. The differential
// transmission stage of the real hardware is entirely behind this interface.
package display

// Signal is the compositor output for a single tick. When Active is false
// the color channels are always zero.
type Signal struct {
	R uint8
	G uint8
	B uint8

	Active bool
	HSync  bool
	VSync  bool
}

// Sink implementations display, or otherwise work with, the video signal.
// For example, digest.Video.
//
// Emit is called once per tick from the tick context and must not block or
// the real-time contract of the whole video side is broken. Work that can
// take unbounded time should happen in NewFrame.
type Sink interface {
	// NewFrame is called at the start of every frame, before the first
	// Emit of that frame.
	NewFrame(frame int) error

	// Emit is called once per tick, including during blanking intervals.
	Emit(sig Signal) error

	// EndRendering is called when the signal is about to stop for good.
	EndRendering() error
}

// Headless is a Sink that discards the signal. Used when measuring
// performance and when the bus side is all that matters.
type Headless struct{}

// NewFrame implements the Sink interface.
func (h *Headless) NewFrame(frame int) error {
	return nil
}

// Emit implements the Sink interface.
func (h *Headless) Emit(sig Signal) error {
	return nil
}

// EndRendering implements the Sink interface.
func (h *Headless) EndRendering() error {
	return nil
}
