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

// Package hardware assembles the register blocks, the address router, the
// timing generator and the video compositor into the complete peripheral.
//
// Two execution contexts drive a Wing. The bus context calls Route(), one
// transaction at a time, from wherever the bus transport lives. The tick
// context calls Step() at the pixel rate. The two contexts share no state
// beyond what the individual blocks publish atomically, so no locking is
// involved anywhere on either path.
package hardware

import (
	"fmt"

	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/hardware/bus"
	"github.com/hqvga/hdmiwing/hardware/led"
	"github.com/hqvga/hdmiwing/hardware/registers"
	"github.com/hqvga/hdmiwing/hardware/timing"
	"github.com/hqvga/hdmiwing/hardware/video"
	"github.com/hqvga/hdmiwing/logger"
)

// Wing is the complete peripheral.
type Wing struct {
	Router *bus.Router
	LED    *led.LED
	Video  *video.Video
	Timing *timing.Generator
}

// NewWing is the preferred method of initialisation for the Wing type. The
// supplied sinks receive the video signal; more can be attached through
// Video.AddSink() before ticking begins.
func NewWing(sinks ...display.Sink) (*Wing, error) {
	wing := &Wing{
		Router: bus.NewRouter(),
		LED:    led.NewLED(),
		Video:  video.NewVideo(sinks...),
		Timing: timing.NewGenerator(),
	}

	for _, r := range []struct {
		label          string
		origin, memtop uint8
		slave          bus.Slave
	}{
		{"led", registers.LEDOrigin, registers.LEDMemtop, wing.LED},
		{"mode", registers.ModeOrigin, registers.ModeMemtop, wing.Video.Mode},
		{"text", registers.TextOrigin, registers.TextMemtop, wing.Video.Text},
		{"framebuffer", registers.FBOrigin, registers.FBMemtop, wing.Video.Framebuffer},
	} {
		if err := wing.Router.Attach(r.label, r.origin, r.memtop, r.slave); err != nil {
			return nil, fmt.Errorf("hardware: %w", err)
		}
	}

	logger.Log("hardware", "wing created")

	return wing, nil
}

// Route forwards one bus transaction to the register block that claims the
// transaction address and returns that block's reply. Called from the bus
// context.
func (w *Wing) Route(tx bus.Transaction) bus.Reply {
	return w.Router.Route(tx)
}

// Step the peripheral forward one tick. Called from the tick context.
func (w *Wing) Step() error {
	s := w.Timing.Tick()
	w.LED.Step()
	return w.Video.Tick(s)
}

// RunFrame steps the peripheral through one complete frame of ticks.
func (w *Wing) RunFrame() error {
	for i := 0; i < timing.TicksPerFrame; i++ {
		if err := w.Step(); err != nil {
			return err
		}
	}
	return nil
}

// End gently concludes the video signal, notifying every attached sink.
func (w *Wing) End() error {
	return w.Video.EndRendering()
}
