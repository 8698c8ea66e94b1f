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

// Package video is the compositor of the peripheral and the three register
// blocks that feed it: mode control, the text grid and the framebuffer.
//
// The compositor runs entirely in the tick context. Per tick it selects one
// of the render sources according to the published video mode, computes that
// source's color for the current coordinates and forwards the result to
// every attached display sink. Register state is mutated only from the bus
// context; the shared-state rules are described on the individual types.
package video

import (
	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/hardware/timing"
)

// Video is the compositor. It owns the render sources and the pipeline
// delay line, and fans the composited signal out to the attached sinks.
type Video struct {
	Mode        *ModeRegisters
	Text        *Text
	Framebuffer *Framebuffer

	line  delayLine
	sinks []display.Sink
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(sinks ...display.Sink) *Video {
	vid := &Video{
		Mode:        NewModeRegisters(),
		Text:        NewText(),
		Framebuffer: NewFramebuffer(),
		line:        newDelayLine(),
		sinks:       sinks,
	}
	return vid
}

// AddSink attaches an (additional) display sink. Must not be called once
// ticking has begun.
func (vid *Video) AddSink(sink display.Sink) {
	vid.sinks = append(vid.sinks, sink)
}

// Tick advances the compositor by one pixel clock and emits exactly one
// signal to every sink. The emitted signal corresponds to the state
// submitted PipelineDepth ticks earlier.
func (vid *Video) Tick(s timing.State) error {
	// the clear sweep is the only mutation of video memory that happens in
	// the tick context
	vid.Text.stepClear()

	out := vid.line.shift(s)

	sig := display.Signal{
		Active: out.Active,
		HSync:  out.HSync,
		VSync:  out.VSync,
	}

	// during blanking the color channels are always zero
	if out.Active {
		mode, variant := vid.Mode.snapshot()
		switch mode {
		case ModePattern:
			sig.R, sig.G, sig.B = renderPattern(out.X, out.Y, variant)
		case ModeText:
			sig.R, sig.G, sig.B = vid.Text.render(out.X, out.Y)
		case ModeFramebuffer:
			sig.R, sig.G, sig.B = vid.Framebuffer.render(out.X, out.Y)
		default:
			// an unrecognised mode renders black. it must never show the
			// previous source's stale output
		}
	}

	for _, sink := range vid.sinks {
		if out.X == 0 && out.Y == 0 {
			if err := sink.NewFrame(out.Frame); err != nil {
				return err
			}
		}
		if err := sink.Emit(sig); err != nil {
			return err
		}
	}

	return nil
}

// EndRendering tells every attached sink that the signal has stopped.
func (vid *Video) EndRendering() error {
	for _, sink := range vid.sinks {
		if err := sink.EndRendering(); err != nil {
			return err
		}
	}
	return nil
}
