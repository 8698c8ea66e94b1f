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

// Package sdltv is an SDL2 implementation of the display.Sink interface. It
// shows the output of the video pipeline in a desktop window, standing in
// for the HDMI monitor attached to the real wing.
package sdltv

import (
	"fmt"

	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/hardware/timing"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 3

const windowTitle = "HDMI Wing"

// SdlTV is a windowed implementation of the display.Sink interface.
//
// MUST ONLY be used from the goroutine that called NewSdlTV. SDL is not
// goroutine safe and the emulation loop is expected to own it.
type SdlTV struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture on every
	// NewFrame. active pixels arrive in raster order so a running index is
	// all the addressing we need
	pixels []byte
	idx    int

	// function to call when the window close button is pressed
	onWindowClose func()
}

// NewSdlTV is the preferred method of initialisation for the SdlTV type.
// The scale argument shrinks or enlarges the window; the texture is always
// the full 1280x720 frame.
func NewSdlTV(scale float32) (*SdlTV, error) {
	tv := &SdlTV{
		pixels: make([]byte, timing.HorizActive*timing.VertActive*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdltv: %w", err)
	}

	if scale <= 0 {
		scale = 1.0
	}

	w := int32(float32(timing.HorizActive) * scale)
	h := int32(float32(timing.VertActive) * scale)

	tv.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdltv: %w", err)
	}

	tv.renderer, err = sdl.CreateRenderer(tv.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdltv: %w", err)
	}

	// texture is the same size as the pixel array. the renderer scales it
	// to fit the window
	tv.texture, err = tv.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB24),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(timing.HorizActive), int32(timing.VertActive))
	if err != nil {
		return nil, fmt.Errorf("sdltv: %w", err)
	}

	return tv, nil
}

// SetOnWindowClose registers the function to call when the user closes the
// window.
func (tv *SdlTV) SetOnWindowClose(f func()) {
	tv.onWindowClose = f
}

// NewFrame implements the display.Sink interface. The previous frame is
// presented and pending window events are serviced.
func (tv *SdlTV) NewFrame(frameNum int) error {
	err := tv.texture.Update(nil, tv.pixels, timing.HorizActive*pixelDepth)
	if err != nil {
		return fmt.Errorf("sdltv: %w", err)
	}

	err = tv.renderer.Copy(tv.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdltv: %w", err)
	}

	tv.renderer.Present()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			if tv.onWindowClose != nil {
				tv.onWindowClose()
			}
		}
	}

	tv.idx = 0
	return nil
}

// Emit implements the display.Sink interface. Signals in the blanking
// intervals are dropped; the window only shows the active picture.
func (tv *SdlTV) Emit(sig display.Signal) error {
	if !sig.Active || tv.idx > len(tv.pixels)-pixelDepth {
		return nil
	}
	tv.pixels[tv.idx] = sig.R
	tv.pixels[tv.idx+1] = sig.G
	tv.pixels[tv.idx+2] = sig.B
	tv.idx += pixelDepth
	return nil
}

// EndRendering implements the display.Sink interface.
func (tv *SdlTV) EndRendering() error {
	tv.texture.Destroy()
	tv.renderer.Destroy()
	tv.window.Destroy()
	sdl.Quit()
	return nil
}
