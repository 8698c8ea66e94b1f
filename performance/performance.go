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

// Package performance measures how fast the emulation can run when not
// paced to the pixel clock. The interesting number is the frame rate as a
// percentage of the 60fps a real wing produces: anything comfortably above
// 100% means the emulation can honour real-time pacing.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/hardware"
	"github.com/hqvga/hdmiwing/hardware/timing"
)

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and that value as a percentage of the rate the real
// hardware runs at.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / float64(timing.FramesPerSecond)
	return fps, accuracy
}

// Check the performance of the emulation. The peripheral is run flat out
// for the supplied duration and the achieved frame rate reported to output.
// CPU and memory profiles are written when requested.
func Check(output io.Writer, duration string, profileCPU bool, profileMem bool, sinks ...display.Sink) error {
	wing, err := hardware.NewWing(sinks...)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer wing.End()

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := 0

	runner := func() error {
		// checking the clock every frame is cheap enough at this
		// granularity
		end := time.Now().Add(dur)
		for time.Now().Before(end) {
			if err := wing.RunFrame(); err != nil {
				return err
			}
			numFrames++
		}
		return nil
	}

	started := time.Now()
	err = cpuProfile(profileCPU, "cpu.profile", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	elapsed := time.Since(started).Seconds()

	err = memProfile(profileMem, "mem.profile")
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(numFrames, elapsed)
	fmt.Fprintf(output, "%d frames in %.2fs: %.2f fps (%.1f%% of hardware rate, %.0f ticks/s)\n",
		numFrames, elapsed, fps, accuracy, fps*timing.TicksPerFrame)

	return nil
}
