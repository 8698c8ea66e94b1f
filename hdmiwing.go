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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/hqvga/hdmiwing/comm/serialport"
	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/display/digest"
	"github.com/hqvga/hdmiwing/display/sdltv"
	"github.com/hqvga/hdmiwing/hardware"
	"github.com/hqvga/hdmiwing/hardware/timing"
	"github.com/hqvga/hdmiwing/logger"
	"github.com/hqvga/hdmiwing/modalflag"
	"github.com/hqvga/hdmiwing/monitor"
	"github.com/hqvga/hdmiwing/performance"
	"github.com/hqvga/hdmiwing/statsview"
	"github.com/hqvga/hdmiwing/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "PERFORMANCE", "VERSION")

	useLog := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	if *useLog {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "MONITOR":
		err = mon(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Printf("%s (core revision %#02x)\n", version.Version, version.CoreRevision)
	}

	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}
}

// assemble the sink list requested on the command line. the returned
// function reports the frame fingerprint, if one was asked for.
func sinks(tv bool, scale string, fingerprint bool, quit chan bool) ([]display.Sink, func(), error) {
	var s []display.Sink
	report := func() {}

	if tv {
		sc, err := strconv.ParseFloat(scale, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("bad scale value %q", scale)
		}
		win, err := sdltv.NewSdlTV(float32(sc))
		if err != nil {
			return nil, nil, err
		}
		win.SetOnWindowClose(func() {
			select {
			case quit <- true:
			default:
			}
		})
		s = append(s, win)
	}

	if fingerprint {
		dig := digest.NewVideo()
		s = append(s, dig)
		report = func() {
			fmt.Printf("frame fingerprint: %s\n", dig.Hash())
		}
	}

	if len(s) == 0 {
		s = append(s, &display.Headless{})
	}

	return s, report, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	tv := md.AddBool("tv", true, "show the video output in a window")
	scale := md.AddString("scale", "1.0", "window scale")
	fingerprint := md.AddBool("fingerprint", false, "report the chained frame fingerprint on exit")
	frames := md.AddInt("frames", 0, "number of frames to run (0 means forever)")
	serial := md.AddString("serial", "", "serial device to accept bus traffic on")
	baud := md.AddInt("baud", serialport.DefaultBaud, "baud rate for the serial device")
	uncapped := md.AddBool("uncapped", false, "do not pace frames to the pixel clock")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	quit := make(chan bool, 1)

	s, report, err := sinks(*tv, *scale, *fingerprint, quit)
	if err != nil {
		return err
	}

	wing, err := hardware.NewWing(s...)
	if err != nil {
		return err
	}
	defer wing.End()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	// the serial transport is the bus context. it runs for the lifetime of
	// the process; the tick context is the loop below
	if *serial != "" {
		go func() {
			if err := serialport.Listen(*serial, *baud, wing); err != nil {
				logger.Logf("serialport", "%v", err)
			}
		}()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// frame pacing. a real wing produces exactly 60 frames a second
	var pace <-chan time.Time
	if !*uncapped {
		t := time.NewTicker(time.Second / time.Duration(timing.FramesPerSecond))
		defer t.Stop()
		pace = t.C
	}

	numFrames := 0
	for {
		if pace != nil {
			<-pace
		}

		if err := wing.RunFrame(); err != nil {
			return err
		}
		numFrames++

		if *frames > 0 && numFrames >= *frames {
			break // for loop
		}

		select {
		case <-quit:
			report()
			return nil
		case <-intChan:
			fmt.Println("\r")
			report()
			return nil
		default:
		}
	}

	report()
	return nil
}

func mon(md *modalflag.Modes) error {
	md.NewMode()

	tv := md.AddBool("tv", false, "show the video output in a window")
	scale := md.AddString("scale", "1.0", "window scale")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	quit := make(chan bool, 1)

	s, _, err := sinks(*tv, *scale, false, quit)
	if err != nil {
		return err
	}

	wing, err := hardware.NewWing(s...)
	if err != nil {
		return err
	}
	defer wing.End()

	m, err := monitor.NewMonitor(wing)
	if err != nil {
		return err
	}

	return m.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profileCPU := md.AddBool("profile-cpu", false, "write cpu.profile")
	profileMem := md.AddBool("profile-mem", false, "write mem.profile")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	return performance.Check(os.Stdout, *duration, *profileCPU, *profileMem, &display.Headless{})
}
