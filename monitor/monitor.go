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

// Package monitor is an interactive prompt onto the register bus. It is the
// development-time equivalent of the host controller: registers are poked
// and peeked by symbolic name or by address, the peripheral is stepped by
// ticks or by whole frames, and the result can be observed through whatever
// sinks the wing was created with.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/hqvga/hdmiwing/hardware"
	"github.com/hqvga/hdmiwing/hardware/bus"
	"github.com/hqvga/hdmiwing/hardware/registers"
	"github.com/hqvga/hdmiwing/logger"
	"github.com/hqvga/hdmiwing/monitor/easyterm"
)

const prompt = "wing > "

// Monitor is the interactive register monitor.
type Monitor struct {
	easyterm.Terminal

	wing    *hardware.Wing
	input   *bufio.Reader
	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(wing *hardware.Wing) (*Monitor, error) {
	mon := &Monitor{
		wing:  wing,
		input: bufio.NewReader(os.Stdin),
	}

	err := mon.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	return mon, nil
}

// Run the monitor until the QUIT command or the end of input.
func (mon *Monitor) Run() error {
	defer mon.CleanUp()

	mon.running = true
	for mon.running {
		mon.Print(prompt)

		line, err := mon.input.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		if err := mon.parseCommand(line); err != nil {
			mon.Print("error: %v\n", err)
		}
	}

	return nil
}

// resolve a register argument, either a symbolic name or a hex address.
func resolve(arg string) (uint8, error) {
	if addr, ok := registers.Names[strings.ToUpper(arg)]; ok {
		return addr, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("unrecognised register %q", arg)
	}
	return uint8(v), nil
}

// parse a value argument. hex with an 0x prefix, decimal otherwise.
func value(arg string) (uint8, error) {
	var v uint64
	var err error
	if strings.HasPrefix(arg, "0x") {
		v, err = strconv.ParseUint(arg[2:], 16, 8)
	} else {
		v, err = strconv.ParseUint(arg, 10, 8)
	}
	if err != nil {
		return 0, fmt.Errorf("bad value %q", arg)
	}
	return uint8(v), nil
}

func (mon *Monitor) parseCommand(line string) error {
	toks := strings.Fields(line)
	if len(toks) == 0 {
		return nil
	}

	arg := func(n int) (string, error) {
		if n >= len(toks) {
			return "", fmt.Errorf("%s: not enough arguments", strings.ToUpper(toks[0]))
		}
		return toks[n], nil
	}

	switch strings.ToUpper(toks[0]) {
	case "READ":
		a, err := arg(1)
		if err != nil {
			return err
		}
		addr, err := resolve(a)
		if err != nil {
			return err
		}
		rep := mon.wing.Route(bus.Transaction{Address: addr})
		if !rep.Accepted {
			return fmt.Errorf("read of %#02x not accepted", addr)
		}
		mon.Print("%#02x = %#02x\n", addr, rep.Data)

	case "WRITE":
		a, err := arg(1)
		if err != nil {
			return err
		}
		addr, err := resolve(a)
		if err != nil {
			return err
		}
		a, err = arg(2)
		if err != nil {
			return err
		}
		data, err := value(a)
		if err != nil {
			return err
		}
		rep := mon.wing.Route(bus.Transaction{Address: addr, Data: data, IsWrite: true})
		if !rep.Accepted {
			return fmt.Errorf("write of %#02x not accepted", addr)
		}

	case "REGS":
		names := make([]string, 0, len(registers.Names))
		for n := range registers.Names {
			names = append(names, n)
		}
		sort.Slice(names, func(i, j int) bool {
			return registers.Names[names[i]] < registers.Names[names[j]]
		})
		for _, n := range names {
			rep := mon.wing.Route(bus.Transaction{Address: registers.Names[n]})
			mon.Print("%#02x  %-14s %#02x\n", registers.Names[n], n, rep.Data)
		}

	case "STEP":
		n := 1
		if len(toks) > 1 {
			var err error
			n, err = strconv.Atoi(toks[1])
			if err != nil {
				return fmt.Errorf("bad tick count %q", toks[1])
			}
		}
		for i := 0; i < n; i++ {
			if err := mon.wing.Step(); err != nil {
				return err
			}
		}

	case "FRAME":
		n := 1
		if len(toks) > 1 {
			var err error
			n, err = strconv.Atoi(toks[1])
			if err != nil {
				return fmt.Errorf("bad frame count %q", toks[1])
			}
		}
		for i := 0; i < n; i++ {
			if err := mon.wing.RunFrame(); err != nil {
				return err
			}
		}

	case "TEXT":
		// convenience: push a string through the TEXT_CHAR register
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), toks[0]))
		for _, c := range []byte(s) {
			rep := mon.wing.Route(bus.Transaction{
				Address: registers.TextChar,
				Data:    c,
				IsWrite: true,
			})
			if !rep.Accepted {
				return fmt.Errorf("character write not accepted (screen clearing?)")
			}
		}

	case "CLS":
		// convenience: trigger the clear sweep and run it to completion
		rep := mon.wing.Route(bus.Transaction{
			Address: registers.TextCtrl,
			Data:    0x01,
			IsWrite: true,
		})
		if !rep.Accepted {
			return fmt.Errorf("clear request not accepted")
		}
		if err := mon.wing.RunFrame(); err != nil {
			return err
		}

	case "LOG":
		if !logger.Write(os.Stdout) {
			mon.Print("log is empty\n")
		}

	case "VIZ":
		a, err := arg(1)
		if err != nil {
			return err
		}
		f, err := os.Create(a)
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		defer f.Close()
		memviz.Map(f, mon.wing)
		mon.Print("memory map written to %s\n", a)

	case "HELP":
		mon.Print("READ <reg>          read a register by name or hex address\n")
		mon.Print("WRITE <reg> <val>   write a register\n")
		mon.Print("REGS                dump every named register\n")
		mon.Print("STEP [n]            run the peripheral for n ticks\n")
		mon.Print("FRAME [n]           run the peripheral for n frames\n")
		mon.Print("TEXT <string>       type a string into the text console\n")
		mon.Print("CLS                 clear the text console\n")
		mon.Print("LOG                 dump the log\n")
		mon.Print("VIZ <file>          write a dot graph of the peripheral state\n")
		mon.Print("QUIT                leave the monitor\n")

	case "QUIT", "EXIT":
		mon.running = false

	default:
		return fmt.Errorf("unrecognised command %q", toks[0])
	}

	return nil
}
