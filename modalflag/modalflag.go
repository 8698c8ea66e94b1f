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

// Package modalflag is a wrapper around the flag package in the standard
// library. It allows command line arguments of the form:
//
//	program [flags] mode [flags]
//
// where every mode can define its own set of flags. Only the small subset of
// the flag package that the project needs is exposed.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes provides a way of handling command line arguments where flags and
// sub-modes can be mixed. The Output field should be specified before calling
// Parse() or help messages will not be seen.
type Modes struct {
	// where to print output (help messages etc.)
	Output io.Writer

	// the underlying flagset. recreated on every call to NewMode()
	flags *flag.FlagSet

	// the argument list as given to NewArgs() and the index of the first
	// argument the next call to Parse() will consider
	args    []string
	argsIdx int

	// sub-modes valid for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// the series of sub-modes found over successive calls to Parse()
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs initialises the Modes instance with a list of arguments, typically
// os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode prepares the Modes instance for a new round of flag definitions and
// a new call to Parse().
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes adds to the list of sub-modes considered by the next call to
// Parse(). The first sub-mode in the list is the default, used when no
// sub-mode argument is present. Sub-mode comparison is case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every sub-mode encountered during parsing, separated by "/".
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing was successful and command line processing can continue
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments, leaving the remainder for any sub-mode
// that was selected. Help requests are serviced by Parse() itself; the
// ParseHelp result says that nothing more needs to be printed.
func (md *Modes) Parse() (ParseResult, error) {
	// suppress the flag package's own output. help is handled below
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp()
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("modalflag: %w", err)
	}

	if len(md.subModes) > 0 {
		// assume the default sub-mode until the first argument says otherwise
		mode := md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx += md.flagsConsumed() + 1
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// the number of arguments consumed by the preceding call to flags.Parse().
func (md *Modes) flagsConsumed() int {
	return len(md.args[md.argsIdx:]) - md.flags.NArg()
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that are not flags and not a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or a listed
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

func (md *Modes) printHelp() {
	if md.Output == nil {
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "help for %s mode\n\n", md.Path())
	}

	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "sub-modes: %s (default: %s)\n",
			strings.Join(md.subModes, ", "), md.subModes[0])
	}
}
