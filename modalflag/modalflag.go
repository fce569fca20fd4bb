// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// Modes is a wrapper around the flag package adding the concept of
// sub-modes: the first argument after the flags can select a different mode
// of the program, each mode having its own flags and possibly its own
// sub-modes below it.
//
// The zero value is ready to use once NewArgs() has been called. The Output
// field should be set before any call to Parse() or help messages will be
// lost.
type Modes struct {
	// where help messages are printed. os.Stdout is the usual choice
	Output io.Writer

	// the unconsumed command line. arguments are consumed as Parse() walks
	// down the mode hierarchy
	remaining []string

	// the flag set for the current mode, replaced on every call to
	// NewMode(). the flag set's own Parse() function must not be called
	// directly, it would bypass the sub-mode selection. use the Parse()
	// function of this type
	flags *flag.FlagSet

	// the sub-modes valid in the current mode, stored uppercase. the first
	// entry is the default
	subModes []string

	// every mode selected so far, in order of selection
	path []string

	// free-form text printed after the generated flag summary
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. The empty string means no
// mode has been selected yet.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs restarts mode selection with a new argument list, typically
// os.Args[1:]. The first mode is begun implicitly.
func (md *Modes) NewArgs(args []string) {
	md.remaining = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode begins a new mode: a fresh set of flags and sub-modes. Arguments
// not consumed by the previous mode carry over.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
}

// AddSubModes registers the sub-modes selectable from the current mode. The
// first in the list is the default, chosen when the command line does not
// name one. Matching is case insensitive.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp registers text to be printed after the generated flag
// summary in the help message for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded and the program should carry on. if sub-modes were
	// registered the Mode() function says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has already been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments for the current mode. Registered flag values are
// filled in; if sub-modes have been added, the first argument after the
// flags selects one, with the first sub-mode standing in when it doesn't
// name any. A matched sub-mode argument is consumed, everything else is
// left for RemainingArgs().
//
// Requests for help are honoured automatically. The ParseHelp result means
// the message has been printed and nothing more is required. Idiomatic
// usage is:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		printError(err)
//		return
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.remaining)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag is not necessarily fatal. with sub-modes
		// available the default sub-mode may yet know what to do with it
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])

		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		md.selectSubMode()
	}

	return ParseContinue, nil
}

// selectSubMode matches the first argument after the flags against the
// sub-mode list and adds the winner, or the default, to the mode path.
func (md *Modes) selectSubMode() {
	choice := strings.ToUpper(md.flags.Arg(0))

	for _, m := range md.subModes {
		if m == choice {
			// the next mode begins after the flags consumed by this parse
			// and the sub-mode argument itself
			consumed := len(md.remaining) - md.flags.NArg()
			md.remaining = md.remaining[consumed+1:]

			md.path = append(md.path, choice)

			return
		}
	}

	md.path = append(md.path, md.subModes[0])
}

// RemainingArgs returns the arguments left over after the flags and
// sub-mode selection of the most recent Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the indexed argument from RemainingArgs(), or the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
