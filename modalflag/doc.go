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

// Package modalflag wraps the flag package from the standard library,
// adding the concept of program modes: command line arguments that switch
// the program into a different mode of operation, each mode with its own
// set of flags. The go command is the familiar example of the pattern, with
// its build, test, doc and get modes.
//
// In place of flag.Parse(), the argument list is handed over once with
// NewArgs() and then parsed one mode at a time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "play", "trace")
//	p, err := md.Parse()
//
// Flags are registered per mode with the Add functions, which work exactly
// like their flag package counterparts:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// When sub-modes have been registered, Parse() matches the first argument
// after the flags against them (case insensitively) and records the result,
// available through the Mode() function. An argument that names no sub-mode
// leaves the first registered sub-mode selected by default:
//
//	switch md.Mode() {
//	case "PLAY":
//		err = play(md)
//	case "TRACE":
//		err = runTrace(md)
//	}
//
// Each mode function then starts over with NewMode(), registers its own
// flags and calls Parse() again on the arguments left unconsumed by the
// modes above it. Arguments that are neither flags nor sub-modes, the
// cartridge file for instance, are available from RemainingArgs() and
// GetArg(). Modes nest as deeply as required.
//
// Help requests are recognised at every level and honoured by Parse()
// automatically: the generated message lists the current mode's flags, its
// sub-modes and any text registered with AdditionalHelp().
package modalflag
