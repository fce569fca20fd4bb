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
	"fmt"
	"io"
	"strings"
)

// the flag package writes its usage message to whatever was registered with
// SetOutput(). registering a helpWriter captures the message so that it can
// be reshaped by Help() before the user sees it.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

// Help writes the reshaped usage message to output: the banner line is
// extended with the mode path, the sub-mode list is appended after the flag
// summary and any additional help text goes at the end.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	usage := hw.buffer.String()

	// with no flags and no sub-modes there is nothing useful to say
	if usage == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprint(output, "No help available\n")
		}
		return
	}

	lines := strings.Split(usage, "\n")

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	} else {
		fmt.Fprintf(output, "%s\n", lines[0])
	}

	// the flag summary produced by the flag package, verbatim
	if len(lines) > 1 {
		fmt.Fprint(output, strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// a blank line separates the flag summary from the sub-mode list
		if len(lines) > 2 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
