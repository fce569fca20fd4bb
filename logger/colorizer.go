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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/gophernes/trace/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The first line
// of an entry is written as-is, continuation lines are dimmed. Useful as the
// writer given to SetEcho() when echoing to a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSpace(string(p)), "\n")

	// the decorated entry is assembled in full and written in one go, so
	// that entries arriving from other goroutines cannot interleave a pen
	// change
	var b strings.Builder

	b.WriteString(lines[0])
	b.WriteRune('\n')

	if len(lines) > 1 {
		b.WriteString(ansi.DimPens["red"])
		for _, l := range lines[1:] {
			b.WriteString(l)
			b.WriteRune('\n')
		}
		b.WriteString(ansi.NormalPen)
	}

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}
