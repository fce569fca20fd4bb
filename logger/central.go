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

// Package logger is the central log for the project. Hardware components
// use it in preference to writing to stdout directly, which keeps transient
// warnings (stray bus accesses, ignored register writes) out of the way of
// whatever the frontend is doing with the terminal.
//
// Entries accumulate in memory, up to a limit, and can be dumped with
// Write() or Tail(). With SetEcho() entries are additionally printed the
// moment they are made, which is what the command line -log flag does.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho echoes new log entries to io.Writer as they arrive. A nil writer
// stops any echoing.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
