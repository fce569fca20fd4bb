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

// Package ansi defines ANSI control codes for terminal text styles and
// colours.
package ansi

import (
	"fmt"
	"strings"
)

// SGR targets. pens select from the standard palette, bright pens from the
// high intensity palette.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// the colour used when a pen name isn't recognised.
const colDefault = 9

var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
}

// Pens is the table of bright colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of dimmed colours to be used for text.
var DimPens = map[string]string{}

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	NormalPen = ColorBuild("", "", false)

	// black is left out of the pen tables. on a dark terminal it is
	// indistinguishable from no text at all
	for c := range colours {
		if c == "black" {
			continue
		}
		Pens[c] = ColorBuild(c, "", true)
		DimPens[c] = ColorBuild(c, "", false)
	}
}

// ColorBuild creates the CSI sequence selecting the pen with the given
// foreground colour and attribute. Unrecognised colour names build the
// default pen; unrecognised attributes are left out.
func ColorBuild(pen string, attribute string, bright bool) string {
	var parts []string

	if pen != "" {
		target := targetPen
		if bright {
			target = targetBrightPen
		}

		col, ok := colours[strings.ToLower(pen)]
		if !ok {
			col = colDefault
		}

		parts = append(parts, fmt.Sprintf("%d%d", target, col))
	}

	if a, ok := attributes[strings.ToLower(attribute)]; ok {
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";"))
}
