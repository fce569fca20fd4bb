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

package gui

import (
	"github.com/jetsetilly/gophernes/hardware/ppu"
)

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// List of valid feature requests. The argument must be of the type specified
// or else the interface{} type conversion will fail and the request will be
// reported as unserviceable.
//
// Note that, like the name suggests, these are requests. They may or may not
// be satisfied depending on other conditions in the GUI.
const (
	// set the channel over which the gui forwards user input. events arrive
	// from the user at any time so the channel should be buffered.
	//
	// args: chan Event
	ReqSetEventChan FeatureReq = "ReqSetEventChan"

	// the integer scaling applied to every view.
	//
	// args: int
	ReqSetScale FeatureReq = "ReqSetScale"

	// whether the window shows the two-by-two debugging grid (game, pattern
	// table, both nametables) rather than the game view alone.
	//
	// args: bool
	ReqSetGridView FeatureReq = "ReqSetGridView"

	// whether the gui window is visible.
	//
	// args: bool
	ReqSetVisibility FeatureReq = "ReqSetVisibility"

	// present a completed set of frames. the gui owns the frames once the
	// request has been made.
	//
	// args: *Frames
	ReqRender FeatureReq = "ReqRender"

	// save the game view to an image file.
	//
	// args: none
	ReqScreenshot FeatureReq = "ReqScreenshot"
)

// Frames is one video frame for each view the gui can display, copied out of
// the emulation so the gui owns them outright. Pattern and the Nametables
// entries are nil outside of the grid view.
type Frames struct {
	Game       *ppu.Frame
	Pattern    *ppu.Frame
	Nametables [2]*ppu.Frame
}
