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

package sdlplay

import (
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the main goroutine. it is expected to be called
// in a tight loop for as long as the application is running.
func (scr *SdlPlay) Service() {
	// the mechanism for translating sdl events into gui events. we're
	// only interested in quit and keyboard events
	ev := sdl.WaitEventTimeout(1)
	for ev != nil {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.pushEvent(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat == 0 {
				scr.pushEvent(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: ev.Type == sdl.KEYDOWN,
				})
			}
		}

		ev = sdl.PollEvent()
	}

	// service any waiting feature request
	select {
	case req := <-scr.featureReq:
		scr.serviceFeatureReq(req)
	default:
	}
}

// pushEvent forwards a gui event without ever blocking the main
// goroutine. if the receiver is too far behind the event is lost.
func (scr *SdlPlay) pushEvent(event gui.Event) {
	if scr.events == nil {
		return
	}

	select {
	case scr.events <- event:
	default:
		logger.Log("sdlplay", "dropping event (queue is full)")
	}
}
