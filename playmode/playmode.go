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

package playmode

import (
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/performance/limiter"
)

// events are buffered so that the gui never has to block waiting for the
// emulation to take a keypress
const eventQueueLen = 64

type playmode struct {
	con *hardware.Console
	scr gui.GUI

	events chan gui.Event
	lmtr   *limiter.FpsLimiter

	// whether the additional debugging frames are rendered. the pattern
	// table bank on show can be flipped at the keyboard
	view bool
	bank int

	running bool
}

// Play sets the emulation running with the cartridge in cartload, pushing
// a frame to the gui whenever the console completes one. the function
// does not return until the user quits or the emulation fails.
func Play(scr gui.GUI, cartload cartridgeloader.Loader, view bool, fpsCap bool) error {
	pm := &playmode{
		con:     hardware.NewConsole(),
		scr:     scr,
		events:  make(chan gui.Event, eventQueueLen),
		view:    view,
		running: true,
	}

	err := pm.con.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// the console runs flat out unless the fps cap is active
	if fpsCap {
		pm.lmtr = limiter.NewFPSLimiter(ppu.FramesPerSecond)
	}

	err = scr.SetFeature(gui.ReqSetEventChan, pm.events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if view {
		err = scr.SetFeature(gui.ReqSetGridView, true)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pm.con.SetFrameCallback(pm.frameCallback)

	err = pm.con.Run(func() (bool, error) {
		return pm.running, nil
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// frameCallback is called by the console at the end of every frame. it is
// the pulse of the play loop: video goes out to the gui, input comes back.
func (pm *playmode) frameCallback(p *ppu.PPU, joy *input.Joypad) {
	frames := &gui.Frames{Game: p.Frame().Copy()}
	if pm.view {
		frames.Pattern = p.DebugPatternTable(pm.bank)
		frames.Nametables[0] = p.DebugNametable(0)
		frames.Nametables[1] = p.DebugNametable(1)
	}

	err := pm.scr.SetFeature(gui.ReqRender, frames)
	if err != nil {
		logger.Logf("playmode", "%v", err)
	}

	pm.drainEvents(joy)

	if pm.lmtr != nil {
		pm.lmtr.Wait()
	}
}

// drainEvents applies every gui event that has arrived since the last
// frame. it never blocks.
func (pm *playmode) drainEvents(joy *input.Joypad) {
	for {
		select {
		case ev := <-pm.events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				pm.running = false
			case gui.EventKeyboard:
				pm.keyboard(ev, joy)
			}
		default:
			return
		}
	}
}

func (pm *playmode) keyboard(ev gui.EventKeyboard, joy *input.Joypad) {
	switch ev.Key {
	case "Up":
		joy.Set(input.ButtonUp, ev.Down)
	case "Down":
		joy.Set(input.ButtonDown, ev.Down)
	case "Left":
		joy.Set(input.ButtonLeft, ev.Down)
	case "Right":
		joy.Set(input.ButtonRight, ev.Down)
	case "Space":
		joy.Set(input.ButtonSelect, ev.Down)
	case "Return":
		joy.Set(input.ButtonStart, ev.Down)
	case "A":
		joy.Set(input.ButtonA, ev.Down)
	case "S":
		joy.Set(input.ButtonB, ev.Down)
	case "G":
		if ev.Down {
			err := pm.scr.SetFeature(gui.ReqScreenshot)
			if err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}
	case "B":
		// flip which pattern table bank the grid view shows
		if ev.Down {
			pm.bank ^= 1
		}
	case "Escape":
		if ev.Down {
			pm.running = false
		}
	}
}
