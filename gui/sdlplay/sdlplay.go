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
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/hardware/ppu"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gophernes"

// the number of scanline-sized pixels a single console pixel occupies on
// screen. changed with the ReqSetScale feature request.
const defaultScale = 3

// SdlPlay is a simple SDL implementation of the gui.GUI interface. it
// presents the console's video output in a window and forwards keyboard
// input back to the emulation.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// a single streaming texture the size of one console frame. every cell
	// of the window is blitted through this one texture.
	texture *sdl.Texture

	// the channel on which gui events are forwarded to whoever asked for
	// them with ReqSetEventChan
	events chan gui.Event

	// function requests are received on the featureReq channel and serviced
	// on the main thread as part of Service()
	featureReq chan featureRequest

	// the most recently rendered frames. retained so that a screenshot
	// request can be honoured between renders
	frames *gui.Frames

	scale int32

	// when true the window is divided into a two-by-two grid showing the
	// pattern table and both nametables alongside the game
	grid bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. MUST be called from the main goroutine, as must Service().
func NewSdlPlay() (*SdlPlay, error) {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest),
		scale:      defaultScale,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB24),
		int(sdl.TEXTUREACCESS_STREAMING),
		ppu.Width, ppu.Height)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	err = scr.setWindow()
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	// we don't use the mouse for anything so don't let motion events
	// clutter the queue
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// Destroy implements GuiCreator interface.
func (scr *SdlPlay) Destroy(output io.Writer) {
	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// setWindow sizes the window and renderer to fit the current scale and
// grid settings.
func (scr *SdlPlay) setWindow() error {
	cells := int32(1)
	if scr.grid {
		cells = 2
	}

	scr.window.SetSize(cells*ppu.Width*scr.scale, cells*ppu.Height*scr.scale)

	return scr.renderer.SetScale(float32(scr.scale), float32(scr.scale))
}

// render presents a set of frames in the window. the game frame is always
// drawn; the debugging frames only when the grid view is enabled.
func (scr *SdlPlay) render(frames *gui.Frames) error {
	scr.frames = frames

	err := scr.blit(frames.Game, 0, 0)
	if err != nil {
		return err
	}

	if scr.grid {
		err = scr.blit(frames.Pattern, 1, 0)
		if err != nil {
			return err
		}
		err = scr.blit(frames.Nametables[0], 0, 1)
		if err != nil {
			return err
		}
		err = scr.blit(frames.Nametables[1], 1, 1)
		if err != nil {
			return err
		}
	}

	scr.renderer.Present()

	return nil
}

// blit copies a single frame into the named cell of the window grid. a nil
// frame leaves the cell untouched.
func (scr *SdlPlay) blit(frame *ppu.Frame, cellX int32, cellY int32) error {
	if frame == nil {
		return nil
	}

	err := scr.texture.Update(nil, frame.Pix, ppu.Width*3)
	if err != nil {
		return err
	}

	dst := sdl.Rect{X: cellX * ppu.Width, Y: cellY * ppu.Height, W: ppu.Width, H: ppu.Height}

	return scr.renderer.Copy(scr.texture, nil, &dst)
}
