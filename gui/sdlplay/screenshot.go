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
	"time"
	"unsafe"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// screenshot saves the game frame from the most recent render to a BMP
// file in the current directory.
func (scr *SdlPlay) screenshot() error {
	if scr.frames == nil || scr.frames.Game == nil {
		return curated.Errorf("sdlplay: %v", "nothing to screenshot")
	}

	frame := scr.frames.Game

	surf, err := sdl.CreateRGBSurfaceFrom(unsafe.Pointer(&frame.Pix[0]),
		ppu.Width, ppu.Height, 24, ppu.Width*3,
		0x0000ff, 0x00ff00, 0xff0000, 0)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer surf.Free()

	path := fmt.Sprintf("gophernes_%s.bmp", time.Now().Format("20060102_150405"))

	err = surf.SaveBMP(path)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf("sdlplay", "screenshot saved (%s)", path)

	return nil
}
