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

package ppu

// Dimensions of the visible frame.
const (
	Width  = 256
	Height = 240
)

// FramesPerSecond is the rate at which an NTSC console completes frames.
// The dot clock runs a shade over the nominal 60Hz.
const FramesPerSecond = 60.0988

// Frame is one visible frame of video, three bytes of RGB per pixel, row
// major from the top-left corner.
type Frame struct {
	Pix []uint8
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame() *Frame {
	return &Frame{
		Pix: make([]uint8, Width*Height*3),
	}
}

// SetPixel writes one colour to the frame. coordinates outside the visible
// frame are dropped, the dot machine calls this for every dot it produces
// including the ones in the horizontal and vertical blanks.
func (f *Frame) SetPixel(x int, y int, c Colour) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	base := (y*Width + x) * 3
	f.Pix[base] = c.R
	f.Pix[base+1] = c.G
	f.Pix[base+2] = c.B
}

// Copy returns a snapshot of the frame that the caller owns. used when a
// frame crosses a goroutine boundary.
func (f *Frame) Copy() *Frame {
	n := NewFrame()
	copy(n.Pix, f.Pix)
	return n
}
