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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/ppu"
)

// Video fingerprints the video output of the console. It generates a SHA-1
// value from every frame folded into it, chained so that the hash reflects
// the whole sequence of frames. It does not display the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}

	// the pixel buffer carries the previous digest value at its head. see
	// the commentary in NewFrame()
	dig.pixels = make([]byte, sha1.Size+ppu.Width*ppu.Height*3)

	return dig
}

// Hash implements the digest.Digest interface.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames folded into the digest since the
// last reset.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame folds a completed frame of video into the digest. Suitable for
// calling from the console's frame callback.
func (dig *Video) NewFrame(frame *ppu.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data. a sequence of frames hashes differently to the
	// same frames in a different order
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: %v", "digest error during new frame")
	}

	n = copy(dig.pixels[sha1.Size:], frame.Pix)
	if n != len(frame.Pix) {
		return curated.Errorf("digest: video: %v", "frame is not the expected size")
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}
