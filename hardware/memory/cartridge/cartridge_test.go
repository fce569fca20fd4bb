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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/test"
)

// buildImage assembles a minimal iNES image for parser testing.
func buildImage(prgBanks int, chrBanks int, flag6 uint8, flag7 uint8) []byte {
	img := make([]byte, 16+prgBanks*cartridge.PRGBankSize+chrBanks*cartridge.CHRBankSize)
	copy(img, []byte{0x4e, 0x45, 0x53, 0x1a})
	img[4] = uint8(prgBanks)
	img[5] = uint8(chrBanks)
	img[6] = flag6
	img[7] = flag7
	return img
}

func TestHeaderParsing(t *testing.T) {
	img := buildImage(2, 1, 0x01, 0x00)
	img[16] = 0xab
	img[16+2*cartridge.PRGBankSize] = 0xcd

	cart, err := cartridge.NewCartridge(img)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(cart.PRG), 2*cartridge.PRGBankSize)
	test.Equate(t, len(cart.CHR), cartridge.CHRBankSize)
	test.Equate(t, cart.Mirroring == cartridge.Vertical, true)
	test.Equate(t, cart.ChrRAM, false)
	test.Equate(t, cart.PRG[0], 0xab)
	test.Equate(t, cart.CHR[0], 0xcd)
}

func TestBadSignature(t *testing.T) {
	img := buildImage(1, 1, 0x00, 0x00)
	img[0] = 0x4d

	_, err := cartridge.NewCartridge(img)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.NotACartridge), true)

	// an image shorter than the header cannot be a cartridge either
	_, err = cartridge.NewCartridge([]byte{0x4e, 0x45, 0x53})
	test.Equate(t, curated.Is(err, cartridge.NotACartridge), true)
}

func TestUnsupportedFormats(t *testing.T) {
	// iNES 2.0
	_, err := cartridge.NewCartridge(buildImage(1, 1, 0x00, 0x08))
	test.Equate(t, curated.Is(err, cartridge.UnsupportedVersion), true)

	// mapper 1
	_, err = cartridge.NewCartridge(buildImage(1, 1, 0x10, 0x00))
	test.Equate(t, curated.Is(err, cartridge.UnsupportedMapper), true)

	// four-screen mirroring
	_, err = cartridge.NewCartridge(buildImage(1, 1, 0x08, 0x00))
	test.Equate(t, curated.Is(err, cartridge.UnsupportedMirror), true)
}

func TestTruncatedImage(t *testing.T) {
	img := buildImage(2, 1, 0x00, 0x00)
	_, err := cartridge.NewCartridge(img[:len(img)-1])
	test.Equate(t, curated.Is(err, cartridge.TruncatedImage), true)
}

func TestTrainerSkip(t *testing.T) {
	img := buildImage(1, 1, 0x04, 0x00)
	img = append(img[:16], append(make([]byte, 512), img[16:]...)...)
	img[16+512] = 0x99

	cart, err := cartridge.NewCartridge(img)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.PRG[0], 0x99)
}

func TestPRGMirroring(t *testing.T) {
	img := buildImage(1, 1, 0x00, 0x00)
	img[16] = 0x11
	img[16+cartridge.PRGBankSize-1] = 0x22

	cart, err := cartridge.NewCartridge(img)
	test.ExpectedSuccess(t, err)

	// a single bank appears at both halves of the window
	test.Equate(t, cart.Read(0x8000), 0x11)
	test.Equate(t, cart.Read(0xc000), 0x11)
	test.Equate(t, cart.Read(0xbfff), 0x22)
	test.Equate(t, cart.Read(0xffff), 0x22)
}

func TestChrRAM(t *testing.T) {
	cart, err := cartridge.NewCartridge(buildImage(1, 0, 0x00, 0x00))
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.ChrRAM, true)
	test.Equate(t, len(cart.CHR), cartridge.CHRBankSize)
}
