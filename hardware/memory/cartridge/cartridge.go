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

// Package cartridge parses the iNES container format and provides access to
// the PRG and CHR data inside. Only mapper zero (no banking hardware) is
// supported; everything this project needs for test programs and early
// library titles.
package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinal error patterns for cartridge parsing. All of these are
// recoverable, a program that receives one simply has no cartridge to play.
const (
	NotACartridge      = "cartridge: missing iNES signature"
	TruncatedImage     = "cartridge: image data shorter than header declares"
	UnsupportedVersion = "cartridge: iNES 2.0 images are not supported"
	UnsupportedMapper  = "cartridge: mapper %d is not supported"
	UnsupportedMirror  = "cartridge: four-screen mirroring is not supported"
)

// Mirroring describes how the cartridge wires the two nametables of the PPU
// into the four logical nametable slots.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "undefined"
}

// Sizes of the structures in an iNES file.
const (
	headerSize  = 16
	trainerSize = 512
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

// the iNES signature. "NES" followed by the MS-DOS end-of-file character.
var inesSignature = [4]byte{0x4e, 0x45, 0x53, 0x1a}

// Cartridge is the parsed form of an iNES image.
type Cartridge struct {
	PRG []uint8
	CHR []uint8

	Mirroring Mirroring
	MapperID  uint8

	// CHR count of zero in the header means the board carries CHR RAM
	// rather than CHR ROM. The PPU lets writes through in that case.
	ChrRAM bool
}

// NewCartridge parses raw image data, typically the contents of a .nes file.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) < headerSize {
		return nil, curated.Errorf(NotACartridge)
	}

	for i, b := range inesSignature {
		if data[i] != b {
			return nil, curated.Errorf(NotACartridge)
		}
	}

	prgCount := int(data[4])
	chrCount := int(data[5])
	flag6 := data[6]
	flag7 := data[7]

	if (flag7>>2)&0x03 != 0 {
		return nil, curated.Errorf(UnsupportedVersion)
	}

	mapperID := (flag7 & 0xf0) | (flag6 >> 4)
	if mapperID != 0 {
		return nil, curated.Errorf(UnsupportedMapper, mapperID)
	}

	if flag6&0x08 == 0x08 {
		return nil, curated.Errorf(UnsupportedMirror)
	}

	mirroring := Horizontal
	if flag6&0x01 == 0x01 {
		mirroring = Vertical
	}

	prgStart := headerSize
	if flag6&0x04 == 0x04 {
		prgStart += trainerSize
	}

	prgLen := prgCount * PRGBankSize
	chrLen := chrCount * CHRBankSize
	if len(data) < prgStart+prgLen+chrLen {
		return nil, curated.Errorf(TruncatedImage)
	}

	cart := &Cartridge{
		PRG:       make([]uint8, prgLen),
		Mirroring: mirroring,
		MapperID:  mapperID,
	}
	copy(cart.PRG, data[prgStart:prgStart+prgLen])

	if chrCount == 0 {
		cart.CHR = make([]uint8, CHRBankSize)
		cart.ChrRAM = true
	} else {
		cart.CHR = make([]uint8, chrLen)
		copy(cart.CHR, data[prgStart+prgLen:prgStart+prgLen+chrLen])
	}

	return cart, nil
}

// Read returns the PRG byte the cartridge puts on the bus for an address in
// the $8000 to $ffff window. Cartridges with a single 16KiB PRG bank appear
// twice in the window.
func (cart *Cartridge) Read(address uint16) uint8 {
	address -= 0x8000
	if len(cart.PRG) == PRGBankSize && address >= PRGBankSize {
		address %= PRGBankSize
	}
	return cart.PRG[address]
}

func (cart *Cartridge) String() string {
	chr := fmt.Sprintf("%dKiB CHR ROM", len(cart.CHR)/1024)
	if cart.ChrRAM {
		chr = fmt.Sprintf("%dKiB CHR RAM", len(cart.CHR)/1024)
	}
	return fmt.Sprintf("mapper %d, %dKiB PRG, %s, %s mirroring",
		cart.MapperID, len(cart.PRG)/1024, chr, cart.Mirroring)
}
