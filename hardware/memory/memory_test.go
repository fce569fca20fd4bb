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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/test"
)

// plugCartridge builds a minimal iNES image and plugs it into the bus.
func plugCartridge(t *testing.T, b *memory.Bus) *cartridge.Cartridge {
	t.Helper()

	img := make([]byte, 16+cartridge.PRGBankSize+cartridge.CHRBankSize)
	copy(img, []byte{0x4e, 0x45, 0x53, 0x1a})
	img[4] = 1
	img[5] = 1
	img[16] = 0xab

	cart, err := cartridge.NewCartridge(img)
	if err != nil {
		t.Fatal(err)
	}

	b.Plug(cart)
	return cart
}

// write is a helper that fails the test on a write error.
func write(t *testing.T, b *memory.Bus, address uint16, data uint8) {
	t.Helper()
	if err := b.Write(address, data); err != nil {
		t.Fatal(err)
	}
}

// read is a helper that fails the test on a read error.
func read(t *testing.T, b *memory.Bus, address uint16) uint8 {
	t.Helper()
	data, err := b.Read(address)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestRAMMirroring(t *testing.T) {
	b := memory.NewBus()

	// console RAM appears four times over the bottom 8KiB
	write(t, b, 0x0000, 0x11)
	test.Equate(t, read(t, b, 0x0800), 0x11)
	test.Equate(t, read(t, b, 0x1000), 0x11)
	test.Equate(t, read(t, b, 0x1800), 0x11)

	// and writes through a mirror land in the primary location
	write(t, b, 0x1fff, 0x22)
	test.Equate(t, read(t, b, 0x07ff), 0x22)
}

func TestPPURegisterMirroring(t *testing.T) {
	b := memory.NewBus()

	// the eight PPU registers repeat every eight bytes up to $3fff. write
	// an address through two different mirrors of $2006 and data through
	// the primary $2007
	write(t, b, 0x3456, 0x23)
	write(t, b, 0x200e, 0x05)
	write(t, b, 0x2007, 0x66)

	write(t, b, 0x2006, 0x23)
	write(t, b, 0x2006, 0x05)
	read(t, b, 0x2007) // priming read
	test.Equate(t, read(t, b, 0x3fff), 0x66)
}

func TestCartridgeDispatch(t *testing.T) {
	b := memory.NewBus()

	// with no cartridge reads from the top of the map fail
	_, err := b.Read(0x8000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.NoCartridge), true)

	plugCartridge(t, b)
	test.Equate(t, read(t, b, 0x8000), 0xab)

	// a single PRG bank is mirrored into the top half of the window
	test.Equate(t, read(t, b, 0xc000), 0xab)

	// ROM rejects writes
	err = b.Write(0x8000, 0x01)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.ROMWrite), true)
}

func TestAPUQuiet(t *testing.T) {
	b := memory.NewBus()

	// the APU is not emulated. reads see open bus and writes disappear
	write(t, b, 0x4000, 0x12)
	write(t, b, 0x4015, 0x34)
	test.Equate(t, read(t, b, 0x4015), 0xff)
	test.Equate(t, read(t, b, 0x4014), 0xff)

	// the second joypad address doubles as the APU frame counter. it reads
	// as zero with no controller fitted
	test.Equate(t, read(t, b, 0x4017), 0x00)
}

func TestJoypadThroughBus(t *testing.T) {
	b := memory.NewBus()
	b.Joypad.Set(input.ButtonA, true)

	// strobe through the register
	write(t, b, 0x4016, 1)
	write(t, b, 0x4016, 0)

	test.Equate(t, read(t, b, 0x4016), 0x01) // A
	test.Equate(t, read(t, b, 0x4016), 0x00) // B
}

func TestOAMDMA(t *testing.T) {
	b := memory.NewBus()

	// stage a page of sprite data in RAM
	for i := 0; i < 256; i++ {
		write(t, b, uint16(0x0200+i), uint8(i))
	}

	write(t, b, 0x2003, 0x00)
	write(t, b, 0x4014, 0x02)

	write(t, b, 0x2003, 0x00)
	test.Equate(t, read(t, b, 0x2004), 0x00)
	write(t, b, 0x2003, 0x80)
	test.Equate(t, read(t, b, 0x2004), 0x80)

	// the copy suspends the CPU; the cycle count shows the stall
	test.Equate(t, b.Cycles, 513)
}

func TestTickRatio(t *testing.T) {
	b := memory.NewBus()

	frames := 0
	b.SetFrameCallback(func(p *ppu.PPU, j *input.Joypad) {
		frames++
	})

	// a frame is 341*262 dots and the PPU runs three dots per CPU cycle.
	// 29781 cycles tips the PPU just over one frame
	b.Tick(29780)
	test.Equate(t, frames, 0)
	b.Tick(1)
	test.Equate(t, frames, 1)
	test.Equate(t, b.Cycles, 29781)
}
