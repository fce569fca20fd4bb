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

package memory

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinal error patterns for memory access.
const (
	ROMWrite    = "memory: write of %#02x to ROM address %#04x"
	NoCartridge = "memory: read from cartridge space %#04x with no cartridge attached"
)

// FrameCallback is called by the bus whenever the PPU completes a frame.
// The window between frames is when a front end should present video and
// gather input; the callback receives the components it needs for both.
type FrameCallback func(*ppu.PPU, *input.Joypad)

// Bus connects the CPU to everything else in the console. It implements
// both the bus.CPUBus interface used by the running CPU and the
// bus.DebugBus interface used by the instruction tracer.
type Bus struct {
	ram  [2048]uint8
	cart *cartridge.Cartridge

	// the components hanging off the bus. exported because front ends and
	// debugging tools address them directly
	PPU    *ppu.PPU
	Joypad *input.Joypad

	// Cycles counts CPU cycles since the last reset
	Cycles uint64

	frameCallback FrameCallback
}

// NewBus is the preferred method of initialisation for the Bus type. The
// bus starts with no cartridge attached; the PPU is given CHR RAM so that
// it can be exercised regardless.
func NewBus() *Bus {
	return &Bus{
		PPU:    ppu.NewPPU(nil, false, cartridge.Horizontal),
		Joypad: input.NewJoypad(),
	}
}

// Plug a cartridge into the bus. The PPU is rebuilt around the cartridge's
// CHR data and nametable mirroring.
func (b *Bus) Plug(cart *cartridge.Cartridge) {
	b.cart = cart
	b.PPU = ppu.NewPPU(cart.CHR, cart.ChrRAM, cart.Mirroring)
}

// Reset the bus and the components hanging off it. RAM contents survive a
// reset, as they do on the real console.
func (b *Bus) Reset() {
	b.Cycles = 0
	b.PPU.Reset()
	b.Joypad.Reset()
}

// SetFrameCallback registers the function to call whenever the PPU
// completes a frame.
func (b *Bus) SetFrameCallback(callback FrameCallback) {
	b.frameCallback = callback
}

// Read implements the bus.CPUBus interface.
func (b *Bus) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return b.ram[ma], nil

	case memorymap.PPU:
		return b.PPU.ReadRegister(ma), nil

	case memorymap.APU:
		// audio hardware is not emulated. reads of the register stub see
		// open bus
		return 0xff, nil

	case memorymap.DMA:
		// the DMA register is write-only
		return 0xff, nil

	case memorymap.Joypad1:
		return b.Joypad.Read(), nil

	case memorymap.Joypad2:
		// no second controller is fitted
		return 0, nil

	case memorymap.Cartridge:
		if b.cart == nil {
			return 0, curated.Errorf(NoCartridge, address)
		}
		return b.cart.Read(ma), nil
	}

	logger.Logf("memory", "reading from unmapped address %#04x", address)
	return 0, nil
}

// Write implements the bus.CPUBus interface.
func (b *Bus) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		b.ram[ma] = data
		return nil

	case memorymap.PPU:
		b.PPU.WriteRegister(ma, data)
		return nil

	case memorymap.APU:
		// audio hardware is not emulated, writes fall on the floor
		return nil

	case memorymap.DMA:
		return b.dma(data)

	case memorymap.Joypad1:
		b.Joypad.Write(data)
		return nil

	case memorymap.Joypad2:
		// the joypad 2 address doubles as the APU frame counter register
		return nil

	case memorymap.Cartridge:
		return curated.Errorf(ROMWrite, data, address)
	}

	logger.Logf("memory", "writing %#02x to unmapped address %#04x", data, address)
	return nil
}

// dma copies a page of CPU memory into the PPU's object attribute memory.
func (b *Bus) dma(page uint8) error {
	var buf [256]uint8
	origin := uint16(page) << 8

	for i := 0; i < 256; i++ {
		data, err := b.Read(origin + uint16(i))
		if err != nil {
			return err
		}
		buf[i] = data
	}

	b.PPU.WriteOAMDMA(&buf)

	// the DMA engine suspends the CPU while it copies; one cycle longer
	// when the copy starts on an odd cycle
	stall := 513
	if b.Cycles%2 == 1 {
		stall++
	}
	b.Tick(stall)

	return nil
}

// Tick implements the bus.CPUBus interface. The PPU is slaved to the CPU
// clock at three dots per cycle.
func (b *Bus) Tick(cycles int) {
	b.Cycles += uint64(cycles)
	if b.PPU.Tick(cycles * 3) {
		if b.frameCallback != nil {
			b.frameCallback(b.PPU, b.Joypad)
		}
	}
}

// PollNMI implements the bus.CPUBus interface.
func (b *Bus) PollNMI() bool {
	return b.PPU.PollNMI()
}

// Peek implements the bus.DebugBus interface. PPU registers cannot be read
// without side effects so they peek as zero.
func (b *Bus) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return b.ram[ma]

	case memorymap.Joypad1:
		return b.Joypad.Peek()

	case memorymap.Cartridge:
		if b.cart != nil {
			return b.cart.Read(ma)
		}
	}

	return 0
}
