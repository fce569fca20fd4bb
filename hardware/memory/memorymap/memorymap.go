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

// Package memorymap maps CPU bus addresses onto the areas of the console
// that respond to them. Addresses should be passed through MapAddress()
// before accessing memory, the function folds the many mirrors of RAM and
// of the PPU register window onto their primary addresses.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case DMA:
		return "DMA"
	case Joypad1:
		return "Joypad1"
	case Joypad2:
		return "Joypad2"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas of the console.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	DMA
	Joypad1
	Joypad2
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and folding the address onto its primary location is
// all handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginAPU  = uint16(0x4000)
	MemtopAPU  = uint16(0x4015)
	OriginCart = uint16(0x8000)
	MemtopCart = uint16(0xffff)
)

// Fixed addresses inside the $4000 block.
const (
	AddressDMA     = uint16(0x4014)
	AddressJoypad1 = uint16(0x4016)
	AddressJoypad2 = uint16(0x4017)
)

// The 2KiB of console RAM is mirrored four times over the bottom 8KiB of the
// address space. Similarly the eight PPU registers repeat every eight bytes
// across their 8KiB window. The masks keep only the relevant bits.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x2007)
)

// The addresses of the interrupt vectors at the top of cartridge space.
const (
	VectorNMI   = uint16(0xfffa)
	VectorReset = uint16(0xfffc)
	VectorIRQ   = uint16(0xfffe)
)

// MapAddress translates the address argument from mirror space to primary
// space and identifies the memory area the address belongs to.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	// cartridge addresses
	if address >= OriginCart {
		return address, Cartridge
	}

	// the fixed addresses carved out of the APU block
	switch address {
	case AddressDMA:
		return address, DMA
	case AddressJoypad1:
		return address, Joypad1
	case AddressJoypad2:
		return address, Joypad2
	}

	// audio registers
	if address >= OriginAPU && address <= MemtopAPU {
		return address, APU
	}

	// PPU registers and their mirrors
	if address >= OriginPPU && address <= MemtopPPU {
		return address & MaskPPU, PPU
	}

	// console RAM and its mirrors
	if address <= MemtopRAM {
		return address & MaskRAM, RAM
	}

	// expansion and cartridge RAM space, unmapped on this console
	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
