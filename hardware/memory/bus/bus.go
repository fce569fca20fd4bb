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

// Package bus defines the memory bus concept as seen from the CPU. The
// concrete implementation that connects RAM, PPU, cartridge and joypad lives
// in the memory package; the CPU and its tests only ever see the interfaces
// defined here.
package bus

// CPUBus defines the operations the CPU requires of the rest of the console.
//
// The CPU is the clock source of the whole machine. Every instruction it
// completes is reported through Tick() so that the implementation can run
// the slaved components (the PPU runs at three times the CPU clock). The
// result of that ticking, as far as the CPU is concerned, is the possible
// raising of the non-maskable interrupt, which the CPU asks about with
// PollNMI() before every instruction fetch.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// Tick announces that the CPU has consumed the given number of cycles
	Tick(cycles int)

	// PollNMI returns true if the non-maskable interrupt line has been
	// raised since the last poll. Polling clears the line
	PollNMI() bool
}

// DebugBus defines the meta-operations for the memory system. Peek is a
// read without consequence: no register side effects, no cycle cost. It is
// used by the instruction tracer which must never disturb the hardware it
// is describing.
type DebugBus interface {
	Peek(address uint16) uint8
}

// Read16 reads the 16bit value stored at address in the usual little-endian
// byte order of the 6502.
func Read16(m CPUBus, address uint16) (uint16, error) {
	lo, err := m.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 writes a 16bit value to address, low byte first.
func Write16(m CPUBus, address uint16, data uint16) error {
	if err := m.Write(address, uint8(data)); err != nil {
		return err
	}
	return m.Write(address+1, uint8(data>>8))
}
