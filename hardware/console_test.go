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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/test"
)

// buildImage assembles an iNES image around a program placed at the start
// of PRG, with the reset vector pointing at it.
func buildImage(program []uint8) []byte {
	img := make([]byte, 16+cartridge.PRGBankSize+cartridge.CHRBankSize)
	copy(img, []byte{0x4e, 0x45, 0x53, 0x1a})
	img[4] = 1
	img[5] = 1
	copy(img[16:], program)

	// reset vector. a single PRG bank is mirrored so $8000 works for both
	// halves of the window
	img[16+0x3ffc] = 0x00
	img[16+0x3ffd] = 0x80

	return img
}

// attach builds a console around the given program and runs it to the BRK
// at the end.
func attach(t *testing.T, program []uint8) *hardware.Console {
	t.Helper()

	con := hardware.NewConsole()
	con.CPU.HaltOnBRK = true

	err := con.AttachCartridge(cartridgeloader.Loader{Data: buildImage(program)})
	test.ExpectedSuccess(t, err)

	return con
}

func TestConsoleProgram(t *testing.T) {
	// count x down from 8, storing each value until x reaches 3
	con := attach(t, []uint8{
		0xa2, 0x08, // LDX #$08
		0xca,             // DEX
		0x8e, 0x00, 0x02, // STX $0200
		0xe0, 0x03, // CPX #$03
		0xd0, 0xf8, // BNE back to DEX
		0x8e, 0x01, 0x02, // STX $0201
		0x00, // BRK
	})

	err := con.Run(func() (bool, error) {
		return !con.CPU.Complete, nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, con.Mem.Peek(0x0200), 0x03)
	test.Equate(t, con.Mem.Peek(0x0201), 0x03)
	test.Equate(t, con.CPU.Reg.X, 0x03)
}

func TestConsoleReset(t *testing.T) {
	con := attach(t, []uint8{
		0xa9, 0x55, // LDA #$55
		0x8d, 0x00, 0x02, // STA $0200
		0x00, // BRK
	})

	err := con.Run(func() (bool, error) {
		return !con.CPU.Complete, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, con.Mem.Peek(0x0200), 0x55)

	// reset rewinds the program counter to the vector and clears the halt.
	// RAM survives
	err = con.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, con.CPU.Reg.PC, 0x8000)
	test.Equate(t, con.CPU.Complete, false)
	test.Equate(t, con.Mem.Peek(0x0200), 0x55)
}

func TestConsoleRunForFrames(t *testing.T) {
	// spin forever; the frame counter is the stop condition
	con := attach(t, []uint8{
		0x4c, 0x00, 0x80, // JMP $8000
	})

	err := con.RunForFrames(2)
	test.ExpectedSuccess(t, err)

	test.Equate(t, con.Mem.PPU.FrameNum, 2)

	// a frame is 341*262 dots at three dots per CPU cycle. the cycle count
	// can overshoot by at most one instruction
	if con.Mem.Cycles < 2*341*262/3 || con.Mem.Cycles > 2*341*262/3+3 {
		t.Errorf("unexpected cycle count after two frames (%d)", con.Mem.Cycles)
	}
}

func TestConsoleFrameCallback(t *testing.T) {
	// run the same program twice, folding every completed frame into a
	// video digest. the fingerprints must agree
	run := func() string {
		con := attach(t, []uint8{
			0x4c, 0x00, 0x80, // JMP $8000
		})

		dig := digest.NewVideo()

		frames := 0
		con.SetFrameCallback(func(p *ppu.PPU, joy *input.Joypad) {
			frames++
			test.ExpectedSuccess(t, dig.NewFrame(p.Frame()))
		})

		err := con.RunForFrames(3)
		test.ExpectedSuccess(t, err)
		test.Equate(t, frames, 3)
		test.Equate(t, dig.FrameNum(), 3)

		return dig.Hash()
	}

	test.Equate(t, run(), run())
}

func TestConsoleStep(t *testing.T) {
	con := attach(t, []uint8{
		0xa9, 0x01, // LDA #$01  2 cycles
		0x69, 0x02, // ADC #$02  2 cycles
	})

	test.ExpectedSuccess(t, con.Step())
	test.Equate(t, con.CPU.Reg.A, 0x01)
	test.Equate(t, con.Mem.Cycles, 2)

	test.ExpectedSuccess(t, con.Step())
	test.Equate(t, con.CPU.Reg.A, 0x03)
	test.Equate(t, con.Mem.Cycles, 4)
}
