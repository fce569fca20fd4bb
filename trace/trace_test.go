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

package trace_test

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/trace"
)

const traceStatus = "A:01 X:02 Y:03 P:24 SP:FD PPU: -1,  0 CYC:0"

func poke(t *testing.T, con *hardware.Console, address uint16, data ...uint8) {
	t.Helper()
	for i, d := range data {
		if err := con.Mem.Write(address+uint16(i), d); err != nil {
			t.Fatal(err)
		}
	}
}

func attach(t *testing.T, program []uint8) *hardware.Console {
	t.Helper()

	img := make([]uint8, 16+0x4000)
	copy(img, []uint8{'N', 'E', 'S', 0x1a, 0x01, 0x00})
	copy(img[16:], program)
	img[16+0x3ffc] = 0x00
	img[16+0x3ffd] = 0x80

	con := hardware.NewConsole()
	con.CPU.HaltOnBRK = true
	if err := con.AttachCartridge(cartridgeloader.Loader{Data: img}); err != nil {
		t.Fatal(err)
	}

	return con
}

func TestLineOperands(t *testing.T) {
	con := hardware.NewConsole()
	con.CPU.Reg.A = 0x01
	con.CPU.Reg.X = 0x02
	con.CPU.Reg.Y = 0x03

	// memory the operands resolve through. the pokes at $0000 and $00ff
	// exercise pointer reads that wrap inside the zero page
	poke(t, con, 0x0000, 0x03)
	poke(t, con, 0x0010, 0x55)
	poke(t, con, 0x0012, 0x66)
	poke(t, con, 0x0013, 0x77)
	poke(t, con, 0x0022, 0x00, 0x03)
	poke(t, con, 0x0086, 0x10, 0x03)
	poke(t, con, 0x00ff, 0x20)
	poke(t, con, 0x01f2, 0x99)
	poke(t, con, 0x01f3, 0xab)
	poke(t, con, 0x0200, 0x12)
	poke(t, con, 0x0210, 0x88)
	poke(t, con, 0x02ff, 0x34)
	poke(t, con, 0x0300, 0xcd)
	poke(t, con, 0x0313, 0xef)
	poke(t, con, 0x0320, 0x5a)
	poke(t, con, 0x0323, 0x6b)

	vectors := []struct {
		pc   uint16
		prog []uint8
		asm  string
	}{
		{0x0064, []uint8{0xa9, 0x44}, "0064  A9 44     LDA #$44"},
		{0x0100, []uint8{0xa5, 0x10}, "0100  A5 10     LDA $10 = 55"},
		{0x0110, []uint8{0xb5, 0x10}, "0110  B5 10     LDA $10,X @ 12 = 66"},
		{0x0120, []uint8{0xb6, 0x10}, "0120  B6 10     LDX $10,Y @ 13 = 77"},
		{0x0130, []uint8{0xad, 0x10, 0x02}, "0130  AD 10 02  LDA $0210 = 88"},
		{0x0140, []uint8{0xbd, 0xf0, 0x01}, "0140  BD F0 01  LDA $01F0,X @ 01F2 = 99"},
		{0x0150, []uint8{0xb9, 0xf0, 0x01}, "0150  B9 F0 01  LDA $01F0,Y @ 01F3 = AB"},
		{0x0160, []uint8{0xa1, 0x20}, "0160  A1 20     LDA ($20,X) @ 22 = 0300 = CD"},
		{0x0170, []uint8{0xb1, 0x86}, "0170  B1 86     LDA ($86),Y = 0310 @ 0313 = EF"},
		{0x0180, []uint8{0xd0, 0xfa}, "0180  D0 FA     BNE $017C"},
		{0x0190, []uint8{0x4c, 0x05, 0xc0}, "0190  4C 05 C0  JMP $C005"},
		{0x01a0, []uint8{0x20, 0x00, 0x03}, "01A0  20 00 03  JSR $0300"},
		{0x01b0, []uint8{0x6c, 0xff, 0x02}, "01B0  6C FF 02  JMP ($02FF) = 1234"},
		{0x01c0, []uint8{0x0a}, "01C0  0A        ASL A"},
		{0x01d0, []uint8{0xea}, "01D0  EA        NOP"},
		{0x01e0, []uint8{0xa7, 0x10}, "01E0  A7 10    *LAX $10 = 55"},
		{0x01f8, []uint8{0xa1, 0xfd}, "01F8  A1 FD     LDA ($FD,X) @ FF = 0320 = 5A"},
		{0x01fc, []uint8{0xb1, 0xff}, "01FC  B1 FF     LDA ($FF),Y = 0320 @ 0323 = 6B"},
	}

	for _, v := range vectors {
		poke(t, con, v.pc, v.prog...)
		con.CPU.Reg.PC = v.pc
		test.Equate(t, trace.Line(con), fmt.Sprintf("%-47s %s", v.asm, traceStatus))
	}
}

func TestNestestPreset(t *testing.T) {
	con := attach(t, []uint8{0x4c, 0xf5, 0xc5})
	trace.NestestPreset(con)

	// the very first line of the nestest reference log
	test.Equate(t, trace.Line(con),
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7")
}

func TestRun(t *testing.T) {
	con := attach(t, []uint8{
		0xa2, 0x08, // LDX #$08
		0xca,             // DEX
		0x8e, 0x00, 0x02, // STX $0200
		0xe0, 0x03, // CPX #$03
		0xd0, 0xf8, // BNE loop
		0x8e, 0x01, 0x02, // STX $0201
		0x00, // BRK
	})

	output := &strings.Builder{}
	if err := trace.Run(con, output, false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	test.Equate(t, len(lines), 23)
	test.Equate(t, lines[0], fmt.Sprintf("%-47s %s",
		"8000  A2 08     LDX #$08", "A:00 X:00 Y:00 P:24 SP:FD PPU: -1,  0 CYC:0"))
	test.Equate(t, lines[1], fmt.Sprintf("%-47s %s",
		"8002  CA        DEX", "A:00 X:08 Y:00 P:24 SP:FD PPU: -1,  6 CYC:2"))
	test.Equate(t, strings.HasPrefix(lines[22], "800D  00        BRK"), true)
	test.Equate(t, con.CPU.Complete, true)
}

// TestNestest diffs the emulation against the nestest reference log. The
// test is skipped unless the ROM and log have been placed in the testdata
// directory (they are not distributable with the source).
func TestNestest(t *testing.T) {
	rom := "testdata/nestest.nes"
	log := "testdata/nestest.log"

	if _, err := os.Stat(rom); err != nil {
		t.Skip("testdata/nestest.nes not present")
	}

	ref, err := os.Open(log)
	if err != nil {
		t.Skip("testdata/nestest.log not present")
	}
	defer ref.Close()

	con := hardware.NewConsole()
	if err := con.AttachCartridge(cartridgeloader.NewLoader(rom)); err != nil {
		t.Fatal(err)
	}
	trace.NestestPreset(con)

	lineNum := 0
	scanner := bufio.NewScanner(ref)
	for scanner.Scan() {
		lineNum++
		expected := strings.TrimRight(scanner.Text(), "\r")
		if line := trace.Line(con); line != expected {
			t.Fatalf("nestest divergence at line %d\nwant: %s\ngot:  %s", lineNum, expected, line)
		}
		if err := con.Step(); err != nil {
			t.Fatal(err)
		}
	}
}
