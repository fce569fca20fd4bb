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

package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/trace/easyterm"
)

// the tracer keeps its own copy of the instruction table; the running CPU
// does not expose its decoder
var defns = instructions.GetDefinitions()

// NestestPreset puts a console into the power-on state assumed by the
// nestest reference log: execution at $c000 rather than the reset vector,
// seven cycles already on the clock and the PPU twenty-one dots into its
// first scanline.
func NestestPreset(con *hardware.Console) {
	con.CPU.Reg.PC = 0xc000
	con.Mem.Cycles = 7
	con.Mem.PPU.Scanline = 0
	con.Mem.PPU.Dot = 21
}

// Line formats the instruction the console is about to execute, one line in
// the format popularised by the nestest reference log. The console must be
// at an instruction boundary. Memory is only ever Peek()ed at, tracing
// never disturbs the hardware being traced.
func Line(con *hardware.Console) string {
	mem := con.Mem
	reg := con.CPU.Reg
	pc := reg.PC

	defn := defns[mem.Peek(pc)]

	var dump strings.Builder
	for i := 0; i < defn.Bytes; i++ {
		if i > 0 {
			dump.WriteRune(' ')
		}
		fmt.Fprintf(&dump, "%02x", mem.Peek(pc+uint16(i)))
	}

	name := defn.Mnemonic
	if defn.Unofficial {
		name = "*" + name
	}

	asm := strings.TrimSpace(fmt.Sprintf("%04x  %-8s %4s %s",
		pc, dump.String(), name, operand(mem, reg, defn)))

	return strings.ToUpper(fmt.Sprintf("%-47s A:%02x X:%02x Y:%02x P:%02x SP:%02x PPU:%3d,%3d CYC:%d",
		asm, reg.A, reg.X, reg.Y, reg.Status.Value(), reg.SP,
		mem.PPU.Scanline, mem.PPU.Dot, mem.Cycles))
}

// operand renders the operand column of a trace line: the operand as
// written, decorated with the effective address and the value found there.
func operand(mem bus.DebugBus, reg registers.File, defn *instructions.Definition) string {
	op1 := mem.Peek(reg.PC + 1)
	op2 := mem.Peek(reg.PC + 2)
	abs := uint16(op2)<<8 | uint16(op1)

	// branches and the jump instructions show where control ends up rather
	// than a memory value
	switch {
	case defn.IsBranch():
		return fmt.Sprintf("$%04x", reg.PC+2+uint16(int8(op1)))

	case defn.Mnemonic == "JMP" && defn.AddressingMode == instructions.Implied:
		// the indirect jump. resolution wraps inside the page, like the
		// silicon does
		var target uint16
		if abs&0x00ff == 0x00ff {
			target = uint16(mem.Peek(abs&0xff00))<<8 | uint16(mem.Peek(abs))
		} else {
			target = uint16(mem.Peek(abs+1))<<8 | uint16(mem.Peek(abs))
		}
		return fmt.Sprintf("($%04x) = %04x", abs, target)

	case defn.Mnemonic == "JMP" || defn.Mnemonic == "JSR":
		return fmt.Sprintf("$%04x", abs)
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		return ""

	case instructions.Accumulator:
		return "A"

	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", op1)

	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x = %02x", op1, mem.Peek(uint16(op1)))

	case instructions.ZeroPageX:
		ea := uint16(op1 + reg.X)
		return fmt.Sprintf("$%02x,X @ %02x = %02x", op1, uint8(ea), mem.Peek(ea))

	case instructions.ZeroPageY:
		ea := uint16(op1 + reg.Y)
		return fmt.Sprintf("$%02x,Y @ %02x = %02x", op1, uint8(ea), mem.Peek(ea))

	case instructions.Absolute:
		return fmt.Sprintf("$%04x = %02x", abs, mem.Peek(abs))

	case instructions.AbsoluteX:
		ea := abs + uint16(reg.X)
		return fmt.Sprintf("$%04x,X @ %04x = %02x", abs, ea, mem.Peek(ea))

	case instructions.AbsoluteY:
		ea := abs + uint16(reg.Y)
		return fmt.Sprintf("$%04x,Y @ %04x = %02x", abs, ea, mem.Peek(ea))

	case instructions.IndirectX:
		ptr := op1 + reg.X
		ea := uint16(mem.Peek(uint16(ptr+1)))<<8 | uint16(mem.Peek(uint16(ptr)))
		return fmt.Sprintf("($%02x,X) @ %02x = %04x = %02x", op1, ptr, ea, mem.Peek(ea))

	case instructions.IndirectY:
		base := uint16(mem.Peek(uint16(op1+1)))<<8 | uint16(mem.Peek(uint16(op1)))
		ea := base + uint16(reg.Y)
		return fmt.Sprintf("($%02x),Y = %04x @ %04x = %02x", op1, base, ea, mem.Peek(ea))
	}

	return ""
}

// Run traces the console instruction by instruction, printing a line for
// each to the output writer. With pause set, execution waits for a keypress
// between instructions: any key steps, q quits.
//
// The function returns when the CPU halts (a BRK with HaltOnBRK set), when
// the user quits, or on an emulation error.
func Run(con *hardware.Console, output io.Writer, pause bool) error {
	var term easyterm.Terminal

	if pause {
		if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
			return curated.Errorf("trace: %v", err)
		}
		defer term.CanonicalMode()
		term.CBreakMode()
	}

	for !con.CPU.Complete {
		fmt.Fprintln(output, Line(con))

		if pause {
			key, err := term.ReadRune()
			if err != nil {
				return curated.Errorf("trace: %v", err)
			}
			if key == 'q' || key == 'Q' || key == easyterm.KeyInterrupt {
				return nil
			}
		}

		if err := con.Step(); err != nil {
			return err
		}
	}

	return nil
}
