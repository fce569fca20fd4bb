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

package cpu

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// Sentinal error patterns for execution faults. Both are fatal to the running
// program but leave the CPU structure in a valid state.
const (
	// the KIL opcodes and the handful of highly unstable undocumented
	// opcodes jam the processor on the real chip. there is no recovering
	// short of a reset
	UnexecutableOpcode = "cpu: opcode %#02x at %#04x jams the processor"

	// returned when an instruction asks for the memory operand of an
	// addressing mode that doesn't have one
	NoOperand = "cpu: addressing mode %d has no memory operand"
)

// the stack occupies the second page of RAM and grows downwards from the
// stack pointer.
const stackOrigin = uint16(0x0100)

// InterruptCycles is the cycle cost of the interrupt entry sequence. It is
// the same for the non-maskable interrupt and for the BRK instruction, which
// shares the sequence.
const InterruptCycles = 7

// CPU implements the 6502-family processor found in the console. The chip is
// a pared down 6502: the decimal flag can be set and cleared but decimal
// arithmetic itself is absent, which this implementation reflects.
//
// Tick() is the only way to advance the processor and it advances by exactly
// one cycle. A full instruction is modelled as the instruction's work
// happening on the first cycle and the remaining cycles of its published cost
// "burning off" on subsequent calls. The memory bus however is told about the
// full cost in one Tick() call, so components slaved to the CPU clock stay in
// step at instruction resolution.
type CPU struct {
	Reg registers.File

	mem bus.CPUBus

	// instruction definitions indexed by opcode value
	defns []*instructions.Definition

	// cycles still to burn before the next instruction can execute
	pending int

	// HaltOnBRK changes the meaning of the BRK instruction from a software
	// interrupt to an end-of-program marker. Test harnesses and byte-program
	// fragments rely on this; a running console must leave it false
	HaltOnBRK bool

	// Complete is set when a BRK instruction executes while HaltOnBRK is
	// set. once set the CPU does nothing until the next Reset()
	Complete bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// returned CPU must be Reset() before it is ticked.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		Reg:   registers.NewFile(),
		mem:   mem,
		defns: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return mc.Reg.String()
}

// Reset puts the registers into their post-reset state and loads the program
// counter from the reset vector.
func (mc *CPU) Reset() error {
	mc.Reg.Reset()
	mc.pending = 0
	mc.Complete = false

	pc, err := bus.Read16(mc.mem, memorymap.VectorReset)
	if err != nil {
		return err
	}
	mc.Reg.PC = pc

	return nil
}

// Ready returns true when the CPU is at an instruction boundary. That is,
// when the next call to Tick() will service an interrupt or fetch a new
// instruction, rather than burn a cycle of the previous instruction.
func (mc *CPU) Ready() bool {
	return mc.pending == 0
}

// Tick advances the CPU by one cycle.
//
// At an instruction boundary the pending interrupt line is polled before the
// next opcode is fetched. Interrupt entry occupies the CPU in the same way
// an instruction does.
func (mc *CPU) Tick() error {
	if mc.Complete {
		return nil
	}

	if mc.pending > 0 {
		mc.pending--
		return nil
	}

	if mc.mem.PollNMI() {
		return mc.interruptNMI()
	}

	return mc.executeInstruction()
}

// interruptNMI performs the entry sequence for the non-maskable interrupt:
// return address and status register to the stack, interrupts disabled, and
// the program counter loaded from the NMI vector.
func (mc *CPU) interruptNMI() error {
	if err := mc.push16(mc.Reg.PC); err != nil {
		return err
	}

	// the pushed copy of the status register has the break flag clear,
	// distinguishing a hardware interrupt from BRK
	st := mc.Reg.Status
	st.Remove(registers.Break)
	st.Insert(registers.Break2)
	if err := mc.push8(st.Value()); err != nil {
		return err
	}

	mc.Reg.Status.Insert(registers.InterruptDisable)

	pc, err := bus.Read16(mc.mem, memorymap.VectorNMI)
	if err != nil {
		return err
	}
	mc.Reg.PC = pc

	mc.pending += InterruptCycles
	mc.mem.Tick(mc.pending)

	// this call to Tick() is the first cycle of the sequence
	mc.pending--

	return nil
}

// executeInstruction runs one whole instruction: fetch, execute, cycle
// accounting and the final program counter adjustment. It must only be
// called at an instruction boundary (pending == 0).
func (mc *CPU) executeInstruction() error {
	origin := mc.Reg.PC

	code, err := mc.read8(mc.Reg.PC)
	if err != nil {
		return err
	}
	mc.Reg.PC++

	defn := mc.defns[code]

	if err := mc.execute(origin, defn); err != nil {
		return err
	}

	if mc.Complete {
		// the halting form of BRK consumes no cycles and leaves the
		// program counter pointing at the padding byte
		return nil
	}

	mc.pending += defn.Cycles

	// the dummy read of page sensitive instructions costs an extra cycle
	// when the effective address crosses into the next page. this must
	// happen before the program counter steps over the operand
	if defn.PageSensitive {
		crossed, err := mc.pageCrossed(defn.AddressingMode)
		if err != nil {
			return err
		}
		if crossed {
			mc.pending++
		}
	}

	mc.mem.Tick(mc.pending)

	// this call to Tick() is the first cycle of the instruction
	mc.pending--

	// instructions that did not change the program counter themselves now
	// step over their operand bytes
	if mc.Reg.PC == origin+1 {
		mc.Reg.PC += uint16(defn.Bytes - 1)
	}

	return nil
}

// execute dispatches on the instruction mnemonic. on entry the program
// counter points at the first operand byte.
func (mc *CPU) execute(origin uint16, defn *instructions.Definition) error {
	switch defn.Mnemonic {
	case "NOP":
		// the undocumented variants perform a dummy read of their operand
		if defn.AddressingMode != instructions.Implied {
			if _, err := mc.readOperand(defn.AddressingMode); err != nil {
				return err
			}
		}

	case "BRK":
		if mc.HaltOnBRK {
			mc.Complete = true
			return nil
		}

		// the byte after a BRK is padding. the pushed return address
		// points past it so that RTI resumes at the next real instruction
		if err := mc.push16(mc.Reg.PC + 1); err != nil {
			return err
		}

		st := mc.Reg.Status
		st.Insert(registers.Break | registers.Break2)
		if err := mc.push8(st.Value()); err != nil {
			return err
		}

		mc.Reg.Status.Insert(registers.InterruptDisable)

		pc, err := bus.Read16(mc.mem, memorymap.VectorIRQ)
		if err != nil {
			return err
		}
		mc.Reg.PC = pc

	// loads and stores
	case "LDA":
		return mc.load(registers.A, defn.AddressingMode)

	case "LDX":
		return mc.load(registers.X, defn.AddressingMode)

	case "LDY":
		return mc.load(registers.Y, defn.AddressingMode)

	case "LAX":
		// load accumulator and X together
		if err := mc.load(registers.A, defn.AddressingMode); err != nil {
			return err
		}
		mc.Reg.Write(registers.X, mc.Reg.A)

	case "STA":
		return mc.store(registers.A, defn.AddressingMode)

	case "STX":
		return mc.store(registers.X, defn.AddressingMode)

	case "STY":
		return mc.store(registers.Y, defn.AddressingMode)

	case "SAX":
		// store the AND of accumulator and X. no flags
		addr, err := mc.operandAddress(defn.AddressingMode)
		if err != nil {
			return err
		}
		return mc.mem.Write(addr, mc.Reg.A&mc.Reg.X)

	// register transfers
	case "TAX":
		mc.Reg.Write(registers.X, mc.Reg.A)

	case "TAY":
		mc.Reg.Write(registers.Y, mc.Reg.A)

	case "TSX":
		mc.Reg.Write(registers.X, mc.Reg.SP)

	case "TXA":
		mc.Reg.Write(registers.A, mc.Reg.X)

	case "TXS":
		mc.Reg.Write(registers.SP, mc.Reg.X)

	case "TYA":
		mc.Reg.Write(registers.A, mc.Reg.Y)

	// increments and decrements
	case "INX":
		mc.Reg.Write(registers.X, mc.Reg.X+1)

	case "INY":
		mc.Reg.Write(registers.Y, mc.Reg.Y+1)

	case "DEX":
		mc.Reg.Write(registers.X, mc.Reg.X-1)

	case "DEY":
		mc.Reg.Write(registers.Y, mc.Reg.Y-1)

	case "INC":
		_, err := mc.incMemory(defn.AddressingMode)
		return err

	case "DEC":
		_, err := mc.decMemory(defn.AddressingMode)
		return err

	// arithmetic
	case "ADC":
		data, err := mc.readOperand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.addToA(data)

	case "SBC":
		// subtraction is addition of the bitwise complement. the carry
		// flag doubles as the (inverted) borrow
		data, err := mc.readOperand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.addToA(^data)

	// logical operations
	case "AND":
		data, err := mc.readOperand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, mc.Reg.A&data)

	case "EOR":
		data, err := mc.readOperand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, mc.Reg.A^data)

	case "ORA":
		data, err := mc.readOperand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, mc.Reg.A|data)

	case "BIT":
		data, err := mc.readOperand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Reg.Status.Set(registers.Zero, data&mc.Reg.A == 0)
		mc.Reg.Status.Set(registers.Negative, data&0x80 == 0x80)
		mc.Reg.Status.Set(registers.Overflow, data&0x40 == 0x40)

	// shifts and rotates
	case "ASL":
		return mc.shift(defn.AddressingMode, asl)

	case "LSR":
		return mc.shift(defn.AddressingMode, lsr)

	case "ROL":
		return mc.shift(defn.AddressingMode, rol)

	case "ROR":
		return mc.shift(defn.AddressingMode, ror)

	// comparisons
	case "CMP":
		return mc.compare(mc.Reg.A, defn.AddressingMode)

	case "CPX":
		return mc.compare(mc.Reg.X, defn.AddressingMode)

	case "CPY":
		return mc.compare(mc.Reg.Y, defn.AddressingMode)

	// branches
	case "BCC":
		return mc.branchOn(!mc.Reg.Status.Contains(registers.Carry))

	case "BCS":
		return mc.branchOn(mc.Reg.Status.Contains(registers.Carry))

	case "BNE":
		return mc.branchOn(!mc.Reg.Status.Contains(registers.Zero))

	case "BEQ":
		return mc.branchOn(mc.Reg.Status.Contains(registers.Zero))

	case "BPL":
		return mc.branchOn(!mc.Reg.Status.Contains(registers.Negative))

	case "BMI":
		return mc.branchOn(mc.Reg.Status.Contains(registers.Negative))

	case "BVC":
		return mc.branchOn(!mc.Reg.Status.Contains(registers.Overflow))

	case "BVS":
		return mc.branchOn(mc.Reg.Status.Contains(registers.Overflow))

	// jumps and subroutines
	case "JMP":
		if defn.AddressingMode == instructions.Absolute {
			pc, err := bus.Read16(mc.mem, mc.Reg.PC)
			if err != nil {
				return err
			}
			mc.Reg.PC = pc
			return nil
		}
		return mc.jmpIndirect()

	case "JSR":
		// the pushed return address is the address of the last operand
		// byte. RTS adds the missing one
		if err := mc.push16(mc.Reg.PC + 1); err != nil {
			return err
		}
		pc, err := bus.Read16(mc.mem, mc.Reg.PC)
		if err != nil {
			return err
		}
		mc.Reg.PC = pc

	case "RTS":
		pc, err := mc.pop16()
		if err != nil {
			return err
		}
		mc.Reg.PC = pc + 1

	case "RTI":
		st, err := mc.pop8()
		if err != nil {
			return err
		}
		mc.Reg.Status = registers.Status(st)
		mc.Reg.Status.Remove(registers.Break)
		mc.Reg.Status.Insert(registers.Break2)

		pc, err := mc.pop16()
		if err != nil {
			return err
		}
		mc.Reg.PC = pc

	// stack operations
	case "PHA":
		return mc.push8(mc.Reg.A)

	case "PLA":
		data, err := mc.pop8()
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, data)

	case "PHP":
		// the pushed copy always has both break flags set
		st := mc.Reg.Status
		st.Insert(registers.Break | registers.Break2)
		return mc.push8(st.Value())

	case "PLP":
		st, err := mc.pop8()
		if err != nil {
			return err
		}
		mc.Reg.Status = registers.Status(st)
		mc.Reg.Status.Remove(registers.Break)
		mc.Reg.Status.Insert(registers.Break2)

	// flag operations
	case "CLC":
		mc.Reg.Status.Remove(registers.Carry)

	case "SEC":
		mc.Reg.Status.Insert(registers.Carry)

	case "CLD":
		mc.Reg.Status.Remove(registers.Decimal)

	case "SED":
		mc.Reg.Status.Insert(registers.Decimal)

	case "CLI":
		mc.Reg.Status.Remove(registers.InterruptDisable)

	case "SEI":
		mc.Reg.Status.Insert(registers.InterruptDisable)

	case "CLV":
		mc.Reg.Status.Remove(registers.Overflow)

	// undocumented read-modify-write instructions. each is the composition
	// of two documented instructions sharing one operand fetch
	case "DCP":
		// DEC then CMP
		data, err := mc.decMemory(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Reg.Status.Set(registers.Carry, data <= mc.Reg.A)
		mc.Reg.SetZN(mc.Reg.A - data)

	case "ISB":
		// INC then SBC
		data, err := mc.incMemory(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.addToA(^data)

	case "SLO":
		// ASL then ORA
		data, err := mc.shiftMemory(defn.AddressingMode, asl)
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, mc.Reg.A|data)

	case "SRE":
		// LSR then EOR
		data, err := mc.shiftMemory(defn.AddressingMode, lsr)
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, mc.Reg.A^data)

	case "RLA":
		// ROL then AND
		data, err := mc.shiftMemory(defn.AddressingMode, rol)
		if err != nil {
			return err
		}
		mc.Reg.Write(registers.A, mc.Reg.A&data)

	case "RRA":
		// ROR then ADC, with ADC consuming the carry the rotate produced
		data, err := mc.shiftMemory(defn.AddressingMode, ror)
		if err != nil {
			return err
		}
		mc.addToA(data)

	default:
		return curated.Errorf(UnexecutableOpcode, defn.OpCode, origin)
	}

	return nil
}

// jmpIndirect implements the indirect form of JMP, including the infamous
// quirk of the chip: a pointer on the last byte of a page reads its high
// byte from the first byte of the same page, not the next one.
func (mc *CPU) jmpIndirect() error {
	ptr, err := bus.Read16(mc.mem, mc.Reg.PC)
	if err != nil {
		return err
	}

	var pc uint16

	if ptr&0x00ff == 0x00ff {
		lo, err := mc.read8(ptr)
		if err != nil {
			return err
		}
		hi, err := mc.read8(ptr & 0xff00)
		if err != nil {
			return err
		}
		pc = uint16(hi)<<8 | uint16(lo)
	} else {
		pc, err = bus.Read16(mc.mem, ptr)
		if err != nil {
			return err
		}
	}

	mc.Reg.PC = pc

	return nil
}

// operandAddress resolves the effective address of the instruction's memory
// operand. on entry the program counter points at the first operand byte.
func (mc *CPU) operandAddress(mode instructions.AddressingMode) (uint16, error) {
	switch mode {
	case instructions.Immediate:
		return mc.Reg.PC, nil

	case instructions.ZeroPage:
		zp, err := mc.read8(mc.Reg.PC)
		return uint16(zp), err

	case instructions.ZeroPageX:
		// zero page indexing wraps inside the zero page
		zp, err := mc.read8(mc.Reg.PC)
		return uint16(zp + mc.Reg.X), err

	case instructions.ZeroPageY:
		zp, err := mc.read8(mc.Reg.PC)
		return uint16(zp + mc.Reg.Y), err

	case instructions.Absolute:
		return bus.Read16(mc.mem, mc.Reg.PC)

	case instructions.AbsoluteX:
		base, err := bus.Read16(mc.mem, mc.Reg.PC)
		return base + uint16(mc.Reg.X), err

	case instructions.AbsoluteY:
		base, err := bus.Read16(mc.mem, mc.Reg.PC)
		return base + uint16(mc.Reg.Y), err

	case instructions.IndirectX:
		zp, err := mc.read8(mc.Reg.PC)
		if err != nil {
			return 0, err
		}
		ptr := zp + mc.Reg.X
		lo, err := mc.read8(uint16(ptr))
		if err != nil {
			return 0, err
		}
		hi, err := mc.read8(uint16(ptr + 1))
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 | uint16(lo), nil

	case instructions.IndirectY:
		zp, err := mc.read8(mc.Reg.PC)
		if err != nil {
			return 0, err
		}
		lo, err := mc.read8(uint16(zp))
		if err != nil {
			return 0, err
		}
		hi, err := mc.read8(uint16(zp + 1))
		if err != nil {
			return 0, err
		}
		return (uint16(hi)<<8 | uint16(lo)) + uint16(mc.Reg.Y), nil
	}

	return 0, curated.Errorf(NoOperand, int(mode))
}

// pageCrossed rederives the effective address of the operand and says
// whether the indexing step crossed a page boundary. only the three
// addressing modes that can cross are considered.
func (mc *CPU) pageCrossed(mode instructions.AddressingMode) (bool, error) {
	switch mode {
	case instructions.AbsoluteX:
		base, err := bus.Read16(mc.mem, mc.Reg.PC)
		if err != nil {
			return false, err
		}
		return base&0xff00 != (base+uint16(mc.Reg.X))&0xff00, nil

	case instructions.AbsoluteY:
		base, err := bus.Read16(mc.mem, mc.Reg.PC)
		if err != nil {
			return false, err
		}
		return base&0xff00 != (base+uint16(mc.Reg.Y))&0xff00, nil

	case instructions.IndirectY:
		zp, err := mc.read8(mc.Reg.PC)
		if err != nil {
			return false, err
		}
		lo, err := mc.read8(uint16(zp))
		if err != nil {
			return false, err
		}
		hi, err := mc.read8(uint16(zp + 1))
		if err != nil {
			return false, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		return base&0xff00 != (base+uint16(mc.Reg.Y))&0xff00, nil
	}

	return false, nil
}

// readOperand resolves the operand address and reads the byte stored there.
func (mc *CPU) readOperand(mode instructions.AddressingMode) (uint8, error) {
	addr, err := mc.operandAddress(mode)
	if err != nil {
		return 0, err
	}
	return mc.read8(addr)
}

func (mc *CPU) load(fld registers.Field, mode instructions.AddressingMode) error {
	data, err := mc.readOperand(mode)
	if err != nil {
		return err
	}
	mc.Reg.Write(fld, data)
	return nil
}

func (mc *CPU) store(fld registers.Field, mode instructions.AddressingMode) error {
	addr, err := mc.operandAddress(mode)
	if err != nil {
		return err
	}
	return mc.mem.Write(addr, mc.Reg.Read(fld))
}

// addToA adds data and the current carry flag to the accumulator, setting
// carry and overflow. SBC uses the same path by complementing its operand.
func (mc *CPU) addToA(data uint8) {
	sum := uint16(mc.Reg.A) + uint16(data)
	if mc.Reg.Status.Contains(registers.Carry) {
		sum++
	}

	result := uint8(sum)
	mc.Reg.Status.Set(registers.Carry, sum > 0xff)

	// overflow is set when the sign of the result disagrees with the sign
	// of both arguments
	mc.Reg.Status.Set(registers.Overflow, (data^result)&(result^mc.Reg.A)&0x80 != 0)

	mc.Reg.Write(registers.A, result)
}

// compare subtracts the operand from val, setting carry, zero and negative.
func (mc *CPU) compare(val uint8, mode instructions.AddressingMode) error {
	data, err := mc.readOperand(mode)
	if err != nil {
		return err
	}
	mc.Reg.Status.Set(registers.Carry, data <= val)
	mc.Reg.SetZN(val - data)
	return nil
}

// branchOn takes the branch when condition is true. taken branches cost one
// extra cycle, two if the target is on a different page to the instruction
// that follows the branch.
func (mc *CPU) branchOn(condition bool) error {
	if !condition {
		return nil
	}

	mc.pending++

	jump, err := mc.read8(mc.Reg.PC)
	if err != nil {
		return err
	}

	target := mc.Reg.PC + 1 + uint16(int8(jump))
	if (mc.Reg.PC+1)&0xff00 != target&0xff00 {
		mc.pending++
	}
	mc.Reg.PC = target

	return nil
}

func (mc *CPU) incMemory(mode instructions.AddressingMode) (uint8, error) {
	addr, err := mc.operandAddress(mode)
	if err != nil {
		return 0, err
	}
	data, err := mc.read8(addr)
	if err != nil {
		return 0, err
	}
	data++
	if err := mc.mem.Write(addr, data); err != nil {
		return 0, err
	}
	mc.Reg.SetZN(data)
	return data, nil
}

func (mc *CPU) decMemory(mode instructions.AddressingMode) (uint8, error) {
	addr, err := mc.operandAddress(mode)
	if err != nil {
		return 0, err
	}
	data, err := mc.read8(addr)
	if err != nil {
		return 0, err
	}
	data--
	if err := mc.mem.Write(addr, data); err != nil {
		return 0, err
	}
	mc.Reg.SetZN(data)
	return data, nil
}

// shiftFunc describes the bit manipulation at the centre of the shift and
// rotate instructions: value and carry in, value and carry out.
type shiftFunc func(data uint8, carry bool) (uint8, bool)

func asl(data uint8, _ bool) (uint8, bool) {
	return data << 1, data&0x80 == 0x80
}

func lsr(data uint8, _ bool) (uint8, bool) {
	return data >> 1, data&0x01 == 0x01
}

func rol(data uint8, carry bool) (uint8, bool) {
	c := uint8(0)
	if carry {
		c = 0x01
	}
	return data<<1 | c, data&0x80 == 0x80
}

func ror(data uint8, carry bool) (uint8, bool) {
	c := uint8(0)
	if carry {
		c = 0x80
	}
	return data>>1 | c, data&0x01 == 0x01
}

func (mc *CPU) shift(mode instructions.AddressingMode, op shiftFunc) error {
	if mode == instructions.Accumulator {
		data, carry := op(mc.Reg.A, mc.Reg.Status.Contains(registers.Carry))
		mc.Reg.Status.Set(registers.Carry, carry)
		mc.Reg.Write(registers.A, data)
		return nil
	}

	_, err := mc.shiftMemory(mode, op)
	return err
}

func (mc *CPU) shiftMemory(mode instructions.AddressingMode, op shiftFunc) (uint8, error) {
	addr, err := mc.operandAddress(mode)
	if err != nil {
		return 0, err
	}
	data, err := mc.read8(addr)
	if err != nil {
		return 0, err
	}

	data, carry := op(data, mc.Reg.Status.Contains(registers.Carry))
	mc.Reg.Status.Set(registers.Carry, carry)

	if err := mc.mem.Write(addr, data); err != nil {
		return 0, err
	}
	mc.Reg.SetZN(data)

	return data, nil
}

func (mc *CPU) read8(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) push8(data uint8) error {
	if err := mc.mem.Write(stackOrigin+uint16(mc.Reg.SP), data); err != nil {
		return err
	}
	mc.Reg.SP--
	return nil
}

func (mc *CPU) pop8() (uint8, error) {
	mc.Reg.SP++
	return mc.read8(stackOrigin + uint16(mc.Reg.SP))
}

func (mc *CPU) push16(data uint16) error {
	if err := mc.push8(uint8(data >> 8)); err != nil {
		return err
	}
	return mc.push8(uint8(data))
}

func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.pop8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
