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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

// mockMem is a flat 64KiB memory space. it implements bus.CPUBus and records
// how many cycles the CPU has reported through Tick().
type mockMem struct {
	internal []uint8
	ticks    int
	nmi      bool
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (m *mockMem) Read(address uint16) (uint8, error) {
	return m.internal[address], nil
}

func (m *mockMem) Write(address uint16, data uint8) error {
	m.internal[address] = data
	return nil
}

func (m *mockMem) Tick(cycles int) {
	m.ticks += cycles
}

func (m *mockMem) PollNMI() bool {
	n := m.nmi
	m.nmi = false
	return n
}

// byte programs are loaded at an address well away from the zero page and
// the stack.
const loadAddr = uint16(0x0600)

// load copies the program into memory, points the reset vector at it and
// returns a freshly reset CPU. the cycle count of the mock memory is zeroed
// so tests can measure the cost of what they run next.
func load(t *testing.T, mem *mockMem, program ...uint8) *cpu.CPU {
	t.Helper()

	copy(mem.internal[loadAddr:], program)
	mem.internal[0xfffc] = uint8(loadAddr & 0x00ff)
	mem.internal[0xfffd] = uint8(loadAddr >> 8)

	mc := cpu.NewCPU(mem)
	mc.HaltOnBRK = true
	if err := mc.Reset(); err != nil {
		t.Fatal(err)
	}

	mem.ticks = 0

	return mc
}

// step runs the CPU to the next instruction boundary.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	if err := mc.Tick(); err != nil {
		t.Fatal(err)
	}
	for !mc.Ready() {
		if err := mc.Tick(); err != nil {
			t.Fatal(err)
		}
	}
}

// run loads the program and steps the CPU until the concluding BRK.
func run(t *testing.T, mem *mockMem, program ...uint8) *cpu.CPU {
	t.Helper()

	mc := load(t, mem, program...)
	for i := 0; !mc.Complete; i++ {
		if i > 10000 {
			t.Fatal("program has not halted")
		}
		step(t, mc)
	}
	return mc
}

func TestLDAImmediate(t *testing.T) {
	mem := newMockMem()

	mc := run(t, mem, 0xa9, 0x05, 0x00)
	test.Equate(t, mc.Reg.A, 0x05)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), false)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), false)

	mc = run(t, mem, 0xa9, 0x00, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)

	mc = run(t, mem, 0xa9, 0x80, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
}

func TestLDAFromMemory(t *testing.T) {
	mem := newMockMem()
	mem.internal[0x0010] = 0x55

	mc := run(t, mem, 0xa5, 0x10, 0x00)
	test.Equate(t, mc.Reg.A, 0x55)
}

func TestFiveOpsWorkingTogether(t *testing.T) {
	mem := newMockMem()

	// LDA #$c0; TAX; INX; BRK
	mc := run(t, mem, 0xa9, 0xc0, 0xaa, 0xe8, 0x00)
	test.Equate(t, mc.Reg.X, 0xc1)

	// two cycles for each of the three instructions. the halting BRK is free
	test.Equate(t, mem.ticks, 6)
}

func TestINXOverflow(t *testing.T) {
	mem := newMockMem()

	mc := run(t, mem, 0xa2, 0xff, 0xe8, 0xe8, 0x00)
	test.Equate(t, mc.Reg.X, 0x01)
}

func TestZeroPageWraparound(t *testing.T) {
	mem := newMockMem()

	// LDX #$81; LDA #$42; STA $90,X. the effective address wraps inside the
	// zero page
	run(t, mem, 0xa2, 0x81, 0xa9, 0x42, 0x95, 0x90, 0x00)
	test.Equate(t, mem.internal[0x0011], 0x42)
}

func TestIndirectX(t *testing.T) {
	mem := newMockMem()
	mem.internal[0x24] = 0x34
	mem.internal[0x25] = 0x02
	mem.internal[0x0234] = 0x77

	// LDX #$04; LDA ($20,X)
	mc := run(t, mem, 0xa2, 0x04, 0xa1, 0x20, 0x00)
	test.Equate(t, mc.Reg.A, 0x77)
}

func TestIndirectXPointerWraparound(t *testing.T) {
	mem := newMockMem()

	// a pointer at $ff reads its high byte from $00
	mem.internal[0xff] = 0x34
	mem.internal[0x00] = 0x02
	mem.internal[0x0234] = 0x99

	mc := run(t, mem, 0xa2, 0x00, 0xa1, 0xff, 0x00)
	test.Equate(t, mc.Reg.A, 0x99)
}

func TestIndirectY(t *testing.T) {
	mem := newMockMem()
	mem.internal[0x20] = 0x30
	mem.internal[0x21] = 0x02
	mem.internal[0x0234] = 0x66

	// LDY #$04; LDA ($20),Y
	mc := run(t, mem, 0xa0, 0x04, 0xb1, 0x20, 0x00)
	test.Equate(t, mc.Reg.A, 0x66)
}

func TestADC(t *testing.T) {
	mem := newMockMem()

	// the carry flag takes part in the sum
	mc := run(t, mem, 0x38, 0xa9, 0x01, 0x69, 0x01, 0x00)
	test.Equate(t, mc.Reg.A, 0x03)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), false)

	// carry out
	mc = run(t, mem, 0xa9, 0xff, 0x69, 0x01, 0x00)
	test.Equate(t, mc.Reg.A, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Overflow), false)

	// adding two positive numbers can overflow into the negative range
	mc = run(t, mem, 0xa9, 0x50, 0x69, 0x50, 0x00)
	test.Equate(t, mc.Reg.A, 0xa0)
	test.Equate(t, mc.Reg.Status.Contains(registers.Overflow), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), false)

	// and two negative numbers into the positive range
	mc = run(t, mem, 0xa9, 0xd0, 0x69, 0x90, 0x00)
	test.Equate(t, mc.Reg.A, 0x60)
	test.Equate(t, mc.Reg.Status.Contains(registers.Overflow), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)
}

func TestSBC(t *testing.T) {
	mem := newMockMem()

	// SEC before SBC means "no borrow"
	mc := run(t, mem, 0x38, 0xa9, 0x05, 0xe9, 0x03, 0x00)
	test.Equate(t, mc.Reg.A, 0x02)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)

	// carry is clear after reset so the borrow is taken
	mc = run(t, mem, 0xa9, 0x05, 0xe9, 0x03, 0x00)
	test.Equate(t, mc.Reg.A, 0x01)

	// subtracting past zero clears the carry
	mc = run(t, mem, 0xa9, 0x03, 0x38, 0xe9, 0x05, 0x00)
	test.Equate(t, mc.Reg.A, 0xfe)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), false)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
}

func TestShiftsAndRotates(t *testing.T) {
	mem := newMockMem()

	// ASL A
	mc := run(t, mem, 0xa9, 0x81, 0x0a, 0x00)
	test.Equate(t, mc.Reg.A, 0x02)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)

	// LSR A
	mc = run(t, mem, 0xa9, 0x01, 0x4a, 0x00)
	test.Equate(t, mc.Reg.A, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)

	// ROL A rotates the carry into bit zero
	mc = run(t, mem, 0x38, 0xa9, 0x80, 0x2a, 0x00)
	test.Equate(t, mc.Reg.A, 0x01)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)

	// ROR A rotates the carry into bit seven
	mc = run(t, mem, 0x38, 0xa9, 0x01, 0x6a, 0x00)
	test.Equate(t, mc.Reg.A, 0x80)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)

	// the memory form leaves the accumulator alone
	mem.internal[0x10] = 0x40
	mc = run(t, mem, 0x06, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x80)
	test.Equate(t, mc.Reg.A, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
}

func TestINCDECMemory(t *testing.T) {
	mem := newMockMem()

	mem.internal[0x10] = 0xff
	mc := run(t, mem, 0xe6, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)

	mem.internal[0x10] = 0x00
	mc = run(t, mem, 0xc6, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0xff)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
}

func TestCompare(t *testing.T) {
	mem := newMockMem()

	// equal
	mc := run(t, mem, 0xa9, 0x10, 0xc9, 0x10, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)

	// greater than
	mc = run(t, mem, 0xa9, 0x20, 0xc9, 0x10, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), false)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)

	// less than
	mc = run(t, mem, 0xa9, 0x10, 0xc9, 0x20, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), false)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
}

func TestBIT(t *testing.T) {
	mem := newMockMem()
	mem.internal[0x10] = 0xc0

	mc := run(t, mem, 0xa9, 0x00, 0x24, 0x10, 0x00)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Overflow), true)
}

// every branch instruction in a short program that loops while the branch is
// taken and halts when it is not.
func TestBranchLoops(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		x       uint8
	}{
		{"BNE", []uint8{0xa2, 0x08, 0xca, 0xe0, 0x03, 0xd0, 0xfb, 0x00}, 0x03},
		{"BEQ", []uint8{0xa2, 0x03, 0xca, 0xf0, 0x03, 0x4c, 0x02, 0x06, 0x00}, 0x00},
		{"BCS", []uint8{0xa2, 0x08, 0xca, 0xe0, 0x03, 0xb0, 0xfb, 0x00}, 0x02},
		{"BCC", []uint8{0xa2, 0x02, 0xe8, 0xe0, 0x05, 0x90, 0xfb, 0x00}, 0x05},
		{"BPL", []uint8{0xa2, 0x05, 0xca, 0x10, 0xfd, 0x00}, 0xff},
		{"BMI", []uint8{0xa2, 0x88, 0xe8, 0x30, 0xfd, 0x00}, 0x00},
		{"BVC", []uint8{0xb8, 0x50, 0x01, 0x00, 0xa2, 0x01, 0x00}, 0x01},
		{"BVS", []uint8{0xa9, 0x50, 0x69, 0x50, 0x70, 0x01, 0x00, 0xa2, 0x01, 0x00}, 0x01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mem := newMockMem()
			mc := run(t, mem, tc.program...)
			test.Equate(t, mc.Reg.X, tc.x)
		})
	}
}

func TestBranchCycles(t *testing.T) {
	mem := newMockMem()

	// not taken: the base two cycles. the zero flag is clear after reset so
	// BEQ falls through
	mc := load(t, mem, 0xf0, 0x00, 0x00)
	step(t, mc)
	test.Equate(t, mem.ticks, 2)

	// taken with the target on the same page: three cycles
	mc = load(t, mem, 0xd0, 0x00, 0x00)
	step(t, mc)
	test.Equate(t, mem.ticks, 3)

	// taken with the target on the next page: four cycles
	mem = newMockMem()
	mem.internal[0x06fd] = 0xd0
	mem.internal[0x06fe] = 0x10
	mem.internal[0xfffc] = 0xfd
	mem.internal[0xfffd] = 0x06
	mc = cpu.NewCPU(mem)
	if err := mc.Reset(); err != nil {
		t.Fatal(err)
	}
	mem.ticks = 0
	step(t, mc)
	test.Equate(t, mem.ticks, 4)
	test.Equate(t, mc.Reg.PC, 0x070f)
}

func TestPageCrossCycles(t *testing.T) {
	mem := newMockMem()

	// indexed read within the page: four cycles
	mc := load(t, mem, 0xa2, 0x0f, 0xbd, 0xf0, 0x12, 0x00)
	step(t, mc)
	mem.ticks = 0
	step(t, mc)
	test.Equate(t, mem.ticks, 4)

	// indexed read crossing into the next page: five cycles
	mc = load(t, mem, 0xa2, 0x20, 0xbd, 0xf0, 0x12, 0x00)
	step(t, mc)
	mem.ticks = 0
	step(t, mc)
	test.Equate(t, mem.ticks, 5)

	// stores pay the full cost whether or not the page is crossed
	mc = load(t, mem, 0xa2, 0x20, 0x9d, 0xf0, 0x12, 0x00)
	step(t, mc)
	mem.ticks = 0
	step(t, mc)
	test.Equate(t, mem.ticks, 5)
}

func TestStackInstructions(t *testing.T) {
	mem := newMockMem()

	// PHA/PLA roundtrip
	mc := run(t, mem, 0xa9, 0xff, 0x48, 0xa9, 0x00, 0x68, 0x00)
	test.Equate(t, mc.Reg.A, 0xff)
	test.Equate(t, mc.Reg.Status.Contains(registers.Negative), true)
	test.Equate(t, mc.Reg.SP, registers.SPReset)

	// the copy of the status register pushed by PHP has both break flags set
	mc = load(t, mem, 0x08, 0x00)
	step(t, mc)
	test.Equate(t, mem.internal[0x01fd], 0x34)
	test.Equate(t, mc.Reg.SP, 0xfc)

	// PLP clears the break flag and forces the unused flag on
	mc = run(t, mem, 0xa9, 0xff, 0x48, 0x28, 0x00)
	test.Equate(t, mc.Reg.Status.Value(), 0xef)
}

func TestStackScenario(t *testing.T) {
	mem := newMockMem()

	// push $CAFE, $AABB and $CCDD as 16bit values (high byte first, as the
	// hardware does for addresses) and pop them back off into the zero page
	program := []uint8{
		0xa9, 0xca, 0x48, 0xa9, 0xfe, 0x48,
		0xa9, 0xaa, 0x48, 0xa9, 0xbb, 0x48,
		0xa9, 0xcc, 0x48, 0xa9, 0xdd, 0x48,
		0x68, 0x85, 0x00, 0x68, 0x85, 0x01,
		0x68, 0x85, 0x02, 0x68, 0x85, 0x03,
		0x68, 0x85, 0x04, 0x68, 0x85, 0x05,
		0x00,
	}

	mc := run(t, mem, program...)

	// values come back in the reverse order they went on
	test.Equate(t, uint16(mem.internal[0x01])<<8|uint16(mem.internal[0x00]), 0xccdd)
	test.Equate(t, uint16(mem.internal[0x03])<<8|uint16(mem.internal[0x02]), 0xaabb)
	test.Equate(t, uint16(mem.internal[0x05])<<8|uint16(mem.internal[0x04]), 0xcafe)
	test.Equate(t, mc.Reg.SP, registers.SPReset)
}

func TestJSRAndRTS(t *testing.T) {
	mem := newMockMem()

	program := []uint8{
		0x20, 0x09, 0x06, // JSR $0609
		0xa9, 0x01, // LDA #$01
		0x00,             // BRK
		0x00, 0x00, 0x00, // (padding)
		0xa2, 0x05, // $0609: LDX #$05
		0x60, // RTS
	}

	mc := load(t, mem, program...)

	// JSR pushes the address of its own last byte
	step(t, mc)
	test.Equate(t, mc.Reg.PC, 0x0609)
	test.Equate(t, mc.Reg.SP, 0xfb)
	test.Equate(t, mem.internal[0x01fd], 0x06)
	test.Equate(t, mem.internal[0x01fc], 0x02)

	for !mc.Complete {
		step(t, mc)
	}
	test.Equate(t, mc.Reg.A, 0x01)
	test.Equate(t, mc.Reg.X, 0x05)
	test.Equate(t, mc.Reg.SP, registers.SPReset)
}

func TestJMPIndirectPageBug(t *testing.T) {
	mem := newMockMem()

	// a pointer on the last byte of a page takes its high byte from the
	// first byte of the same page
	mem.internal[0x30ff] = 0x80
	mem.internal[0x3000] = 0x40
	mem.internal[0x3100] = 0x50

	mc := load(t, mem, 0x6c, 0xff, 0x30)
	step(t, mc)
	test.Equate(t, mc.Reg.PC, 0x4080)
}

func TestBRKHalt(t *testing.T) {
	mem := newMockMem()

	mc := run(t, mem, 0x00)
	test.Equate(t, mc.Complete, true)

	// the halting BRK consumes no cycles and does not skip its padding byte
	test.Equate(t, mem.ticks, 0)
	test.Equate(t, mc.Reg.PC, loadAddr+1)
}

func TestBRKSoftwareInterrupt(t *testing.T) {
	mem := newMockMem()
	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x07

	mc := load(t, mem, 0x00)
	mc.HaltOnBRK = false

	step(t, mc)
	test.Equate(t, mc.Reg.PC, 0x0700)
	test.Equate(t, mem.ticks, cpu.InterruptCycles)
	test.Equate(t, mc.Reg.SP, 0xfa)
	test.Equate(t, mc.Reg.Status.Contains(registers.InterruptDisable), true)

	// the pushed return address points past the padding byte
	test.Equate(t, mem.internal[0x01fd], 0x06)
	test.Equate(t, mem.internal[0x01fc], 0x02)

	// the pushed status has both break flags set
	test.Equate(t, mem.internal[0x01fb], 0x34)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mem.internal[0xfffa] = 0x00
	mem.internal[0xfffb] = 0x07

	// the interrupt handler: LDA #$42; RTI
	mem.internal[0x0700] = 0xa9
	mem.internal[0x0701] = 0x42
	mem.internal[0x0702] = 0x40

	mc := load(t, mem, 0xa2, 0x01, 0xa2, 0x02, 0x00)

	step(t, mc)
	test.Equate(t, mc.Reg.X, 0x01)

	// raise the interrupt line. the entry sequence happens before the next
	// instruction
	mem.nmi = true
	mem.ticks = 0
	step(t, mc)
	test.Equate(t, mc.Reg.PC, 0x0700)
	test.Equate(t, mem.ticks, cpu.InterruptCycles)
	test.Equate(t, mc.Reg.Status.Contains(registers.InterruptDisable), true)

	// the pushed status has the break flag clear and the unused flag set
	test.Equate(t, mem.internal[0x01fb]&0x30, 0x20)

	step(t, mc)
	test.Equate(t, mc.Reg.A, 0x42)

	// RTI returns to the interrupted program
	step(t, mc)
	test.Equate(t, mc.Reg.PC, 0x0602)
	test.Equate(t, mc.Reg.SP, registers.SPReset)

	step(t, mc)
	test.Equate(t, mc.Reg.X, 0x02)
}

func TestJamOpcode(t *testing.T) {
	mem := newMockMem()

	mc := load(t, mem, 0x02)
	err := mc.Tick()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cpu.UnexecutableOpcode), true)
}

func TestUndocumentedLoads(t *testing.T) {
	mem := newMockMem()

	// LAX loads the accumulator and X together
	mem.internal[0x10] = 0x55
	mc := run(t, mem, 0xa7, 0x10, 0x00)
	test.Equate(t, mc.Reg.A, 0x55)
	test.Equate(t, mc.Reg.X, 0x55)

	// SAX stores the AND of the accumulator and X without touching flags
	run(t, mem, 0xa9, 0x3c, 0xa2, 0x0f, 0x87, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x0c)
}

func TestUndocumentedReadModifyWrite(t *testing.T) {
	mem := newMockMem()

	// DCP decrements then compares
	mem.internal[0x10] = 0x05
	mc := run(t, mem, 0xa9, 0x04, 0xc7, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x04)
	test.Equate(t, mc.Reg.Status.Contains(registers.Carry), true)
	test.Equate(t, mc.Reg.Status.Contains(registers.Zero), true)

	// ISB increments then subtracts
	mem.internal[0x10] = 0x01
	mc = run(t, mem, 0xa9, 0x05, 0x38, 0xe7, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x02)
	test.Equate(t, mc.Reg.A, 0x03)

	// SLO shifts left then ORs
	mem.internal[0x10] = 0x40
	mc = run(t, mem, 0xa9, 0x01, 0x07, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x80)
	test.Equate(t, mc.Reg.A, 0x81)

	// SRE shifts right then EORs
	mem.internal[0x10] = 0x02
	mc = run(t, mem, 0xa9, 0x03, 0x47, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x01)
	test.Equate(t, mc.Reg.A, 0x02)

	// RLA rotates left then ANDs
	mem.internal[0x10] = 0x40
	mc = run(t, mem, 0xa9, 0xff, 0x27, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x80)
	test.Equate(t, mc.Reg.A, 0x80)

	// RRA rotates right then adds, consuming the carry the rotate produced
	mem.internal[0x10] = 0x02
	mc = run(t, mem, 0xa9, 0x01, 0x67, 0x10, 0x00)
	test.Equate(t, mem.internal[0x10], 0x01)
	test.Equate(t, mc.Reg.A, 0x02)
}
