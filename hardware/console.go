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

package hardware

import (
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/logger"
)

// While the continueCheck() function passed to Run() only runs at
// instruction boundaries it can still be expensive to do a full check every
// time. It depends on context whether that matters but the PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	filter++
//	if filter >= hardware.PerformanceBrake {
//		filter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Console is the main container for the emulated components of the console.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Bus
}

// NewConsole creates a new console with an empty cartridge slot.
func NewConsole() *Console {
	mem := memory.NewBus()
	return &Console{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// AttachCartridge loads a cartridge into the console and resets it. The
// loader needn't have been Load()ed yet.
func (con *Console) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return err
	}

	cart, err := cartridge.NewCartridge(cartload.Data)
	if err != nil {
		return err
	}

	logger.Logf("console", "%s attached (%s)", cartload.ShortName(), cart)
	con.Mem.Plug(cart)

	return con.Reset()
}

// Reset emulates the reset switch on the console. RAM contents survive, as
// they do on the real machine.
func (con *Console) Reset() error {
	con.Mem.Reset()
	return con.CPU.Reset()
}

// Step runs the console to the next instruction boundary: one instruction,
// or one interrupt entry.
func (con *Console) Step() error {
	if err := con.CPU.Tick(); err != nil {
		return err
	}
	for !con.CPU.Ready() {
		if err := con.CPU.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Run sets the console running as quickly as possible. The continueCheck
// function is consulted at every instruction boundary; the emulation stops
// cleanly when it returns false. A nil continueCheck means run forever, or
// until an emulation error.
func (con *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont {
		if err = con.Step(); err != nil {
			return err
		}

		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrames runs the console until the PPU has completed the specified
// number of frames.
func (con *Console) RunForFrames(numFrames int) error {
	end := con.Mem.PPU.FrameNum + numFrames
	return con.Run(func() (bool, error) {
		return con.Mem.PPU.FrameNum < end, nil
	})
}

// SetFrameCallback registers the function called whenever the PPU completes
// a frame of video. The callback is the rendezvous point between the
// emulation and whatever is presenting it.
func (con *Console) SetFrameCallback(callback memory.FrameCallback) {
	con.Mem.SetFrameCallback(callback)
}
