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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/gui/sdlplay"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/playmode"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/trace"
	"github.com/jetsetilly/gophernes/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY be called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with the reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var scr GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator function returns its concrete type wrapped in
				// the GuiCreator interface. on error the wrapped value is a
				// typed nil, which does not compare equal to nil, so make
				// sure the scr variable really is nil
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			// service the most recently created GUI
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "TRACE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "TRACE":
		err = runTrace(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scale := md.AddInt("scale", 0, "window scale factor (0 = default)")
	view := md.AddBool("view", false, "show pattern table and nametables alongside the game")
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to console specification")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay()
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		// set scaling value
		if *scale > 0 {
			err = scr.SetFeature(gui.ReqSetScale, *scale)
			if err != nil {
				return err
			}
		}

		err = playmode.Play(scr, cartload, *view, *fpsCap)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func runTrace(md *modalflag.Modes) error {
	md.NewMode()

	pause := md.AddBool("pause", false, "pause after every instruction (q to quit)")
	nestest := md.AddBool("nestest", false, "preset console state for nestest log comparison")

	md.AdditionalHelp(
		`The -nestest flag presets the console to the state assumed by the nestest reference
log: execution begins at $c000 rather than at the reset vector. The output of the trace
can then be diffed directly against the reference log.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		con := hardware.NewConsole()

		// halt on BRK so that tracing of simple test programs terminates
		con.CPU.HaltOnBRK = true

		err = con.AttachCartridge(cartload)
		if err != nil {
			return err
		}

		if *nestest {
			trace.NestestPreset(con)
		}

		err = trace.Run(con, md.Output, *pause)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		err = performance.Check(md.Output, *profile, cartload, *duration)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	md.Output.Write([]byte(fmt.Sprintf("%s %s\n", version.ApplicationName, ver)))

	if *revision {
		md.Output.Write([]byte(fmt.Sprintf("%s\n", rev)))
	}

	if statsview.Available() {
		md.Output.Write([]byte(fmt.Sprintf("statsview support available (%s)\n", statsview.Address)))
	}

	return nil
}
