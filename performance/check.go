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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
)

// Check is a very rough and ready calculation of the emulator's performance.
// The console is run flat out for the specified duration and the resulting
// frame count compared against what real hardware would have managed.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, duration string) error {
	con := hardware.NewConsole()

	err := con.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// get starting frame number (should be 0)
	startFrame := con.Mem.PPU.FrameNum

	// run for specified period of time
	err = cpuProfile(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed. signals
		// true when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// force a two second leadtime to allow the emulation to settle
		// down and then restart timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check the timer every PerformanceBrake CPU instructions.
		// checking the channel is relatively expensive
		performanceBrake := 0

		return con.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						// measurement period has finished
						return false, nil
					}

					// leadtime has concluded and measurement has begun.
					// record the start frame
					startFrame = con.Mem.PPU.FrameNum
				default:
				}
			}

			return true, nil
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// get ending frame number
	endFrame := con.Mem.PPU.FrameNum

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
