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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/gophernes/curated"
)

// cpuProfile runs the supplied function, optionally writing a CPU profile
// of it to outFile.
func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

// memProfile optionally writes a heap profile of the program as it stands
// to outFile.
func memProfile(profile bool, outFile string) error {
	if !profile {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	// run garbage collection so that the profile reflects live allocations
	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
