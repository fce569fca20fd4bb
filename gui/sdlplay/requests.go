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

package sdlplay

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui"
)

// featureRequest is used to pass GUI requests from the emulation goroutine
// to the main goroutine, where they are serviced as part of Service().
type featureRequest struct {
	request gui.FeatureReq
	args    []interface{}
	report  chan error
}

// SetFeature implements the gui.GUI interface. it is safe to call from
// any goroutine and does not return until the request has been serviced.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	report := make(chan error)
	scr.featureReq <- featureRequest{request: request, args: args, report: report}
	return <-report
}

// serviceFeatureReq works through a single feature request. the
// corresponding SetFeature() call is waiting on the report channel so
// every path through this function must send exactly one value.
func (scr *SdlPlay) serviceFeatureReq(req featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			req.report <- curated.Errorf("sdlplay: %v", r)
		}
	}()

	var err error

	switch req.request {
	case gui.ReqSetEventChan:
		scr.events = req.args[0].(chan gui.Event)

	case gui.ReqSetScale:
		scr.scale = int32(req.args[0].(int))
		err = scr.setWindow()

	case gui.ReqSetGridView:
		scr.grid = req.args[0].(bool)
		err = scr.setWindow()

	case gui.ReqSetVisibility:
		if req.args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqRender:
		err = scr.render(req.args[0].(*gui.Frames))

	case gui.ReqScreenshot:
		err = scr.screenshot()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, req.request)
	}

	req.report <- err
}
