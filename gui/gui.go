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

package gui

// GUI defines the operations that can be performed on the visual interface.
type GUI interface {
	// SetFeature is used to set a gui attribute. The function is safe to
	// call from any goroutine: the work is carried out on the gui's own
	// thread and SetFeature() does not return until it has been done.
	SetFeature(request FeatureReq, args ...interface{}) error
}

// Sentinal error returned if gui does not support the requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
