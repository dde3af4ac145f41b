// seehuhn.de/go/freehand - pressure-sensitive freehand strokes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package freehand

import "fmt"

// ValidationError reports an option or input value that was rejected before
// any geometry was computed.
type ValidationError struct {
	// Field names the offending option (for example "size" or "start.taper")
	// or input element (for example "points[3]").
	Field string

	// Reason describes what is wrong with the value.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("freehand: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
