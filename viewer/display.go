// Package viewer shows a rendered chart in a desktop window.
package viewer

import "github.com/carbocation/denovoplot/viewer/display"

// HasDisplay reports whether Show can open a window.
func HasDisplay() bool {
	return display.Available()
}
