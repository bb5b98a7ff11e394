// Package display reports whether a desktop window can be opened. It does not
// import any GUI toolkit, so headless tools and tests can use it freely.
package display

import (
	"os"
	"runtime"
)

// Available reports whether a window can be opened. On X11 and Wayland
// systems that means a display server is advertised in the environment.
func Available() bool {
	return available(runtime.GOOS, os.Getenv)
}

func available(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows", "ios", "android":
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
