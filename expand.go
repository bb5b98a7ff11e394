package denovoplot

import (
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ to the current user's home directory. If the
// user cannot be determined, path is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		return path
	}

	if path == "~" {
		return usr.HomeDir
	}

	return filepath.Join(usr.HomeDir, path[2:])
}
