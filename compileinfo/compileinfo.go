// Package compileinfo reports which build of denovoplot is running, from the
// information the Go toolchain embeds in the binary.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

const unknown = "unknown"

type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " (with uncommitted changes)"
	}

	return fmt.Sprintf("%s %s, %s, commit %s from %s%s", orUnknown(c.Package), orUnknown(c.Version), orUnknown(c.GoVersion), orUnknown(c.Commit), orUnknown(c.CommitTime), mod)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// Get reads the build information of the running binary. Fields the binary
// does not carry, such as the commit of a `go run` build, are left empty.
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}
	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
		Version:   z.Main.Version,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Fprint writes one line describing the build.
func Fprint(w io.Writer) error {
	_, err := fmt.Fprintln(w, Get())
	return err
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
