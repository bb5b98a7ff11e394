package compileinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	z := &debug.BuildInfo{
		GoVersion: "go1.21.0",
		Path:      "github.com/carbocation/denovoplot/cmd/denovoplot",
		Main:      debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2023-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	got := fromBuildInfo(z)
	assert.Equal(t, CompileInfo{
		Package:    "github.com/carbocation/denovoplot/cmd/denovoplot",
		Version:    "(devel)",
		GoVersion:  "go1.21.0",
		Commit:     "abc123",
		CommitTime: "2023-01-02T03:04:05Z",
		Modified:   true,
	}, got)

	assert.Equal(t, "github.com/carbocation/denovoplot/cmd/denovoplot (devel), go1.21.0, commit abc123 from 2023-01-02T03:04:05Z (with uncommitted changes)", got.String())
}

func TestStringFillsBlanks(t *testing.T) {
	assert.Equal(t, "unknown unknown, unknown, commit unknown from unknown", CompileInfo{}.String())
}
