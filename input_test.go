package denovoplot

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"
)

const exampleTSV = "id\tA\tB\n1\t3\t4\n2\t5\t6\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadInputPlain(t *testing.T) {
	path := writeFile(t, "plain.tsv", []byte(exampleTSV))

	got, err := ReadInput(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != exampleTSV {
		t.Errorf("got %q, want %q", got, exampleTSV)
	}
}

func TestReadInputGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(exampleTSV)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "compressed.tsv.gz", buf.Bytes())

	got, err := ReadInput(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != exampleTSV {
		t.Errorf("got %q, want %q", got, exampleTSV)
	}
}

func TestReadInputMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.tsv")

	_, err := ReadInput(context.Background(), path, nil)
	var fae *FileAccessError
	if !errors.As(err, &fae) {
		t.Fatalf("got %v (%T), want *FileAccessError", err, err)
	}
	if fae.Path != path {
		t.Errorf("got path %q, want %q", fae.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the underlying error to be os.ErrNotExist, got %v", fae.Err)
	}
}

func TestDetectDataType(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  DataType
	}{
		{"empty", nil, DataTypeNoCompression},
		{"short", []byte("a\t"), DataTypeNoCompression},
		{"text", []byte(exampleTSV), DataTypeNoCompression},
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00}, DataTypeGzip},
		{"bzip2", []byte("BZh91AY"), DataTypeBZip2},
		{"zip", []byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00}, DataTypeZip},
		{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, DataTypeXZ},
	}

	for _, c := range cases {
		got, err := DetectDataType(bytes.NewReader(c.input))
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestDetermineDelimiterComma(t *testing.T) {
	got := DetermineDelimiter(strings.NewReader(strings.Repeat("p01,3,1\n", 12)))
	if got != ',' {
		t.Errorf("got %q (%s), want comma", got, DelimiterName(got))
	}
}

func TestExpandHome(t *testing.T) {
	if got := ExpandHome("/abs/path.tsv"); got != "/abs/path.tsv" {
		t.Errorf("absolute path changed to %q", got)
	}
	if got := ExpandHome("rel/~/path.tsv"); got != "rel/~/path.tsv" {
		t.Errorf("relative path changed to %q", got)
	}

	usr, err := user.Current()
	if err != nil {
		t.Skip("no current user:", err)
	}
	if got, want := ExpandHome("~/x.tsv"), filepath.Join(usr.HomeDir, "x.tsv"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadInputUnixCompress(t *testing.T) {
	path := writeFile(t, "counts.tsv.Z", []byte{0x1f, 0x9d, 0x90, 0x69, 0x64})

	_, err := ReadInput(context.Background(), path, nil)
	var fae *FileAccessError
	if !errors.As(err, &fae) {
		t.Fatalf("expected a *FileAccessError, got %v", err)
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("expected the error to say the format is not supported, got %v", err)
	}
}
