package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/denovoplot"
)

func TestDefaultOutput(t *testing.T) {
	cases := map[string]string{
		"counts.tsv":                 "counts.png",
		"counts.tsv.gz":              "counts.png",
		"/data/trio/counts.txt.bz2":  "counts.png",
		"gs://bucket/dir/counts.tsv": "counts.png",
		"counts":                     "counts.png",
		"":                           "denovoplot.png",
	}

	for in, want := range cases {
		if got := defaultOutput(in); got != want {
			t.Errorf("defaultOutput(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "counts.tsv")
	if err := os.WriteFile(in, []byte("id\tA\tB\n1\t3\t4\n2\t5\t6\n3\t20\tNA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "counts.png")

	if err := run(context.Background(), config{Input: in, Out: out}); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 700 || img.Bounds().Dy() != 700 {
		t.Errorf("image is %v, want 700x700", img.Bounds())
	}
}

func TestRunFailsBeforeRendering(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "never.png")

	err := run(context.Background(), config{Input: filepath.Join(dir, "missing.tsv"), Out: out})
	var fae *denovoplot.FileAccessError
	if !errors.As(err, &fae) {
		t.Fatalf("expected a FileAccessError, got %v", err)
	}

	in := filepath.Join(dir, "three.tsv")
	if err := os.WriteFile(in, []byte("id\tA\tB\tC\n1\t3\t4\t5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = run(context.Background(), config{Input: in, Out: out})
	var fe *denovoplot.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a FormatError, got %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("%s was written despite the error", out)
	}
}

func TestRunRendersUnusualTables(t *testing.T) {
	inputs := map[string]string{
		"header-only.tsv":  "id\tA\tB\n",
		"duplicate.tsv":    "id\tA\tA\n1\t3\t4\n2\t5\t6\n",
		"all-missing.tsv":  "id\tA\tB\n1\tNA\tNA\n",
		"out-of-range.tsv": "id\tA\tB\n1\t20\t-3\n",
	}

	for name, body := range inputs {
		dir := t.TempDir()
		in := filepath.Join(dir, name)
		if err := os.WriteFile(in, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		out := filepath.Join(dir, "chart.png")

		if err := run(context.Background(), config{Input: in, Out: out}); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
