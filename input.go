package denovoplot

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
)

// ReadInput opens path (local or gs://), transparently decompresses it and
// returns its full contents. Any failure is a *FileAccessError.
//
// Inputs are small summary tables, so they are held in memory; this lets the
// delimiter be sniffed without decompressing the stream twice.
func ReadInput(ctx context.Context, path string, client *storage.Client) ([]byte, error) {
	f, err := OpenInput(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, _, err := MaybeDecompress(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return b, nil
}
