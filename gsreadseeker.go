package denovoplot

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ReadSeekCloser is satisfied by *os.File and by GSReadSeekCloser, so that
// local and Google Storage inputs can be sniffed and rewound the same way.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Decorates a Google Storage object handle with io.Reader, io.Seeker and
// io.Closer. Derived from
// https://github.com/googleapis/google-cloud-go/issues/1124#issuecomment-419070541
type GSReadSeekCloser struct {
	*storage.ObjectHandle
	Context context.Context
	r       *storage.Reader
	offset  int64 // initial offset
	pos     int64 // bytes read since the last seek
}

func (s *GSReadSeekCloser) Read(buf []byte) (int, error) {
	var err error
	if s.r == nil {
		// The -1 length reads through to the end of the object.
		s.r, err = s.NewRangeReader(s.Context, s.offset, -1)
		if err != nil {
			return 0, err
		}
	}
	n, err := s.r.Read(buf)
	s.pos += int64(n)

	return n, err
}

// Seek only supports rewinding to the start or re-reading from the current
// offset. Seeking is not actually possible on an object, so the open range
// reader is dropped and a new one is made on the next Read.
func (s *GSReadSeekCloser) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + s.pos + offset
	default:
		return 0, fmt.Errorf("io.Seeker 'whence' value %d is not implemented", whence)
	}

	if s.r != nil {
		s.r.Close()
		s.r = nil
	}

	s.offset = newOffset
	s.pos = 0

	return s.offset, nil
}

// Close releases the open range reader, if any.
func (s *GSReadSeekCloser) Close() error {
	if s.r == nil {
		return nil
	}
	err := s.r.Close()
	s.r = nil
	return err
}

// OpenInput opens path for reading. If client is non-nil and path is a
// gs://bucket/object URL, the object is opened through Google Storage;
// otherwise path is treated as a local file (with ~ expanded).
func OpenInput(ctx context.Context, path string, client *storage.Client) (ReadSeekCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 || pathParts[1] == "" {
			return nil, &FileAccessError{Path: path, Err: fmt.Errorf("expected gs://bucket/object, got %d path parts: %v", len(pathParts), pathParts)}
		}

		handle := client.Bucket(pathParts[0]).Object(pathParts[1])

		// Make a hard call so that a missing object fails here rather than
		// on the first read.
		if _, err := handle.Attrs(ctx); err != nil {
			return nil, &FileAccessError{Path: path, Err: pfx.Err(err)}
		}

		return &GSReadSeekCloser{ObjectHandle: handle, Context: ctx}, nil
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return f, nil
}
