package denovoplot

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "compress (.Z)"
	case DataTypeBZip2:
		return "bzip2"
	}
	return "invalid"
}

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known data types. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
//
// Inputs shorter than the longest signature are only matched against the
// signatures that fit. An empty input is reported as uncompressed.
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return DataTypeInvalid, err
	}
	buff = buff[:n]

Outer:
	for dt, sig := range byteCodeSigs {
		if len(sig) > len(buff) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompress sniffs rs, rewinds it, and returns a reader that yields the
// decompressed stream. Uncompressed input is returned as-is.
func MaybeDecompress(rs io.ReadSeeker) (io.ReadCloser, DataType, error) {
	dt, err := DetectDataType(rs)
	if err != nil {
		return nil, dt, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, dt, err
	}

	var out io.ReadCloser
	switch dt {
	case DataTypeGzip:
		out, err = gzip.NewReader(rs)
	case DataTypeZip:
		// Only the first entry of an archive is read.
		zr := zipstream.NewReader(rs)
		if _, err = zr.Next(); err == nil {
			out = &readCloserFaker{zr}
		}
	case DataTypeBZip2:
		out = &readCloserFaker{bzip2.NewReader(rs)}
	case DataTypeXZ:
		var reader *xz.Reader
		reader, err = xz.NewReader(rs, 0)
		out = &readCloserFaker{reader}
	case DataTypeZ:
		// LZW as written by Unix compress differs from compress/lzw.
		err = fmt.Errorf("%s input is not supported; decompress it first", dt)
	default:
		out = io.NopCloser(rs)
	}
	if err != nil {
		return nil, dt, err
	}

	return out, dt, nil
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
