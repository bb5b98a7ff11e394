package denovoplot

import "fmt"

// FileAccessError reports an input that is missing or cannot be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// FormatError reports an input that was read but does not have the expected
// layout: wrong delimiter, missing header, wrong column count or a value that
// is not a number. Line is 1-based and 0 when the problem is not tied to a
// line.
type FormatError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	where := e.Path
	if where == "" {
		where = "input"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }
