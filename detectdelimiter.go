package denovoplot

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// DelimiterName renders a delimiter for log and error messages.
func DelimiterName(delim rune) string {
	switch delim {
	case '\t':
		return "tab"
	case ',':
		return "comma"
	case ' ':
		return "space"
	case ';':
		return "semicolon"
	case '|':
		return "pipe"
	}
	return string(delim)
}
