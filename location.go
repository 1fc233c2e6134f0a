package pkgerrors

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// SourceLocation records where an error was raised: the file, the line
// and the (short) function name. It is a plain value and is never
// modified after capture.
//
// SourceLocation implements fmt.Formatter with the following verbs:
//
//	"%s"  – the base name of the file and the line number
//	"%q"  – the same as `%s` but wrapped in `"` delimiters
//	"%d"  – the line number
//	"%n"  – the function name
//	"%v"  – the full path of the file and the line number
//	"%+v" – a function name on one line, and a full file name and line
//	        number on a second, tab indented line
//
// Marshaling as JSON returns an object:
//
//	{"function":"openConfig","file":"/src/conf.go","line":10}
type SourceLocation struct {
	File     string
	Line     uint
	Function string
}

var _ interface { // Assert interface implementation.
	fmt.Formatter
	json.Marshaler
} = SourceLocation{}

// NewSourceLocation returns a synthetic SourceLocation. This is useful
// when the raise site is known by other means, or to write clear tests.
func NewSourceLocation(file string, line uint, function string) SourceLocation {
	return SourceLocation{File: file, Line: line, Function: function}
}

// IsZero reports whether the location carries no information at all.
func (l SourceLocation) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Function == ""
}

// String returns "<file>:<line>: <function>", the prefix used when an
// assertion error is described.
func (l SourceLocation) String() string {
	return l.File + ":" + strconv.FormatUint(uint64(l.Line), 10) + ": " + l.Function
}

func (l SourceLocation) Format(s fmt.State, verb rune) {
	file := l.File
	if file == "" {
		file = "unknown"
	}
	appendLine := func() {
		if l.Line > 0 {
			io.WriteString(s, ":")
			io.WriteString(s, strconv.FormatUint(uint64(l.Line), 10))
		}
	}

	switch verb {
	case 's':
		io.WriteString(s, filepath.Base(file))
		appendLine()
	case 'q':
		io.WriteString(s, `"`)
		io.WriteString(s, filepath.Base(file))
		appendLine()
		io.WriteString(s, `"`)
	case 'd':
		io.WriteString(s, strconv.FormatUint(uint64(l.Line), 10))
	case 'n':
		io.WriteString(s, l.Function)
	case 'v':
		switch {
		case s.Flag('+'):
			prefix := ""
			if width, ok := s.Width(); ok {
				prefix = strings.Repeat(" ", width)
			}
			io.WriteString(s, prefix)
			io.WriteString(s, l.Function)
			io.WriteString(s, "\n"+prefix+"\t")
			io.WriteString(s, file)
			appendLine()
		case s.Flag('#'):
			fmt.Fprintf(s, "pkgerrors.SourceLocation{File:%q, Line:%d, Function:%q}", l.File, l.Line, l.Function)
		default:
			io.WriteString(s, file)
			appendLine()
		}
	}
}

// MarshalJSON encodes the location as an object with "function",
// "file" and "line" keys.
func (l SourceLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Function string `json:"function"`
		File     string `json:"file"`
		Line     uint   `json:"line"`
	}{l.Function, l.File, l.Line})
}
