package pkgerrors

import "github.com/secureworks/pkgerrors/internal/runtime"

// Here returns the SourceLocation of its caller.
func Here() SourceLocation {
	return locationAt(3)
}

// CallerAt returns a SourceLocation that describes a frame on the
// caller's stack. The argument skipCallers is the number of frames to
// skip over: CallerAt(0) is equivalent to Here().
func CallerAt(skipCallers int) SourceLocation {
	return locationAt(skipCallers + 3)
}

// locationAt translates a runtime frame returned from the internal
// runtime utilities into a SourceLocation.
//
//go:noinline
func locationAt(skipCallers int) SourceLocation {
	file, line, function := runtime.Location(runtime.GetFrame(skipCallers))
	if line < 0 {
		line = 0
	}
	return SourceLocation{File: file, Line: uint(line), Function: function}
}
