package runtime

import (
	"runtime"
	"strings"
)

// GetFrame returns the runtime frame skip levels up the call stack,
// where 0 is GetFrame itself. The zero frame is returned when the stack
// is shallower than requested.
func GetFrame(skip int) runtime.Frame {
	var pcs [3]uintptr
	frames, _ := callers(skip, pcs[:])
	fr, ok := frames.Next()
	if !ok {
		return runtime.Frame{}
	}
	return fr
}

// Location splits a runtime frame into the triple used for raise-site
// capture: file, line and the short function name.
func Location(fr runtime.Frame) (file string, line int, function string) {
	if fr.PC == 0 && fr.Function == "" {
		return "", 0, ""
	}
	return fr.File, fr.Line, FuncName(fr.Function)
}

// FuncName strips the import path and package qualifier from a fully
// qualified function name:
//
//	github.com/x/y.(*T).Method -> (*T).Method
func FuncName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

//go:noinline
func callers(skip int, pcs []uintptr) (frames *runtime.Frames, n int) {
	n = runtime.Callers(skip+1, pcs)
	frames = runtime.CallersFrames(pcs[:n])
	if _, ok := frames.Next(); !ok {
		return &runtime.Frames{}, 0
	}
	return
}
