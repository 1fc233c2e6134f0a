package runtime

import (
	"runtime"
	"testing"

	"github.com/secureworks/pkgerrors/internal/testutils"
)

type callerStruct struct{}

//go:noinline
func (c callerStruct) PtrFrameCaller(skip int) runtime.Frame {
	return FrameCaller(skip)
}

//go:noinline
func FrameCaller(skip int) runtime.Frame {
	return GetFrame(skip)
}

func TestGetFrame(t *testing.T) {
	var cs callerStruct
	cases := []struct {
		name  string
		frame runtime.Frame
		fn    string
		file  string
	}{
		{
			name:  "skip:0",
			frame: cs.PtrFrameCaller(0),
			fn:    `.+/runtime\.GetFrame`,
			file:  `.+/runtime\.go`,
		},
		{
			name:  "skip:1",
			frame: cs.PtrFrameCaller(1),
			fn:    `.+/runtime\.FrameCaller`,
			file:  `.+/runtime_test\.go`,
		},
		{
			name:  "skip:2",
			frame: cs.PtrFrameCaller(2),
			fn:    `.+/runtime\.callerStruct\.PtrFrameCaller`,
			file:  `.+/runtime_test\.go`,
		},
		{
			name:  "skip:3",
			frame: cs.PtrFrameCaller(3),
			fn:    `.+/runtime\.TestGetFrame`,
			file:  `.+/runtime_test\.go`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutils.AssertMatch(t, tc.fn, tc.frame.Function)
			testutils.AssertMatch(t, tc.file, tc.frame.File)
			testutils.AssertTrue(t, tc.frame.Line > 0, "line")
		})
	}

	t.Run("too deep", func(t *testing.T) {
		fr := GetFrame(1 << 10)
		testutils.AssertEqual(t, uintptr(0), fr.PC)
	})
}

func TestLocation(t *testing.T) {
	t.Run("captured", func(t *testing.T) {
		file, line, fn := Location(FrameCaller(1))
		testutils.AssertMatch(t, `.+/runtime_test\.go`, file)
		testutils.AssertTrue(t, line > 0, "line")
		testutils.AssertEqual(t, "FrameCaller", fn)
	})

	t.Run("zero frame", func(t *testing.T) {
		file, line, fn := Location(runtime.Frame{})
		testutils.AssertEqual(t, "", file)
		testutils.AssertEqual(t, 0, line)
		testutils.AssertEqual(t, "", fn)
	})
}

func TestFuncName(t *testing.T) {
	cases := map[string]string{
		"github.com/secureworks/pkgerrors.Here":                "Here",
		"github.com/secureworks/pkgerrors.(*Error).Copy":       "(*Error).Copy",
		"github.com/secureworks/pkgerrors.TestAssert.func1":    "TestAssert.func1",
		"main.main":                                            "main",
		"github.com/secureworks/pkgerrors/localize.ConfigFrom": "ConfigFrom",
	}
	for in, want := range cases {
		testutils.AssertEqual(t, want, FuncName(in), in)
	}
}
