//go:build unix

package pkgerrors

import (
	"syscall"
	"testing"

	"github.com/secureworks/pkgerrors/internal/testutils"
)

func TestPlatformErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		code int
		want string
		ok   bool
	}{
		{name: "ENOENT", code: int(syscall.ENOENT), want: "No such file or directory", ok: true},
		{name: "EACCES", code: int(syscall.EACCES), want: "Permission denied", ok: true},
		{name: "zero", code: 0, ok: false},
		{name: "negative", code: -1, ok: false},
		{name: "out of range", code: 123456, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := platformErrorMessage(tc.code)
			testutils.AssertEqual(t, tc.ok, err == nil)
			testutils.AssertEqual(t, tc.want, msg)
		})
	}
}
