// Package testutils holds the assertion helpers shared by the package
// tests. They are thin wrappers around quicktest checkers that keep
// the "pads" convention: trailing strings are joined into the failure
// comment.
package testutils

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func comment(pads []string) qt.Comment {
	return qt.Commentf("%s", strings.Join(pads, ": "))
}

// equality compares comparable values with == (pointers by identity)
// and anything else structurally.
func equality(expected, actual interface{}) qt.Checker {
	if isComparable(expected) && isComparable(actual) {
		return qt.Equals
	}
	return qt.DeepEquals
}

func isComparable(v interface{}) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// AssertMatch is a semantic test assertion for string regex matching.
// The pattern is anchored at both ends. If the pattern is empty we
// match only with an empty string for simplicity.
func AssertMatch(t *testing.T, pattern, value string, pads ...string) {
	t.Helper()
	if pattern == "" {
		AssertEqual(t, pattern, value, pads...)
		return
	}
	qt.Check(t, value, qt.Matches, pattern, comment(pads))
}

// AssertErrorMessage is a semantic test assertion for error "message
// context" equality.
func AssertErrorMessage(t *testing.T, expected string, err error, pads ...string) {
	t.Helper()
	if !qt.Check(t, err, qt.IsNotNil, comment(pads)) {
		return
	}
	qt.Check(t, err.Error(), qt.Equals, expected, comment(pads))
}

// AssertEqual is a semantic test assertion for object equality.
func AssertEqual(t *testing.T, expected interface{}, actual interface{}, pads ...string) {
	t.Helper()
	qt.Check(t, actual, equality(expected, actual), expected, comment(pads))
}

// AssertNotEqual is a semantic test assertion for object inequality.
func AssertNotEqual(t *testing.T, expected interface{}, actual interface{}, pads ...string) {
	t.Helper()
	qt.Check(t, actual, qt.Not(equality(expected, actual)), expected, comment(pads))
}

// AssertNil is a semantic test assertion for nility.
func AssertNil(t *testing.T, object interface{}, pads ...string) {
	t.Helper()
	qt.Check(t, object, qt.IsNil, comment(pads))
}

// AssertNotNil is a semantic test assertion for nility.
func AssertNotNil(t *testing.T, object interface{}, pads ...string) {
	t.Helper()
	qt.Check(t, object, qt.IsNotNil, comment(pads))
}

// AssertTrue is a semantic test assertion for object truthiness.
func AssertTrue(t *testing.T, object bool, pads ...string) {
	t.Helper()
	qt.Check(t, object, qt.IsTrue, comment(pads))
}

// AssertFalse is a semantic test assertion for object truthiness.
func AssertFalse(t *testing.T, object bool, pads ...string) {
	t.Helper()
	qt.Check(t, object, qt.IsFalse, comment(pads))
}

// AssertLinesMatch formats arg, breaks up the result into lines and
// matches each with a regex per.
func AssertLinesMatch(t *testing.T, arg interface{}, format string, expected interface{}) {
	t.Helper()

	got := fmt.Sprintf(format, arg)
	gotLines := strings.Split(got, "\n")

	var wantLines []string
	switch want := expected.(type) {
	case string:
		wantLines = strings.Split(want, "\n")
	case []string:
		wantLines = want
	default:
		t.Fatalf("bad expected value passed: only handles string and []string: %#v", expected)
	}

	if !qt.Check(t, gotLines, qt.HasLen, len(wantLines), qt.Commentf("got: %q", got)) {
		return
	}
	for i, w := range wantLines {
		AssertMatch(t, w, gotLines[i], fmt.Sprintf("line %0d", i+1))
	}
}
