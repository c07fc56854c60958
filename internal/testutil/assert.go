// Package testutil holds assertions shared by the package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Every assertion takes an optional trailing message: a format string
// followed by its arguments.

// AssertEqual reports a cmp.Diff of want and got when they differ.
func AssertEqual(t *testing.T, got, want any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs), diff)
	}
}

// AssertNoError stops the test when err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs), err)
	}
}

func AssertError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("%sexpected error, got nil", prefix(msgAndArgs))
	}
}

func AssertTrue(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if !cond {
		t.Errorf("%scondition is false", prefix(msgAndArgs))
	}
}

// prefix renders the message as "msg: ", or "" without one.
func prefix(msgAndArgs []any) string {
	msg := message(msgAndArgs)
	if msg == "" {
		return ""
	}
	return msg + ": "
}

func message(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}
