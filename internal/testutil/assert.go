// Package testutil provides shared test utilities for the chessmoves-go project.
// The assertions take testing.TB so benchmarks can use them too.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(tb testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	tb.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(tb, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(tb testing.TB, err error, msgAndArgs ...interface{}) {
	tb.Helper()
	if err != nil {
		report(tb, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(tb testing.TB, err error, msgAndArgs ...interface{}) {
	tb.Helper()
	if err == nil {
		report(tb, "expected error but got nil", msgAndArgs...)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(tb testing.TB, err, target error, msgAndArgs ...interface{}) {
	tb.Helper()
	if !errors.Is(err, target) {
		report(tb, fmt.Sprintf("error %v does not match %v", err, target), msgAndArgs...)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(tb testing.TB, got, substr string, msgAndArgs ...interface{}) {
	tb.Helper()
	if !strings.Contains(got, substr) {
		report(tb, fmt.Sprintf("%q does not contain %q", got, substr), msgAndArgs...)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(tb testing.TB, got, substr string, msgAndArgs ...interface{}) {
	tb.Helper()
	if strings.Contains(got, substr) {
		report(tb, fmt.Sprintf("%q should not contain %q", got, substr), msgAndArgs...)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(tb testing.TB, condition bool, msgAndArgs ...interface{}) {
	tb.Helper()
	if !condition {
		report(tb, "expected true but got false", msgAndArgs...)
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(tb testing.TB, condition bool, msgAndArgs ...interface{}) {
	tb.Helper()
	if condition {
		report(tb, "expected false but got true", msgAndArgs...)
	}
}

// report prefixes the failure with the optional caller message.
func report(tb testing.TB, failure string, msgAndArgs ...interface{}) {
	tb.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		tb.Errorf("%s: %s", msg, failure)
		return
	}
	tb.Error(failure)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
