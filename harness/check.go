// harness/check.go
package harness

import (
	"fmt"

	"firmbench-go/errcode"

	"golang.org/x/exp/constraints"
)

// failNow is the catchable short-circuit signal raised by FailNow and
// the Require variants. Only the runner recovers it; it never
// terminates the process.
type failNow struct{}

// T is the per-test failure recorder handed to every test body.
// Checks record a failure and let the body continue; the Require
// variants and FailNow short-circuit the body instead. The first
// failure's code and message are what the runner reports.
type T struct {
	name    string
	failed  bool
	code    errcode.Code
	message string
}

// Name returns the registered test name.
func (t *T) Name() string { return t.name }

// Failed reports whether a failure has been recorded.
func (t *T) Failed() bool { return t.failed }

func (t *T) fail(code errcode.Code, msg string) {
	if t.failed {
		return
	}
	t.failed = true
	t.code = code
	t.message = msg
}

// Fail records a failure and continues.
func (t *T) Fail(msg string) { t.fail(errcode.CheckFailed, msg) }

// Failf is Fail with fmt formatting.
func (t *T) Failf(format string, args ...any) {
	t.fail(errcode.CheckFailed, fmt.Sprintf(format, args...))
}

// FailNow records a failure and short-circuits the test body via a
// signal the runner catches. The rest of the suite still runs.
func (t *T) FailNow(msg string) {
	t.Fail(msg)
	panic(failNow{})
}

// ---- boolean checks ----

// True checks cond, recording msg on failure. Returns cond.
func (t *T) True(cond bool, msg string) bool {
	if !cond {
		t.Fail(msg)
	}
	return cond
}

// False checks !cond, recording msg on failure.
func (t *T) False(cond bool, msg string) bool {
	return t.True(!cond, msg)
}

// RequireTrue is True, but short-circuits the body on failure.
func (t *T) RequireTrue(cond bool, msg string) {
	if !cond {
		t.FailNow(msg)
	}
}

// StrEqual checks got == want for strings, recording both on failure.
func (t *T) StrEqual(got, want string, msg string) bool {
	if got == want {
		return true
	}
	t.Failf("%s: got %q, want %q", msg, got, want)
	return false
}

// ---- equality and ordering checks ----
//
// These are package functions because Go methods cannot carry their
// own type parameters.

// Equal checks got == want, recording both values on failure.
func Equal[V comparable](t *T, got, want V, msg string) bool {
	if got == want {
		return true
	}
	t.Failf("%s: got %v, want %v", msg, got, want)
	return false
}

// NotEqual checks got != unwanted.
func NotEqual[V comparable](t *T, got, unwanted V, msg string) bool {
	if got != unwanted {
		return true
	}
	t.Failf("%s: got unwanted value %v", msg, got)
	return false
}

// RequireEqual is Equal, but short-circuits the body on failure.
func RequireEqual[V comparable](t *T, got, want V, msg string) {
	if !Equal(t, got, want, msg) {
		panic(failNow{})
	}
}

// Greater checks a > b.
func Greater[V constraints.Ordered](t *T, a, b V, msg string) bool {
	if a > b {
		return true
	}
	t.Failf("%s: %v is not greater than %v", msg, a, b)
	return false
}

// GreaterEq checks a >= b.
func GreaterEq[V constraints.Ordered](t *T, a, b V, msg string) bool {
	if a >= b {
		return true
	}
	t.Failf("%s: %v is not >= %v", msg, a, b)
	return false
}

// Less checks a < b.
func Less[V constraints.Ordered](t *T, a, b V, msg string) bool {
	if a < b {
		return true
	}
	t.Failf("%s: %v is not less than %v", msg, a, b)
	return false
}

// LessEq checks a <= b.
func LessEq[V constraints.Ordered](t *T, a, b V, msg string) bool {
	if a <= b {
		return true
	}
	t.Failf("%s: %v is not <= %v", msg, a, b)
	return false
}
