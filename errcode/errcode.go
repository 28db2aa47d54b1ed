package errcode

// Code is a stable, report-facing failure identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Harness outcomes
	CheckFailed   Code = "check_failed" // a recorded check did not hold
	Panic         Code = "panic"        // test body panicked with a non-error value
	PanicError    Code = "panic_error"  // test body panicked with an error value
	FixtureError  Code = "fixture"      // fixture setup/teardown raised
	DuplicateTest Code = "duplicate_test"

	// Profile/config
	InvalidProfile Code = "invalid_profile"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
