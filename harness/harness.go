// harness/harness.go
package harness

import (
	"fmt"
	"io"
	"os"

	"firmbench-go/errcode"
	"firmbench-go/x/timex"
)

// Func is a test body. It reports through t and must not be nil.
type Func func(t *T)

// Fixture runs shared setup before and teardown after a test body.
type Fixture interface {
	SetUp()
	TearDown()
}

// Report is the outcome of one executed test.
type Report struct {
	Name      string
	OK        bool
	Code      errcode.Code
	Message   string // first failure message, or panic text
	ElapsedMs int64
}

type record struct {
	name string
	fn   Func
	fx   Fixture // nil for plain tests
}

// Runner collects named tests and executes them once, in registration
// order, reporting pass/fail per test and a total failure count.
// Tests run strictly sequentially; a failing or panicking test never
// stops the rest of the run.
type Runner struct {
	tests   []record
	names   map[string]struct{}
	out     io.Writer
	verbose bool

	ran      bool
	failures int
	reports  []Report
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput directs the pass/fail lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithVerbose additionally prints elapsed milliseconds per test.
func WithVerbose(v bool) Option {
	return func(r *Runner) { r.verbose = v }
}

// New returns an empty runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		names: make(map[string]struct{}),
		out:   os.Stdout,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register adds a named test. Tests execute in registration order.
// Duplicate names panic: two tests with one name means a bad suite,
// not a runtime condition to tolerate.
func (r *Runner) Register(name string, fn Func) {
	r.register(record{name: name, fn: fn})
}

// RegisterFixture adds a named test wrapped in fx: SetUp runs before
// the body and TearDown always runs after it, even when the body
// fails or panics.
func (r *Runner) RegisterFixture(name string, fx Fixture, fn Func) {
	r.register(record{name: name, fn: fn, fx: fx})
}

func (r *Runner) register(rec record) {
	if rec.fn == nil {
		panic("harness: nil test func for " + rec.name)
	}
	if _, dup := r.names[rec.name]; dup {
		panic(errcode.DuplicateTest.Error() + ": " + rec.name)
	}
	r.names[rec.name] = struct{}{}
	r.tests = append(r.tests, rec)
}

// Len returns the number of registered tests.
func (r *Runner) Len() int { return len(r.tests) }

// Reports returns the per-test outcomes of the completed run, in
// execution order. Empty before Run.
func (r *Runner) Reports() []Report { return r.reports }

// Run executes every registered test once, in registration order, and
// returns the total failure count (0 means success; the value is
// intended as a process exit code). A second call does not re-execute
// anything and returns the recorded tally.
func (r *Runner) Run() int {
	if r.ran {
		return r.failures
	}
	r.ran = true

	for _, rec := range r.tests {
		rep := r.runOne(rec)
		r.reports = append(r.reports, rep)
		if rep.OK {
			if r.verbose {
				fmt.Fprintf(r.out, "[ PASS ] %s (%dms)\n", rep.Name, rep.ElapsedMs)
			} else {
				fmt.Fprintf(r.out, "[ PASS ] %s\n", rep.Name)
			}
			continue
		}
		r.failures++
		fmt.Fprintf(r.out, "[ FAIL ] %s: %s\n", rep.Name, rep.Message)
	}
	return r.failures
}

// runOne executes a single test with panic containment. A panic
// carrying an error surfaces its message verbatim; any other panic
// value gets a generic message. With a fixture, TearDown runs even
// when SetUp succeeded and the body failed or panicked.
func (r *Runner) runOne(rec record) Report {
	t := &T{name: rec.name}
	clock := timex.NewClock()

	if rec.fx == nil {
		contain(t, "", rec.fn)
	} else if contain(t, "setup: ", func(*T) { rec.fx.SetUp() }) {
		contain(t, "", rec.fn)
		contain(t, "teardown: ", func(*T) { rec.fx.TearDown() })
	}

	rep := Report{
		Name:      rec.name,
		OK:        !t.failed,
		Code:      errcode.OK,
		ElapsedMs: clock.Elapsed(),
	}
	if t.failed {
		rep.Code = t.code
		rep.Message = t.message
	}
	return rep
}

// contain invokes fn with panic containment, recording any panic as a
// failure on t. It reports whether fn completed; the catchable
// short-circuit raised by FailNow counts as completion. A non-empty
// where marks fn as fixture code, which fails with the fixture code
// and a "setup:"/"teardown:" prefix.
func contain(t *T, where string, fn Func) (completed bool) {
	defer func() {
		switch v := recover().(type) {
		case nil:
		case failNow:
			completed = true
		case error:
			t.fail(panicCode(where, errorCode(v)), where+v.Error())
		default:
			t.fail(panicCode(where, errcode.Panic), fmt.Sprintf("%sunexpected panic: %v", where, v))
		}
	}()
	fn(t)
	return true
}

func panicCode(where string, c errcode.Code) errcode.Code {
	if where != "" {
		return errcode.FixtureError
	}
	return c
}

// errorCode keeps a stable code carried by the raised error, falling
// back to the generic panic-with-error classification.
func errorCode(err error) errcode.Code {
	if c := errcode.Of(err); c != errcode.Error {
		return c
	}
	return errcode.PanicError
}
