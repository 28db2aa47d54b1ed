// stubs/console/console.go
package console

import (
	"strconv"
	"strings"

	"firmbench-go/x/strbuf"
)

// Console is a stand-in for the platform's serial console. Everything
// "printed" accumulates in an output buffer and is recorded per call;
// nothing is transmitted anywhere. Every operation succeeds.
type Console struct {
	// Recorded values, append-only until Reset.
	Prints   []string
	Printlns []string

	// Counters and last-configured state.
	BeginCalls   int
	PrintCalls   int
	PrintlnCalls int
	Baud         int

	out strings.Builder
}

// New returns an empty console.
func New() *Console { return &Console{} }

// Begin records the configured baud rate.
func (c *Console) Begin(baud int) {
	c.Baud = baud
	c.BeginCalls++
}

// Print appends s to the output without a trailing line break.
func (c *Console) Print(s string) {
	c.Prints = append(c.Prints, s)
	c.out.WriteString(s)
	c.PrintCalls++
}

// PrintInt prints the decimal form of n.
func (c *Console) PrintInt(n int) { c.Print(strconv.Itoa(n)) }

// PrintS prints a string value. A nil value prints nothing but is
// still recorded and counted.
func (c *Console) PrintS(s *strbuf.S) {
	if s == nil {
		c.Print("")
		return
	}
	c.Print(s.String())
}

// Println is Print with a trailing line break.
func (c *Console) Println(s string) {
	c.Printlns = append(c.Printlns, s)
	c.out.WriteString(s)
	c.out.WriteByte('\n')
	c.PrintlnCalls++
}

// PrintlnInt prints the decimal form of n with a trailing line break.
func (c *Console) PrintlnInt(n int) { c.Println(strconv.Itoa(n)) }

// PrintlnS prints a string value with a trailing line break.
func (c *Console) PrintlnS(s *strbuf.S) {
	if s == nil {
		c.Println("")
		return
	}
	c.Println(s.String())
}

// Output returns everything printed so far.
func (c *Console) Output() string { return c.out.String() }

// Reset clears the accumulator, all records, all counters, and the
// last-configured baud rate.
func (c *Console) Reset() {
	c.Prints = nil
	c.Printlns = nil
	c.BeginCalls = 0
	c.PrintCalls = 0
	c.PrintlnCalls = 0
	c.Baud = 0
	c.out.Reset()
}
