// stubs/board/board.go
package board

import "firmbench-go/x/timex"

// Logic levels and pin modes, matching the platform API's integers.
const (
	Low  = 0
	High = 1

	Input       = 0
	Output      = 1
	InputPullup = 2
)

// WriteCall records one digital write.
type WriteCall struct {
	Pin   int
	Level int
}

// ModeCall records one pin-mode configuration.
type ModeCall struct {
	Pin  int
	Mode int
}

// Board is a stand-in for the platform's digital I/O and timing API.
// It records every call for post-hoc inspection and never touches
// hardware or real time. Construct one per test; no state is shared
// between instances.
type Board struct {
	// Call records, append-only until Reset.
	Writes []WriteCall
	Modes  []ModeCall
	Delays []uint32 // requested milliseconds, never actually slept

	levels map[int]int
	clock  *timex.Clock
}

// New returns an empty board with its elapsed-time origin at now.
func New() *Board {
	return &Board{
		levels: make(map[int]int),
		clock:  timex.NewClock(),
	}
}

// PinMode records a mode configuration. It does not change pin state.
func (b *Board) PinMode(pin, mode int) {
	b.Modes = append(b.Modes, ModeCall{Pin: pin, Mode: mode})
}

// DigitalWrite records the (pin, level) pair and updates the pin table.
func (b *Board) DigitalWrite(pin, level int) {
	b.Writes = append(b.Writes, WriteCall{Pin: pin, Level: level})
	b.levels[pin] = level
}

// DigitalRead returns the most recently written level for pin, or Low
// when the pin was never written.
func (b *Board) DigitalRead(pin int) int {
	return b.levels[pin]
}

// Delay records a delay request of ms milliseconds. Time is never
// actually consumed.
func (b *Board) Delay(ms uint32) {
	b.Delays = append(b.Delays, ms)
}

// Millis returns monotonic milliseconds since construction or the
// last Reset.
func (b *Board) Millis() int64 { return b.clock.Elapsed() }

// Reset clears all call records and pin state and restarts the
// elapsed-time origin.
func (b *Board) Reset() {
	b.Writes = nil
	b.Modes = nil
	b.Delays = nil
	b.levels = make(map[int]int)
	b.clock.Restart()
}
