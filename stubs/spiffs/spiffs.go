// stubs/spiffs/spiffs.go
package spiffs

import "firmbench-go/x/strbuf"

// Defaults for newly opened files.
const (
	DefaultAvailableCount = 10
	DefaultDataByte       = 'a'
)

// OpenCall records one open request.
type OpenCall struct {
	Path string
	Mode string
}

// FS is a stand-in for the platform's flash filesystem. There is no
// backing store: Begin and Open always succeed regardless of
// arguments, and opened files serve a bounded amount of canned data.
type FS struct {
	// Call records, append-only until Reset.
	Begins []bool // the format flag of each Begin call
	Opens  []OpenCall

	// Knobs applied to files opened after the change.
	AvailableCount int  // Available() answers true this many times
	DataByte       byte // what Read() returns
}

// New returns a filesystem stand-in with default file knobs.
func New() *FS {
	return &FS{
		AvailableCount: DefaultAvailableCount,
		DataByte:       DefaultDataByte,
	}
}

// Begin records the request and always reports success.
func (f *FS) Begin(format bool) bool {
	f.Begins = append(f.Begins, format)
	return true
}

// Open records the request and returns a valid handle regardless of
// path or mode. Missing files are deliberately not an error here.
func (f *FS) Open(path, mode string) *File {
	f.Opens = append(f.Opens, OpenCall{Path: path, Mode: mode})
	return &File{
		remaining: f.AvailableCount,
		data:      f.DataByte,
	}
}

// Reset clears all call records and restores the default file knobs.
// Files opened before Reset keep their own counters.
func (f *FS) Reset() {
	f.Begins = nil
	f.Opens = nil
	f.AvailableCount = DefaultAvailableCount
	f.DataByte = DefaultDataByte
}

// File is a handle produced by Open. Each handle has its own bounded
// availability counter, so independently opened files exhaust
// independently.
type File struct {
	Closed    bool
	Written   []string // text handed to Print, in order
	remaining int
	data      byte
}

// Valid always reports true; Open never fails.
func (h *File) Valid() bool { return true }

// Available reports whether more data can be read. It answers true
// for a bounded number of calls per handle, then false, simulating a
// finite stream.
func (h *File) Available() bool {
	if h.remaining <= 0 {
		return false
	}
	h.remaining--
	return true
}

// Read returns the canned data byte.
func (h *File) Read() byte { return h.data }

// Close records that the handle was closed.
func (h *File) Close() { h.Closed = true }

// ReadStringUntil accumulates bytes into a string value until the
// terminator is read or the data is exhausted. The terminator is
// consumed but not included.
func (h *File) ReadStringUntil(term byte) *strbuf.S {
	out := strbuf.New("")
	for h.Available() {
		ch := h.Read()
		if ch == term {
			break
		}
		out.AppendByte(ch)
	}
	return out
}

// Print records the string value's text and reports how many bytes
// would have been written. Nothing persists.
func (h *File) Print(s *strbuf.S) int {
	if s == nil {
		return 0
	}
	h.Written = append(h.Written, s.String())
	return s.Len()
}
