// x/strbuf/strbuf.go
package strbuf

import (
	"strconv"
	"strings"

	"firmbench-go/x/mathx"
	"firmbench-go/x/strx"
)

// NotFound is the sentinel returned by the IndexOf family.
const NotFound = -1

// ToEnd selects "to the end of the string" as a Substring end bound.
const ToEnd = -1

// S is an owned, mutable text buffer with the call shape of the
// embedded platform's string type: appends mutate and chain,
// concatenation allocates, and every index is clamped rather than
// trusted. Out-of-range reads yield a sentinel, never a fault.
type S struct {
	content string
}

// New returns a string value holding text.
func New(text string) *S { return &S{content: text} }

// FromInt returns a string value holding the decimal form of n.
func FromInt(n int) *S { return &S{content: strconv.Itoa(n)} }

// ---- mutating appends (chainable) ----

// Append appends text and returns the receiver.
func (s *S) Append(text string) *S {
	s.content += text
	return s
}

// AppendByte appends a single character and returns the receiver.
func (s *S) AppendByte(ch byte) *S {
	s.content += string(ch)
	return s
}

// AppendS appends the contents of other and returns the receiver.
// A nil other appends nothing.
func (s *S) AppendS(other *S) *S {
	if other != nil {
		s.content += other.content
	}
	return s
}

// ---- non-mutating concatenation ----

// Concat returns a new value holding a's text followed by b's.
// Neither operand is modified; nil operands contribute nothing.
func Concat(a, b *S) *S {
	out := &S{}
	if a != nil {
		out.content = a.content
	}
	if b != nil {
		out.content += b.content
	}
	return out
}

// ConcatStr returns a new value holding lhs followed by rhs's text.
func ConcatStr(lhs string, rhs *S) *S {
	out := &S{content: lhs}
	if rhs != nil {
		out.content += rhs.content
	}
	return out
}

// ---- accessors ----

// String returns the underlying text.
func (s *S) String() string { return s.content }

// Len returns the text length in bytes.
func (s *S) Len() int { return len(s.content) }

// Int parses the leading decimal integer (optional sign, after any
// leading spaces) and returns it, or 0 when nothing parses.
func (s *S) Int() int {
	t := s.content[strx.SkipSpaces(s.content):]
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	j := i
	for j < len(t) && t[j] >= '0' && t[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.Atoi(t[:j])
	if err != nil {
		// Digits overflowed int; mirror the platform's "0 on failure".
		return 0
	}
	return n
}

// Substring returns a new value holding the characters in
// [start, end). Both bounds are clamped into [0, Len]; passing ToEnd
// as end means "to the end of the string". A degenerate range yields
// "".
func (s *S) Substring(start, end int) *S {
	if end == ToEnd {
		end = s.Len()
	}
	start = mathx.Clamp(start, 0, s.Len())
	end = mathx.Clamp(end, 0, s.Len())
	if start >= end {
		return &S{}
	}
	return &S{content: s.content[start:end]}
}

// At returns the byte at index i, or 0 when i is out of range.
func (s *S) At(i int) byte {
	if s.Len() == 0 || !mathx.Between(i, 0, s.Len()-1) {
		return 0
	}
	return s.content[i]
}

// ---- comparison ----

// Equals reports whether the text equals other (case-sensitive).
func (s *S) Equals(other string) bool { return s.content == other }

// EqualsS reports whether the text equals other's text.
// A nil other equals only the empty value.
func (s *S) EqualsS(other *S) bool {
	if other == nil {
		return s.content == ""
	}
	return s.content == other.content
}

// ---- search ----

// IndexOf returns the position of the first occurrence of sub at or
// after from, or NotFound. from is clamped into [0, Len].
func (s *S) IndexOf(sub string, from int) int {
	from = mathx.Clamp(from, 0, s.Len())
	i := strings.Index(s.content[from:], sub)
	if i == NotFound {
		return NotFound
	}
	return from + i
}

// IndexOfByte is IndexOf for a single character.
func (s *S) IndexOfByte(ch byte, from int) int {
	return s.IndexOf(string(ch), from)
}

// IndexOfS is IndexOf for another string value. A nil other matches
// at the (clamped) from position, as the empty substring does.
func (s *S) IndexOfS(other *S, from int) int {
	if other == nil {
		return s.IndexOf("", from)
	}
	return s.IndexOf(other.content, from)
}
