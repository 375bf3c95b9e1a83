package buffer

import (
	"strings"
)

// MarkupBuffer accumulates output markup as a list of written parts.
type MarkupBuffer struct {
	parts []string
	size  int
}

// New creates a new MarkupBuffer.
func New() *MarkupBuffer {
	return &MarkupBuffer{
		parts: make([]string, 0, 16),
	}
}

// Write appends markup to the buffer. Empty strings are dropped.
func (mb *MarkupBuffer) Write(markup string) {
	if markup == "" {
		return
	}
	mb.parts = append(mb.parts, markup)
	mb.size += len(markup)
}

// TrailingCount counts how many times suffix repeats at the end of the buffer.
// Parts are compared whole, so suffix must have been written as its own part.
func (mb *MarkupBuffer) TrailingCount(suffix string) int {
	count := 0
	for i := len(mb.parts) - 1; i >= 0; i-- {
		if mb.parts[i] != suffix {
			break
		}
		count++
	}
	return count
}

// TrimTrailing removes every trailing part equal to suffix and returns how
// many were removed.
func (mb *MarkupBuffer) TrimTrailing(suffix string) int {
	n := mb.TrailingCount(suffix)
	for i := 0; i < n; i++ {
		mb.PopLast()
	}
	return n
}

// PopLast removes and returns the last written part.
func (mb *MarkupBuffer) PopLast() string {
	if len(mb.parts) == 0 {
		return ""
	}
	last := mb.parts[len(mb.parts)-1]
	mb.parts = mb.parts[:len(mb.parts)-1]
	mb.size -= len(last)
	return last
}

// String returns the accumulated markup.
func (mb *MarkupBuffer) String() string {
	if len(mb.parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(mb.size)
	for _, p := range mb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Reset clears the buffer.
func (mb *MarkupBuffer) Reset() {
	mb.parts = mb.parts[:0]
	mb.size = 0
}
