package services

import (
	"context"
	"io"
	"unicode/utf8"
)

// runeEncoder turns a rune producer into UTF-8 bytes across Read calls.
// A rune that does not fit in the caller's buffer stays pending.
type runeEncoder struct {
	pending [utf8.UTFMax]byte
	off, n  int
}

// read fills p from next until p is full or next is exhausted.
// The boolean is false once next has nothing more to give.
func (e *runeEncoder) read(p []byte, next func() (rune, bool)) (int, bool) {
	written := 0
	for written < len(p) {
		if e.off < e.n {
			c := copy(p[written:], e.pending[e.off:e.n])
			e.off += c
			written += c
			continue
		}
		r, ok := next()
		if !ok {
			return written, false
		}
		e.n = utf8.EncodeRune(e.pending[:], r)
		e.off = 0
	}
	return written, true
}

// runeSize returns the encoded length of r, counting invalid runes
// as the replacement character they encode to.
func runeSize(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
