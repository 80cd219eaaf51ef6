package stream

import (
	"context"
	"io"
	"unicode/utf8"

	"golang.org/x/time/rate"
)

// RateLimitedWriter forwards whole runes to the underlying writer, at most
// a fixed number per second. Bytes of a rune split across Write calls are
// held until the rune is complete.
type RateLimitedWriter struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
	partial []byte
}

// NewRateLimitedWriter throttles w to runesPerSecond. Waiting stops with
// ctx.Err() once ctx is done.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, runesPerSecond int) *RateLimitedWriter {
	return &RateLimitedWriter{
		ctx:     ctx,
		w:       w,
		limiter: rate.NewLimiter(rate.Limit(runesPerSecond), 1),
		partial: make([]byte, 0, utf8.UTFMax),
	}
}

// Throttle returns w unchanged when runesPerSecond is not positive, and a
// RateLimitedWriter otherwise.
func Throttle(ctx context.Context, w io.Writer, runesPerSecond int) io.Writer {
	if runesPerSecond <= 0 {
		return w
	}
	return NewRateLimitedWriter(ctx, w, runesPerSecond)
}

// Write implements io.Writer. It always reports len(p) on success; the
// tail of an incomplete rune is held for the next call.
func (rw *RateLimitedWriter) Write(p []byte) (int, error) {
	held := len(rw.partial)
	buf := p
	if held > 0 {
		buf = append(append(make([]byte, 0, held+len(p)), rw.partial...), p...)
	}

	done := 0
	for done < len(buf) && utf8.FullRune(buf[done:]) {
		_, size := utf8.DecodeRune(buf[done:])
		if err := rw.emit(buf[done : done+size]); err != nil {
			return max(0, done-held), err
		}
		done += size
	}

	rw.partial = append(rw.partial[:0], buf[done:]...)
	return len(p), nil
}

// Flush writes any held bytes of an incomplete rune.
func (rw *RateLimitedWriter) Flush() error {
	if len(rw.partial) == 0 {
		return nil
	}
	err := rw.emit(rw.partial)
	rw.partial = rw.partial[:0]
	return err
}

func (rw *RateLimitedWriter) emit(b []byte) error {
	if err := rw.limiter.Wait(rw.ctx); err != nil {
		return err
	}
	_, err := rw.w.Write(b)
	return err
}
