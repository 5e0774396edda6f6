package httpframe

import (
	"bufio"
	"io"

	"golang.org/x/sync/semaphore"
)

// Stream is the peekable buffered-IO contract the core depends on. It is
// the only collaborator between the framing core and actual transport: a
// TCP/TLS socket, an in-memory buffer, or anything else implementing
// io.Reader can back it.
type Stream interface {
	// Fill makes a non-blocking attempt to extend the internal buffer from
	// the underlying source and returns the currently buffered slice.
	// Repeated Fill calls that make no progress are observable via the
	// returned slice's length not growing, so callers can detect an
	// exhausted source mid-message.
	Fill() ([]byte, error)

	// Peek returns a view of the next n bytes without consuming them.
	// Fails with ErrBiggerThanCapacity if n exceeds the stream's capacity.
	Peek(n int) ([]byte, error)

	// ReadLineUntil reads bytes up to and including delim ("\r\n" or "\n").
	ReadLineUntil(delim []byte) (string, error)

	// ReadExact reads exactly n bytes or fails.
	ReadExact(n int) ([]byte, error)

	// Consume advances the read cursor by n bytes (already-peeked data).
	Consume(n int)

	// Capacity returns the stream's internal buffer capacity.
	Capacity() int
}

// bufStream is the default Stream implementation: a thin bufio.Reader-backed
// peekable stream exposing fill/peek/capacity on top of a standard
// buffered reader.
type bufStream struct {
	r *bufio.Reader
}

// NewStream wraps r in the default peekable Stream implementation, sized to
// bufferSize (rounded up to bufio's minimum internally).
func NewStream(r io.Reader, bufferSize int) Stream {
	return &bufStream{r: bufio.NewReaderSize(r, bufferSize)}
}

func (s *bufStream) Fill() ([]byte, error) {
	b, err := s.r.Peek(1)
	if err != nil && err != io.EOF && len(b) == 0 {
		// Peek(1) on an empty-but-not-yet-EOF buffer still triggers one
		// underlying Read; return whatever got buffered even on error so
		// callers can observe a zero-progress Fill.
		buffered, _ := s.r.Peek(s.r.Buffered())
		return buffered, err
	}
	buffered, _ := s.r.Peek(s.r.Buffered())
	return buffered, nil
}

func (s *bufStream) Peek(n int) ([]byte, error) {
	if n > s.r.Size() {
		return nil, ErrBiggerThanCapacity
	}
	b, err := s.r.Peek(n)
	if err != nil {
		if err == bufio.ErrBufferFull {
			return nil, ErrBiggerThanCapacity
		}
		return b, err
	}
	return b, nil
}

// ReadLineUntil reads up to and including the next '\n', returning the
// line with its terminator still attached ("\r\n" or a bare "\n"; both are
// accepted on input). Callers strip the terminator themselves
// (trimCRLF/stripLineTerminator) since which one was present can matter to
// the caller (the header parser rejects a lone '\r' not followed by '\n'
// by scanning the returned line for an embedded bare CR before its final
// byte). The delim parameter is ignored: every call reads up to '\n'.
func (s *bufStream) ReadLineUntil(delim []byte) (string, error) {
	return s.r.ReadString('\n')
}

func (s *bufStream) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *bufStream) Consume(n int) {
	s.r.Discard(n) //nolint:errcheck // Discard only errors past what Peek already validated.
}

func (s *bufStream) Capacity() int {
	return s.r.Size()
}

// Guard is the non-blocking exclusive-access primitive that enforces
// "exactly one entity at a time may mutate the underlying buffered
// stream": TryAcquire reports failure on contention instead of blocking.
//
// Built on golang.org/x/sync/semaphore.Weighted(1), which is exactly this
// primitive off the shelf: TryAcquire is documented as non-blocking and
// returns false on contention instead of waiting.
type Guard struct {
	sem *semaphore.Weighted
}

// NewGuard returns a Guard with one unit of capacity: a single owner at a
// time.
func NewGuard() *Guard {
	return &Guard{sem: semaphore.NewWeighted(1)}
}

// TryAcquire claims exclusive access, or returns false immediately if
// another owner currently holds it.
func (g *Guard) TryAcquire() bool {
	return g.sem.TryAcquire(1)
}

// Release relinquishes exclusive access. The caller must only call Release
// after a successful TryAcquire.
func (g *Guard) Release() {
	g.sem.Release(1)
}

// SharedStream pairs a Stream with the Guard that arbitrates access to it
// across the reader and the body iterator it hands off to. Both the
// message reader and any body iterator it spawns hold a *SharedStream,
// never a bare Stream.
type SharedStream struct {
	Stream
	Guard *Guard
}

// NewSharedStream wraps a Stream with a fresh Guard.
func NewSharedStream(s Stream) *SharedStream {
	return &SharedStream{Stream: s, Guard: NewGuard()}
}

// withGuard runs fn while holding the guard, returning ErrGuardedResourceAccess
// if another owner currently holds it instead of blocking.
func (s *SharedStream) withGuard(fn func() error) error {
	if !s.Guard.TryAcquire() {
		return ErrGuardedResourceAccess
	}
	defer s.Guard.Release()
	return fn()
}
