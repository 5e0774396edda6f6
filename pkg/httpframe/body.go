package httpframe

import "io"

// BodyKind tags which framing an inbound message body used, decided once
// during header validation.
type BodyKind uint8

const (
	// BodyAbsent means the message has no body at all (e.g. a GET request
	// with neither Content-Length nor Transfer-Encoding, or a response
	// whose status class never carries one).
	BodyAbsent BodyKind = iota
	// BodySized means a Content-Length header declared an exact byte count.
	BodySized
	// BodyChunked means Transfer-Encoding's last coding is "chunked".
	BodyChunked
	// BodyLineFeedStream means the body is a line-delimited stream running
	// to connection close, not governed by Content-Length or chunked framing.
	BodyLineFeedStream
)

// InboundBody describes how to read the body of a message that has already
// passed header validation. Exactly one of the reader accessors (Sized,
// Chunked, LineFeedStream) is valid, selected by Kind.
type InboundBody struct {
	Kind BodyKind

	// SizedLength is valid when Kind == BodySized.
	SizedLength uint64

	stream *SharedStream
}

// Sized returns a reader bounded to exactly SizedLength bytes. Only valid
// when Kind == BodySized.
func (b *InboundBody) Sized() *SizedBodyReader {
	return &SizedBodyReader{stream: b.stream, remaining: b.SizedLength}
}

// Chunked returns the chunked-body iterator. Only valid when Kind == BodyChunked.
func (b *InboundBody) Chunked() *ChunkedBodyReader {
	return NewChunkedBodyReader(b.stream)
}

// LineFeedStream returns the line-feed decoder. Only valid when Kind == BodyLineFeedStream.
func (b *InboundBody) LineFeedStream() *LineFeedDecoder {
	return NewLineFeedDecoder(b.stream)
}

// SizedBodyReader reads exactly the declared Content-Length bytes off the
// shared stream, in caller-chosen chunks, never reading past the boundary.
type SizedBodyReader struct {
	stream    *SharedStream
	remaining uint64
}

// Read pulls up to len(p) bytes, never more than what remains of the
// declared length, implementing io.Reader so callers can use it with
// stdlib helpers (io.Copy, io.ReadAll).
func (r *SizedBodyReader) Read(p []byte) (int, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	want := len(p)
	if uint64(want) > r.remaining {
		want = int(r.remaining)
	}
	var n int
	var readErr error
	err := r.stream.withGuard(func() error {
		b, e := r.stream.ReadExact(want)
		if e != nil {
			readErr = e
			return nil
		}
		n = copy(p, b)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if readErr != nil {
		return 0, readErr
	}
	r.remaining -= uint64(n)
	return n, nil
}

// Remaining reports how many bytes are still unread.
func (r *SizedBodyReader) Remaining() uint64 { return r.remaining }

// OutboundBodyKind tags the shape of a body a Writer is asked to emit.
type OutboundBodyKind uint8

const (
	OutboundBodyNone OutboundBodyKind = iota
	OutboundBodyBytes
	OutboundBodyStream
	OutboundBodyChunkedStream
	OutboundBodyLimitedChunkedStream
)

// OutboundBody is what a caller hands the Writer to describe a message
// body to serialise. Exactly one of the payload fields is meaningful,
// selected by Kind.
type OutboundBody struct {
	Kind OutboundBodyKind

	// Bytes is valid when Kind == OutboundBodyBytes: written with a
	// Content-Length header computed from its length.
	Bytes []byte

	// Stream is valid when Kind == OutboundBodyStream: a source the writer
	// pulls raw, already-framed chunks from (e.g. a Content-Length body
	// written incrementally, or a close-delimited body with no framing
	// header at all).
	Stream OutboundChunkSource

	// ChunkedSource is valid for Kind in {OutboundBodyChunkedStream,
	// OutboundBodyLimitedChunkedStream}: a source yielding ChunkedData
	// items (Frame, DataEnded, Trailers) for the writer to encode onto the
	// wire. A *ChunkedBodyReader or *LimitedChunkedBodyReader already
	// satisfies this interface, so a body read off one connection can be
	// re-emitted on another without losing extensions or trailers.
	ChunkedSource ChunkedDataSource

	// ChunkCap bounds cumulative emitted payload bytes when Kind ==
	// OutboundBodyLimitedChunkedStream.
	ChunkCap uint64
}

// OutboundChunkSource is implemented by callers that want to stream a
// non-chunked body out incrementally rather than hand the writer a single
// []byte.
type OutboundChunkSource interface {
	// NextChunk returns the next chunk of body bytes, or (nil, io.EOF) once
	// exhausted.
	NextChunk() ([]byte, error)
}

// ChunkedDataSource is implemented by anything that can yield a chunked
// body one ChunkedData item at a time — the same shape ChunkedBodyReader
// and LimitedChunkedBodyReader produce on the reading side.
type ChunkedDataSource interface {
	Next() (ChunkedData, error)
}
