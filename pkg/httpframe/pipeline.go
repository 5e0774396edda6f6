package httpframe

import "go.uber.org/zap"

// HttpStreams multiplexes a sequence of requests or responses off one
// connection: each call to NextRequest/NextResponse constructs a fresh
// reader bound to the same SharedStream, once the previous message's body
// has been fully drained by the caller. A single buffered reader is
// reused across consecutive requests on a keep-alive connection, the same
// way a request-parsing loop reuses its bufio.Reader across a pipeline.
type HttpStreams struct {
	stream *SharedStream
	limits Limits
	log    *zap.Logger
}

// NewHttpStreams wraps s for pipelined request/response decoding, logging
// guard-contention and malformed-pipeline diagnostics through log.
func NewHttpStreams(s *SharedStream, limits Limits, log *zap.Logger) *HttpStreams {
	if log == nil {
		log = zap.NewNop()
	}
	return &HttpStreams{stream: s, limits: limits, log: log}
}

// NextRequest returns a RequestReader for the next pipelined request,
// tolerating one leading "\r\n" left over from the previous message rather
// than treating it as a parse error.
func (h *HttpStreams) NextRequest() *RequestReader {
	r := NewRequestReader(h.stream, h.limits)
	return r
}

// NextResponse returns a ResponseReader for the next pipelined response.
func (h *HttpStreams) NextResponse() *ResponseReader {
	r := NewResponseReader(h.stream, h.limits)
	return r
}

// NoteGuardContention logs a guard-contention event: a body iterator was
// still live on the shared stream when the pipeline tried to start the
// next message. Callers observing ErrGuardedResourceAccess from a reader
// call this so the condition is visible without needing to thread a
// logger through every call site.
func (h *HttpStreams) NoteGuardContention(err error) {
	h.log.Warn("httpframe: guarded resource access while advancing pipeline", zap.Error(err))
}

// NoteReaderAbandoned logs a reader being dropped before it reached
// BodyReady — e.g. the caller closed the connection mid-headers.
func (h *HttpStreams) NoteReaderAbandoned(state string, err error) {
	h.log.Warn("httpframe: reader abandoned before completion", zap.String("state", state), zap.Error(err))
}
