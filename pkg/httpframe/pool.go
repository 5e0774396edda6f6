package httpframe

import "sync"

// Pools of RequestReader/ResponseReader/Writer values: sync.Pool-backed
// reuse of per-connection parser state so a busy server doesn't allocate a
// fresh state machine per request. Reset methods clear accumulated state
// before a value returns to its pool's free list.

var requestReaderPool = sync.Pool{
	New: func() any { return &RequestReader{headers: NewHeaders()} },
}

// AcquireRequestReader returns a pooled RequestReader bound to s and
// limits, ready to decode a new request.
func AcquireRequestReader(s *SharedStream, limits Limits) *RequestReader {
	r := requestReaderPool.Get().(*RequestReader)
	r.stream = s
	r.limits = limits
	return r
}

// ReleaseRequestReader resets r and returns it to the pool. Callers must
// not use r again after calling this.
func ReleaseRequestReader(r *RequestReader) {
	r.reset()
	requestReaderPool.Put(r)
}

func (r *RequestReader) reset() {
	r.stream = nil
	r.state = stateLeadingBlank
	r.blankLines = 0
	r.method = Method{}
	r.path = ""
	r.proto = ProtoUnknown
	r.headers = NewHeaders()
	r.pendingContinuation = nil
}

var responseReaderPool = sync.Pool{
	New: func() any { return &ResponseReader{headers: NewHeaders()} },
}

// AcquireResponseReader returns a pooled ResponseReader bound to s and limits.
func AcquireResponseReader(s *SharedStream, limits Limits) *ResponseReader {
	r := responseReaderPool.Get().(*ResponseReader)
	r.stream = s
	r.limits = limits
	return r
}

// ReleaseResponseReader resets r and returns it to the pool.
func ReleaseResponseReader(r *ResponseReader) {
	r.reset()
	responseReaderPool.Put(r)
}

func (r *ResponseReader) reset() {
	r.stream = nil
	r.state = stateLeadingBlank
	r.blankLines = 0
	r.proto = ProtoUnknown
	r.status = Status{}
	r.headers = NewHeaders()
	r.pendingContinuation = nil
}

var writerPool = sync.Pool{
	New: func() any { return &Writer{} },
}

// AcquireWriter returns a pooled Writer in its reset state: no intro line,
// headers or body are set.
func AcquireWriter() *Writer {
	return writerPool.Get().(*Writer)
}

// ReleaseWriter resets w and returns it to the pool.
func ReleaseWriter(w *Writer) {
	w.state = writerIntro
	w.introLine = ""
	w.headers = nil
	w.body = OutboundBody{}
	w.chunkCollected = 0
	w.chunkedTerminating = false
	w.bodyDone = false
	writerPool.Put(w)
}
