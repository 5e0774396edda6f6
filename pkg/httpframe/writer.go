package httpframe

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// writerState tracks which phase of the Intro -> Headers -> Body ->
// (optional streaming sub-states) -> End lifecycle a Writer is in.
type writerState uint8

const (
	writerIntro writerState = iota
	writerHeaders
	writerBody
	writerDone
)

// Writer serialises one outbound message (request or response) to wire
// bytes, one Next() call at a time, so a caller streaming a large or
// indefinite body never needs the whole message buffered at once. Single
// shot: once Next returns io.EOF the Writer is spent.
//
// The chunk assembly buffer is pooled via bytebufferpool rather than
// allocating a fresh []byte per Next call.
type Writer struct {
	state writerState

	introLine string
	headers   *Headers
	body      OutboundBody

	chunkCollected     uint64
	chunkedTerminating bool
	bodyDone           bool
}

// NewRequestWriter builds a Writer for an outbound request line.
func NewRequestWriter(method Method, path string, proto Proto, headers *Headers, body OutboundBody) *Writer {
	return &Writer{
		introLine: method.String() + " " + path + " " + proto.String() + "\r\n",
		headers:   headers,
		body:      body,
	}
}

// NewResponseWriter builds a Writer for an outbound status line.
func NewResponseWriter(proto Proto, status Status, headers *Headers, body OutboundBody) *Writer {
	reason := status.Reason
	if reason == "" {
		reason = ReasonPhrase(status.Code)
	}
	line := proto.String() + " " + strconv.Itoa(status.Code)
	if reason != "" {
		line += " " + reason
	}
	return &Writer{
		introLine: line + "\r\n",
		headers:   headers,
		body:      body,
	}
}

// Next returns the next chunk of wire bytes to write, or (nil, io.EOF) once
// the message is fully serialised.
func (w *Writer) Next() ([]byte, error) {
	switch w.state {
	case writerIntro:
		w.state = writerHeaders
		return []byte(w.introLine), nil

	case writerHeaders:
		return w.renderHeaders()

	case writerBody:
		return w.nextBodyChunk()

	default:
		return nil, io.EOF
	}
}

func (w *Writer) renderHeaders() ([]byte, error) {
	if w.headers == nil {
		w.headers = NewHeaders()
	}
	w.applyFramingHeaders()
	if w.headers.Len() == 0 {
		return nil, ErrHeadersRequired
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.headers.VisitAll(func(name HeaderName, value string) {
		buf.WriteString(name.String())
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString("\r\n")
	})
	buf.WriteString("\r\n")

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	w.state = writerBody
	return out, nil
}

// applyFramingHeaders fills in Content-Length/Transfer-Encoding when the
// caller didn't set them explicitly, based on the chosen OutboundBodyKind.
func (w *Writer) applyFramingHeaders() {
	switch w.body.Kind {
	case OutboundBodyNone:
		return
	case OutboundBodyBytes:
		if !w.headers.Has(HeaderContentLength) {
			w.headers.Set(HeaderContentLength, strconv.Itoa(len(w.body.Bytes)))
		}
	case OutboundBodyChunkedStream, OutboundBodyLimitedChunkedStream:
		if !w.headers.Has(HeaderTransferEncoding) {
			w.headers.Set(HeaderTransferEncoding, "chunked")
		}
	case OutboundBodyStream:
		// Caller is responsible for declaring its own framing header
		// (Content-Length if known up front, or none for a close-delimited
		// body); nothing to infer here.
	}
}

func (w *Writer) nextBodyChunk() ([]byte, error) {
	if w.bodyDone {
		w.state = writerDone
		return nil, io.EOF
	}

	switch w.body.Kind {
	case OutboundBodyNone:
		w.bodyDone = true
		w.state = writerDone
		return nil, io.EOF

	case OutboundBodyBytes:
		w.bodyDone = true
		w.state = writerDone
		return w.body.Bytes, nil

	case OutboundBodyStream:
		chunk, err := w.body.Stream.NextChunk()
		if err != nil {
			if err == io.EOF {
				w.bodyDone = true
				w.state = writerDone
				return nil, io.EOF
			}
			return nil, err
		}
		return chunk, nil

	case OutboundBodyChunkedStream, OutboundBodyLimitedChunkedStream:
		return w.nextChunkedItem()

	default:
		w.bodyDone = true
		w.state = writerDone
		return nil, io.EOF
	}
}

// nextChunkedItem drives the chunked writer states off w.body.ChunkedSource,
// mirroring the Data/DataEnded/Trailers shape a chunked body iterator
// yields on the reading side: a Frame becomes one encoded chunk, DataEnded
// becomes the terminating "0\r\n" last-chunk line, and an optional Trailers
// item that follows is rendered as trailer header lines before the final
// CRLF that closes the chunked body.
func (w *Writer) nextChunkedItem() ([]byte, error) {
	if w.chunkedTerminating {
		w.bodyDone = true
		w.state = writerDone
		item, err := w.body.ChunkedSource.Next()
		if err != nil {
			return []byte("\r\n"), nil
		}
		if item.Kind == ChunkedDataTrailers {
			return encodeTrailers(item.Trailers), nil
		}
		return []byte("\r\n"), nil
	}

	item, err := w.body.ChunkedSource.Next()
	if err != nil {
		if err != io.EOF {
			return nil, err
		}
		w.bodyDone = true
		w.state = writerDone
		return []byte("0\r\n\r\n"), nil
	}

	switch item.Kind {
	case ChunkedDataFrame:
		if w.body.Kind == OutboundBodyLimitedChunkedStream {
			w.chunkCollected += uint64(len(item.Payload))
			if w.chunkCollected > w.body.ChunkCap {
				w.bodyDone = true
				w.state = writerDone
				return nil, &LimitReachedError{Cap: w.body.ChunkCap}
			}
		}
		return encodeChunk(item.Payload, item.Extensions), nil

	case ChunkedDataEnded:
		w.chunkedTerminating = true
		return []byte("0\r\n"), nil

	case ChunkedDataTrailers:
		w.bodyDone = true
		w.state = writerDone
		return append([]byte("0\r\n"), encodeTrailers(item.Trailers)...), nil

	default:
		w.bodyDone = true
		w.state = writerDone
		return nil, io.EOF
	}
}

// encodeChunk wraps payload in its chunk-size-line/CRLF framing, appending
// any chunk extensions to the size line (quoting a value that contains a
// space, ';', or '"').
func encodeChunk(payload []byte, exts []Extension) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(strconv.FormatInt(int64(len(payload)), 16))
	for _, ext := range exts {
		buf.WriteString(";")
		buf.WriteString(ext.Key)
		if ext.Value != nil {
			buf.WriteString("=")
			writeExtensionValue(buf, *ext.Value)
		}
	}
	buf.WriteString("\r\n")
	buf.Write(payload)
	buf.WriteString("\r\n")

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func writeExtensionValue(buf *bytebufferpool.ByteBuffer, value string) {
	needsQuoting := value == ""
	for i := 0; !needsQuoting && i < len(value); i++ {
		switch value[i] {
		case ' ', ';', '"':
			needsQuoting = true
		}
	}
	if !needsQuoting {
		buf.WriteString(value)
		return
	}
	buf.WriteString(`"`)
	buf.WriteString(value)
	buf.WriteString(`"`)
}

// encodeTrailers renders a chunked body's trailer section: one header line
// per Trailer, followed by the CRLF that closes the chunked body.
func encodeTrailers(trailers []Trailer) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, t := range trailers {
		buf.WriteString(t.Name)
		buf.WriteString(": ")
		buf.WriteString(t.Value)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// WriteAll drains w into dst, a convenience for callers that don't need
// the incremental Next() interface (e.g. tests, or a caller writing to an
// in-memory buffer where partial progress doesn't matter).
func WriteAll(w *Writer, dst io.Writer) error {
	for {
		chunk, err := w.Next()
		if len(chunk) > 0 {
			if _, werr := dst.Write(chunk); werr != nil {
				return werr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
