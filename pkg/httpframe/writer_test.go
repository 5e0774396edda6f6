package httpframe

import (
	"io"
	"strings"
	"testing"
)

func TestWriterRequestWithBytesBody(t *testing.T) {
	headers := NewHeaders()
	headers.Add(HeaderHost, "example.com")
	w := NewRequestWriter(MethodPOST, "/submit", ProtoHTTP11, headers, OutboundBody{
		Kind:  OutboundBodyBytes,
		Bytes: []byte("hello"),
	})

	var out strings.Builder
	if err := WriteAll(w, &out); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "POST /submit HTTP/1.1\r\n") {
		t.Fatalf("missing intro line: %q", got)
	}
	if !strings.Contains(got, "Content-Length: 5\r\n") {
		t.Fatalf("missing inferred Content-Length: %q", got)
	}
	if !strings.HasSuffix(got, "\r\n\r\nhello") {
		t.Fatalf("missing body: %q", got)
	}
}

func TestWriterResponseDefaultReason(t *testing.T) {
	headers := NewHeaders()
	headers.Add(HeaderServer, "x")
	w := NewResponseWriter(ProtoHTTP11, Status{Code: 404}, headers, OutboundBody{Kind: OutboundBodyNone})

	var out strings.Builder
	if err := WriteAll(w, &out); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if !strings.HasPrefix(out.String(), "HTTP/1.1 404 Not Found\r\n") {
		t.Fatalf("intro line = %q", out.String())
	}
}

func TestWriterRejectsEmptyHeaders(t *testing.T) {
	w := NewRequestWriter(MethodGET, "/", ProtoHTTP11, NewHeaders(), OutboundBody{Kind: OutboundBodyNone})
	if _, err := w.Next(); err != nil {
		t.Fatalf("intro: %v", err)
	}
	if _, err := w.Next(); err != ErrHeadersRequired {
		t.Fatalf("error = %v, want ErrHeadersRequired", err)
	}
}

type sliceChunkSource struct {
	chunks [][]byte
	idx    int
}

func (s *sliceChunkSource) NextChunk() ([]byte, error) {
	if s.idx >= len(s.chunks) {
		return nil, io.EOF
	}
	c := s.chunks[s.idx]
	s.idx++
	return c, nil
}

func TestWriterRawStreamBody(t *testing.T) {
	headers := NewHeaders()
	headers.Add(HeaderHost, "example.com")
	headers.Add(HeaderContentLength, "9")
	src := &sliceChunkSource{chunks: [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}}
	w := NewRequestWriter(MethodPOST, "/upload", ProtoHTTP11, headers, OutboundBody{
		Kind:   OutboundBodyStream,
		Stream: src,
	})

	var out strings.Builder
	if err := WriteAll(w, &out); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Content-Length: 9\r\n") {
		t.Fatalf("missing explicit Content-Length: %q", got)
	}
	if !strings.HasSuffix(got, "\r\n\r\nfoobarbaz") {
		t.Fatalf("unexpected raw stream body: %q", got)
	}
}

type sliceChunkedDataSource struct {
	items []ChunkedData
	idx   int
}

func (s *sliceChunkedDataSource) Next() (ChunkedData, error) {
	if s.idx >= len(s.items) {
		return ChunkedData{}, io.EOF
	}
	item := s.items[s.idx]
	s.idx++
	return item, nil
}

func TestWriterChunkedStream(t *testing.T) {
	headers := NewHeaders()
	headers.Add(HeaderHost, "example.com")
	src := &sliceChunkedDataSource{items: []ChunkedData{
		{Kind: ChunkedDataFrame, Payload: []byte("Wiki")},
		{Kind: ChunkedDataFrame, Payload: []byte("pedia")},
		{Kind: ChunkedDataEnded},
	}}
	w := NewResponseWriter(ProtoHTTP11, Status{Code: 200}, headers, OutboundBody{
		Kind:          OutboundBodyChunkedStream,
		ChunkedSource: src,
	})

	var out strings.Builder
	if err := WriteAll(w, &out); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Transfer-Encoding: chunked\r\n") {
		t.Fatalf("missing inferred Transfer-Encoding: %q", got)
	}
	if !strings.HasSuffix(got, "4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n") {
		t.Fatalf("unexpected chunked body: %q", got)
	}
}

func TestWriterChunkedStreamWithExtensionsAndTrailers(t *testing.T) {
	headers := NewHeaders()
	headers.Add(HeaderHost, "example.com")
	val := "abc"
	src := &sliceChunkedDataSource{items: []ChunkedData{
		{Kind: ChunkedDataFrame, Payload: []byte("hi"), Extensions: []Extension{{Key: "ieof", Value: &val}}},
		{Kind: ChunkedDataEnded},
		{Kind: ChunkedDataTrailers, Trailers: []Trailer{{Name: "X-Checksum", Value: "deadbeef"}}},
	}}
	w := NewResponseWriter(ProtoHTTP11, Status{Code: 200}, headers, OutboundBody{
		Kind:          OutboundBodyChunkedStream,
		ChunkedSource: src,
	})

	var out strings.Builder
	if err := WriteAll(w, &out); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "2;ieof=abc\r\nhi\r\n") {
		t.Fatalf("missing chunk extension: %q", got)
	}
	if !strings.HasSuffix(got, "0\r\nX-Checksum: deadbeef\r\n\r\n") {
		t.Fatalf("missing trailer section: %q", got)
	}
}

func TestWriterLimitedChunkedStreamStopsAtCap(t *testing.T) {
	headers := NewHeaders()
	headers.Add(HeaderHost, "example.com")
	src := &sliceChunkedDataSource{items: []ChunkedData{
		{Kind: ChunkedDataFrame, Payload: []byte("01234")},
		{Kind: ChunkedDataFrame, Payload: []byte("56789")},
		{Kind: ChunkedDataEnded},
	}}
	w := NewResponseWriter(ProtoHTTP11, Status{Code: 200}, headers, OutboundBody{
		Kind:          OutboundBodyLimitedChunkedStream,
		ChunkedSource: src,
		ChunkCap:      8,
	})

	var out strings.Builder
	err := WriteAll(w, &out)
	if _, ok := err.(*LimitReachedError); !ok {
		t.Fatalf("error = %v, want *LimitReachedError", err)
	}
}
