package httpframe

import (
	"io"
	"testing"
)

func TestRequestReaderSizedBody(t *testing.T) {
	wire := "POST /submit HTTP/1.1\r\nHost: example.com\r\nContent-Length: 5\r\n\r\nhello"
	s := newTestSharedStream(wire)
	r := NewRequestReader(s, DefaultLimits())

	part, err := r.Next()
	if err != nil {
		t.Fatalf("intro: %v", err)
	}
	if part.Kind != RequestPartIntro || part.Method != MethodPOST || part.Path != "/submit" || part.Proto != ProtoHTTP11 {
		t.Fatalf("intro part = %+v", part)
	}

	var headerParts []RequestPart
	for {
		part, err = r.Next()
		if err != nil {
			t.Fatalf("header: %v", err)
		}
		if part.Kind == RequestPartBodyReady {
			break
		}
		headerParts = append(headerParts, part)
	}
	if len(headerParts) != 2 {
		t.Fatalf("header parts = %+v", headerParts)
	}
	if part.Body.Kind != BodySized || part.Body.SizedLength != 5 {
		t.Fatalf("body = %+v", part.Body)
	}

	buf, err := io.ReadAll(part.Body.Sized())
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("body = %q", buf)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF after body ready, got %v", err)
	}
}

func TestRequestReaderChunkedBody(t *testing.T) {
	wire := "GET /stream HTTP/1.1\r\nHost: example.com\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n"
	s := newTestSharedStream(wire)
	r := NewRequestReader(s, DefaultLimits())

	var body *InboundBody
	for {
		part, err := r.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.Kind == RequestPartBodyReady {
			body = part.Body
			break
		}
	}
	if body.Kind != BodyChunked {
		t.Fatalf("body kind = %v, want BodyChunked", body.Kind)
	}
	it := body.Chunked()
	item, err := it.Next()
	if err != nil || item.Kind != ChunkedDataFrame || string(item.Payload) != "Wiki" {
		t.Fatalf("first chunk = %+v, err = %v", item, err)
	}
}

func TestRequestReaderRejectsAmbiguousContentLength(t *testing.T) {
	wire := "POST /x HTTP/1.1\r\nHost: h\r\nContent-Length: 5\r\nContent-Length: 6\r\n\r\nhello!"
	s := newTestSharedStream(wire)
	r := NewRequestReader(s, DefaultLimits())

	var lastErr error
	for {
		part, err := r.Next()
		if err != nil {
			lastErr = err
			break
		}
		if part.Kind == RequestPartBodyReady {
			break
		}
	}
	if lastErr != ErrAmbiguousContentLength {
		t.Fatalf("error = %v, want ErrAmbiguousContentLength", lastErr)
	}
}

func TestRequestReaderToleratesLeadingBlankLines(t *testing.T) {
	wire := "\r\n\r\nGET / HTTP/1.1\r\nHost: h\r\n\r\n"
	s := newTestSharedStream(wire)
	r := NewRequestReader(s, DefaultLimits())

	part, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.Kind != RequestPartIntro || part.Method != MethodGET {
		t.Fatalf("part = %+v", part)
	}
}

func TestResponseReaderNoBodyStatus(t *testing.T) {
	wire := "HTTP/1.1 204 No Content\r\nServer: x\r\n\r\n"
	s := newTestSharedStream(wire)
	r := NewResponseReader(s, DefaultLimits())

	part, err := r.Next()
	if err != nil || part.Kind != ResponsePartIntro || part.Status.Code != 204 {
		t.Fatalf("intro = %+v, err = %v", part, err)
	}
	for {
		part, err = r.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.Kind == ResponsePartBodyReady {
			break
		}
	}
	if part.Body.Kind != BodyAbsent {
		t.Fatalf("body kind = %v, want BodyAbsent", part.Body.Kind)
	}
}

func TestResponseReaderSizedBody(t *testing.T) {
	wire := "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nok"
	s := newTestSharedStream(wire)
	r := NewResponseReader(s, DefaultLimits())

	var body *InboundBody
	for {
		part, err := r.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.Kind == ResponsePartBodyReady {
			body = part.Body
			break
		}
	}
	buf, err := io.ReadAll(body.Sized())
	if err != nil || string(buf) != "ok" {
		t.Fatalf("body = %q, err = %v", buf, err)
	}
}
