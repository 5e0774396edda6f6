package httpframe

import (
	"io"
	"strings"
)

// readerState tracks which phase of the Intro -> Headers -> Body ->
// Finished lifecycle a reader is in.
type readerState uint8

const (
	stateLeadingBlank readerState = iota
	stateHeaders
	stateBodyReady
	stateFinished
)

// RequestPartKind tags the variant carried by a RequestPart.
type RequestPartKind uint8

const (
	RequestPartIntro RequestPartKind = iota
	RequestPartHeader
	RequestPartBodyReady
)

// RequestPart is one item yielded while reading a request.
type RequestPart struct {
	Kind RequestPartKind

	// Valid when Kind == RequestPartIntro.
	Method Method
	Path   string
	Proto  Proto

	// Valid when Kind == RequestPartHeader.
	HeaderName  HeaderName
	HeaderValue string

	// Valid when Kind == RequestPartBodyReady.
	Body *InboundBody
}

// RequestReader decodes one HTTP request off a SharedStream. It is
// structured as a pull iterator that suspends between Next() calls rather
// than running a connection-reading loop to completion in one shot, so a
// caller can interleave body streaming with its own I/O scheduling.
type RequestReader struct {
	stream *SharedStream
	limits Limits

	state      readerState
	blankLines int

	method  Method
	path    string
	proto   Proto
	headers *Headers

	pendingContinuation *HeaderName
}

// NewRequestReader creates a RequestReader over s with the given Limits.
func NewRequestReader(s *SharedStream, limits Limits) *RequestReader {
	return &RequestReader{stream: s, limits: limits, headers: NewHeaders()}
}

// Next advances the reader by one part. Once a RequestPartBodyReady has
// been returned, subsequent calls return io.EOF.
func (r *RequestReader) Next() (RequestPart, error) {
	if r.state == stateFinished {
		return RequestPart{}, io.EOF
	}

	var part RequestPart
	var readErr error
	guardErr := r.stream.withGuard(func() error {
		part, readErr = r.next()
		return nil
	})
	if guardErr != nil {
		return RequestPart{}, guardErr
	}
	return part, readErr
}

func (r *RequestReader) next() (RequestPart, error) {
	for {
		switch r.state {
		case stateLeadingBlank:
			line, err := r.stream.ReadLineUntil(crlf)
			if err != nil && line == "" {
				return RequestPart{}, err
			}
			if trimCRLF(line) == "" {
				r.blankLines++
				if r.blankLines > r.limits.MaxLeadingBlankLines {
					return RequestPart{}, ErrTooManyBlankLines
				}
				continue
			}
			return r.parseIntro(line)

		case stateHeaders:
			return r.nextHeaderPart()

		case stateBodyReady:
			return RequestPart{}, io.EOF

		default:
			return RequestPart{}, io.EOF
		}
	}
}

func (r *RequestReader) parseIntro(raw string) (RequestPart, error) {
	line := trimCRLF(raw)
	tokens := strings.SplitN(line, " ", 3)
	if len(tokens) != 3 {
		return RequestPart{}, &InvalidLineError{Line: line}
	}
	method := ParseMethod(tokens[0])
	proto, err := ParseProto(tokens[2])
	if err != nil {
		return RequestPart{}, err
	}
	r.method = method
	r.path = tokens[1]
	r.proto = proto
	r.state = stateHeaders
	return RequestPart{Kind: RequestPartIntro, Method: method, Path: tokens[1], Proto: proto}, nil
}

func (r *RequestReader) nextHeaderPart() (RequestPart, error) {
	for {
		raw, err := r.stream.ReadLineUntil(crlf)
		if err != nil && raw == "" {
			return RequestPart{}, err
		}
		line := trimCRLF(raw)
		if line == "" {
			return r.finishHeaders()
		}

		name, value, isContinuation, err := splitHeaderLine(line)
		if err != nil {
			return RequestPart{}, err
		}
		if isContinuation {
			if r.pendingContinuation == nil {
				return RequestPart{}, ErrInvalidHeaderLine
			}
			if value != "" {
				r.headers.Add(*r.pendingContinuation, value)
			}
			continue
		}
		if err := validateHeaderKey(name, r.limits); err != nil {
			return RequestPart{}, err
		}
		if err := validateHeaderValue(value, r.limits); err != nil {
			return RequestPart{}, err
		}
		hname := ParseHeaderName(name)
		r.pendingContinuation = &hname
		for _, v := range splitListValue(hname, value) {
			r.headers.Add(hname, v)
		}
		return RequestPart{Kind: RequestPartHeader, HeaderName: hname, HeaderValue: value}, nil
	}
}

func (r *RequestReader) finishHeaders() (RequestPart, error) {
	decision, err := decideBodyFraming(r.headers, r.limits)
	if err != nil {
		return RequestPart{}, err
	}
	body := &InboundBody{Kind: decision.bodyKind, SizedLength: decision.sizedLength, stream: r.stream}
	r.state = stateBodyReady
	return RequestPart{Kind: RequestPartBodyReady, Body: body}, nil
}

// Headers returns the accumulated header map seen so far (valid once
// RequestPartBodyReady has been yielded, but readable incrementally too).
func (r *RequestReader) Headers() *Headers { return r.headers }

// Method returns the request's method, valid once RequestPartIntro has
// been yielded.
func (r *RequestReader) Method() Method { return r.method }

// Path returns the request's request-target, valid once RequestPartIntro
// has been yielded.
func (r *RequestReader) Path() string { return r.path }

// Proto returns the request's protocol token, valid once RequestPartIntro
// has been yielded.
func (r *RequestReader) Proto() Proto { return r.proto }

// ResponsePartKind tags the variant carried by a ResponsePart.
type ResponsePartKind uint8

const (
	ResponsePartIntro ResponsePartKind = iota
	ResponsePartHeader
	ResponsePartBodyReady
)

// ResponsePart is one item yielded while reading a response.
type ResponsePart struct {
	Kind ResponsePartKind

	Proto  Proto
	Status Status

	HeaderName  HeaderName
	HeaderValue string

	Body *InboundBody
}

// ResponseReader decodes one HTTP response off a SharedStream, mirroring
// RequestReader with a status-line instead of a request-line.
type ResponseReader struct {
	stream *SharedStream
	limits Limits

	state      readerState
	blankLines int

	proto   Proto
	status  Status
	headers *Headers

	pendingContinuation *HeaderName
}

// NewResponseReader creates a ResponseReader over s with the given Limits.
func NewResponseReader(s *SharedStream, limits Limits) *ResponseReader {
	return &ResponseReader{stream: s, limits: limits, headers: NewHeaders()}
}

// Next advances the reader by one part, same contract as RequestReader.Next.
func (r *ResponseReader) Next() (ResponsePart, error) {
	if r.state == stateFinished {
		return ResponsePart{}, io.EOF
	}

	var part ResponsePart
	var readErr error
	guardErr := r.stream.withGuard(func() error {
		part, readErr = r.next()
		return nil
	})
	if guardErr != nil {
		return ResponsePart{}, guardErr
	}
	return part, readErr
}

func (r *ResponseReader) next() (ResponsePart, error) {
	for {
		switch r.state {
		case stateLeadingBlank:
			line, err := r.stream.ReadLineUntil(crlf)
			if err != nil && line == "" {
				return ResponsePart{}, err
			}
			if trimCRLF(line) == "" {
				r.blankLines++
				if r.blankLines > r.limits.MaxLeadingBlankLines {
					return ResponsePart{}, ErrTooManyBlankLines
				}
				continue
			}
			return r.parseIntro(line)

		case stateHeaders:
			return r.nextHeaderPart()

		default:
			return ResponsePart{}, io.EOF
		}
	}
}

func (r *ResponseReader) parseIntro(raw string) (ResponsePart, error) {
	line := trimCRLF(raw)
	tokens := strings.SplitN(line, " ", 3)
	if len(tokens) < 2 {
		return ResponsePart{}, &InvalidLineError{Line: line}
	}
	proto, err := ParseProto(tokens[0])
	if err != nil {
		return ResponsePart{}, err
	}
	code, err := ParseStatusCode(tokens[1])
	if err != nil {
		return ResponsePart{}, err
	}
	reason := ""
	if len(tokens) == 3 {
		reason = tokens[2]
	}
	r.proto = proto
	r.status = Status{Code: code, Reason: reason}
	r.state = stateHeaders
	return ResponsePart{Kind: ResponsePartIntro, Proto: proto, Status: r.status}, nil
}

func (r *ResponseReader) nextHeaderPart() (ResponsePart, error) {
	for {
		raw, err := r.stream.ReadLineUntil(crlf)
		if err != nil && raw == "" {
			return ResponsePart{}, err
		}
		line := trimCRLF(raw)
		if line == "" {
			return r.finishHeaders()
		}

		name, value, isContinuation, err := splitHeaderLine(line)
		if err != nil {
			return ResponsePart{}, err
		}
		if isContinuation {
			if r.pendingContinuation == nil {
				return ResponsePart{}, ErrInvalidHeaderLine
			}
			if value != "" {
				r.headers.Add(*r.pendingContinuation, value)
			}
			continue
		}
		if err := validateHeaderKey(name, r.limits); err != nil {
			return ResponsePart{}, err
		}
		if err := validateHeaderValue(value, r.limits); err != nil {
			return ResponsePart{}, err
		}
		hname := ParseHeaderName(name)
		r.pendingContinuation = &hname
		for _, v := range splitListValue(hname, value) {
			r.headers.Add(hname, v)
		}
		return ResponsePart{Kind: ResponsePartHeader, HeaderName: hname, HeaderValue: value}, nil
	}
}

func (r *ResponseReader) finishHeaders() (ResponsePart, error) {
	if r.status.HasNoBody() {
		r.state = stateFinished
		body := &InboundBody{Kind: BodyAbsent, stream: r.stream}
		return ResponsePart{Kind: ResponsePartBodyReady, Body: body}, nil
	}
	decision, err := decideBodyFraming(r.headers, r.limits)
	if err != nil {
		return ResponsePart{}, err
	}
	body := &InboundBody{Kind: decision.bodyKind, SizedLength: decision.sizedLength, stream: r.stream}
	r.state = stateBodyReady
	return ResponsePart{Kind: ResponsePartBodyReady, Body: body}, nil
}

// Headers returns the accumulated header map seen so far.
func (r *ResponseReader) Headers() *Headers { return r.headers }

// Status returns the response's status, valid once ResponsePartIntro has
// been yielded.
func (r *ResponseReader) Status() Status { return r.status }

// Proto returns the response's protocol token, valid once ResponsePartIntro
// has been yielded.
func (r *ResponseReader) Proto() Proto { return r.proto }
