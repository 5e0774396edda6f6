package httpframe

import "strconv"

// eventStreamContentType is the media type that marks a body as a
// line-feed event stream when no explicit Content-Length or
// Transfer-Encoding framing header contradicts it.
const eventStreamContentType = "text/event-stream"

// framingDecision is the result of inspecting Content-Length and
// Transfer-Encoding once header parsing finishes.
type framingDecision struct {
	bodyKind    BodyKind
	sizedLength uint64
}

// decideBodyFraming applies the anti-request-smuggling rules: reject
// simultaneous Content-Length + Transfer-Encoding, reject ambiguous
// duplicate Content-Length values, require Transfer-Encoding's last
// coding to be "chunked".
func decideBodyFraming(headers *Headers, limits Limits) (framingDecision, error) {
	hasCL := headers.Has(HeaderContentLength)
	hasTE := headers.Has(HeaderTransferEncoding)

	if hasCL && hasTE {
		return framingDecision{}, ErrContentLengthWithTransferEncoding
	}

	if hasTE {
		tokens := headers.Values(HeaderTransferEncoding)
		if len(tokens) == 0 {
			return framingDecision{}, ErrInvalidTransferEncoding
		}
		last := tokens[len(tokens)-1]
		if !equalFoldASCII(last, "chunked") {
			return framingDecision{}, ErrInvalidTransferEncoding
		}
		return framingDecision{bodyKind: BodyChunked}, nil
	}

	if hasCL {
		vals := headers.Values(HeaderContentLength)
		first := vals[0]
		for _, v := range vals[1:] {
			if v != first {
				return framingDecision{}, ErrAmbiguousContentLength
			}
		}
		n, err := strconv.ParseUint(first, 10, 64)
		if err != nil {
			return framingDecision{}, ErrInvalidContentSizeValue
		}
		if limits.MaxBodyLength > 0 && n > limits.MaxBodyLength {
			return framingDecision{}, ErrBodyContentSizeIsGreaterThanLimit
		}
		return framingDecision{bodyKind: BodySized, sizedLength: n}, nil
	}

	if isEventStreamContentType(headers) {
		return framingDecision{bodyKind: BodyLineFeedStream}, nil
	}

	return framingDecision{bodyKind: BodyAbsent}, nil
}

// isEventStreamContentType reports whether headers declare a
// "text/event-stream" Content-Type, ignoring any trailing ";charset=..."
// parameters and leading/trailing whitespace around the media type.
func isEventStreamContentType(headers *Headers) bool {
	value, ok := headers.Get(HeaderContentType)
	if !ok {
		return false
	}
	mediaType := value
	if idx := indexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = trimSpaceASCII(mediaType)
	return equalFoldASCII(mediaType, eventStreamContentType)
}

func trimSpaceASCII(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
