package httpframe

import "io"

// LineKind tags what a LineFeedDecoder yielded for one read.
type LineKind uint8

const (
	// LineData carries one decoded line's bytes (terminator stripped).
	LineData LineKind = iota
	// LineSkip indicates a record separator (one or more consecutive blank
	// lines) that callers should ignore rather than treat as an empty data
	// line.
	LineSkip
)

// LineResult is one item yielded by a LineFeedDecoder.
type LineResult struct {
	Kind LineKind
	Line string
}

// LineFeedDecoder decodes a newline-delimited event stream body (the shape
// used by Server-Sent Events and similar line-feed protocols): it accepts
// "\n", "\r\n", and recognises record separators of "\n\n", "\r\n\r\n", and
// the mixed "\n\r\n\r\n" form, never requiring Content-Length or chunked
// framing since the body runs to connection close or a stream cancellation.
//
// Structured as a pull iterator over a SharedStream the same way
// ChunkedBodyReader is, so both body shapes compose identically with the
// message reader's hand-off protocol.
type LineFeedDecoder struct {
	stream    *SharedStream
	finished  bool
	lastBlank bool
}

// NewLineFeedDecoder wraps s as a line-feed-stream body iterator.
func NewLineFeedDecoder(s *SharedStream) *LineFeedDecoder {
	return &LineFeedDecoder{stream: s}
}

// Next returns the next LineResult, or io.EOF once the underlying stream is
// exhausted.
func (d *LineFeedDecoder) Next() (LineResult, error) {
	if d.finished {
		return LineResult{}, io.EOF
	}

	var result LineResult
	var readErr error
	err := d.stream.withGuard(func() error {
		result, readErr = d.next()
		return nil
	})
	if err != nil {
		return LineResult{}, err
	}
	return result, readErr
}

func (d *LineFeedDecoder) next() (LineResult, error) {
	for {
		raw, err := d.stream.ReadLineUntil(crlf)
		if err != nil {
			if err == io.EOF {
				d.finished = true
			}
			if raw == "" {
				return LineResult{}, err
			}
		}

		line := stripLineTerminator(raw)

		// A record separator is a blank line: either a bare terminator with no
		// preceding content, or two terminators seen back-to-back ("\n\n",
		// "\r\n\r\n" reduce to one empty decoded line here since ReadLineUntil
		// already consumed exactly one terminator). A blank line directly after
		// another one is folded into the same LineSkip, so the mixed
		// "\n\r\n\r\n" form also yields a single LineSkip.
		if line == "" {
			if d.lastBlank {
				continue
			}
			d.lastBlank = true
			return LineResult{Kind: LineSkip}, nil
		}
		d.lastBlank = false
		return LineResult{Kind: LineData, Line: line}, nil
	}
}

// stripLineTerminator removes a trailing "\r\n" or "\n" from s.
func stripLineTerminator(s string) string {
	if n := len(s); n >= 2 && s[n-2] == '\r' && s[n-1] == '\n' {
		return s[:n-2]
	}
	if n := len(s); n >= 1 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
