package httpframe

import "io"

// BodyExtractor produces something the caller can read a body from, given
// the validated framing decision (BodyKind) and the shared stream, in
// whichever shape is convenient for that caller (a single buffer, an
// io.Reader, or the raw chunked/line-feed iterator). Swappable so a caller
// that always wants fully-buffered bodies doesn't have to hand-roll the
// BodyKind switch itself.
type BodyExtractor interface {
	// Extract consumes body, returning a buffered []byte for Absent/Sized
	// bodies, or draining the Chunked/LineFeedStream iterator into one
	// buffer (dropping extension/trailer metadata) up to maxBuffered bytes.
	Extract(body *InboundBody, maxBuffered uint64) ([]byte, error)
}

// DefaultBodyExtractor is a read-to-completion convenience wrapper around
// the streaming primitives, for callers that don't want to drive the
// iterator themselves.
type DefaultBodyExtractor struct{}

// Extract implements BodyExtractor.
func (DefaultBodyExtractor) Extract(body *InboundBody, maxBuffered uint64) ([]byte, error) {
	switch body.Kind {
	case BodyAbsent:
		return nil, nil
	case BodySized:
		if body.SizedLength > maxBuffered {
			return nil, ErrBodyContentSizeIsGreaterThanLimit
		}
		buf := make([]byte, 0, body.SizedLength)
		r := body.Sized()
		chunk := make([]byte, 32*1024)
		for {
			n, err := r.Read(chunk)
			if n > 0 {
				buf = append(buf, chunk[:n]...)
			}
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			if r.Remaining() == 0 {
				break
			}
		}
		return buf, nil
	case BodyChunked:
		it := body.Chunked()
		var buf []byte
		for {
			item, err := it.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			if item.Kind != ChunkedDataFrame {
				continue
			}
			buf = append(buf, item.Payload...)
			if uint64(len(buf)) > maxBuffered {
				return nil, ErrBodyContentSizeIsGreaterThanLimit
			}
		}
		return buf, nil
	case BodyLineFeedStream:
		dec := body.LineFeedStream()
		var buf []byte
		for {
			item, err := dec.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			if item.Kind != LineData {
				continue
			}
			buf = append(buf, item.Line...)
			buf = append(buf, '\n')
			if uint64(len(buf)) > maxBuffered {
				return nil, ErrBodyContentSizeIsGreaterThanLimit
			}
		}
		return buf, nil
	default:
		return nil, nil
	}
}
