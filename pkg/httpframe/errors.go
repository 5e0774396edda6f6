// Package httpframe implements a low-level HTTP/1.1 framing layer: a
// pull-style reader that turns a peekable byte stream into a sequence of
// structured request/response parts, and a resumable writer that turns a
// structured message back into wire bytes.
package httpframe

import "errors"

// Reader errors - pre-allocated for zero runtime allocation on the hot path.
var (
	// ErrUnknownProto indicates the intro line's protocol token is not recognised.
	ErrUnknownProto = errors.New("httpframe: unknown protocol token")

	// ErrInvalidStatus indicates a response status-line's code did not parse.
	ErrInvalidStatus = errors.New("httpframe: invalid status code")

	// ErrInvalidHeaderLine indicates a header line has no ':' and is not a
	// valid continuation of a preceding header.
	ErrInvalidHeaderLine = errors.New("httpframe: invalid header line")

	// ErrInvalidHeaderKey indicates a header name contains CTLs or whitespace.
	ErrInvalidHeaderKey = errors.New("httpframe: invalid header key")

	// ErrInvalidHeaderValue indicates a header value is empty, or is exactly ",".
	ErrInvalidHeaderValue = errors.New("httpframe: invalid header value")

	// ErrInvalidHeaderValueStarter indicates a header value starts with ','.
	ErrInvalidHeaderValueStarter = errors.New("httpframe: header value starts with ','")

	// ErrInvalidHeaderValueEnder indicates a header value ends with " ,".
	ErrInvalidHeaderValueEnder = errors.New("httpframe: header value ends with ' ,'")

	// ErrHeaderKeyContainsEncodedCRLF indicates a header name contains "%0D" or "%0A".
	ErrHeaderKeyContainsEncodedCRLF = errors.New("httpframe: header key contains encoded CRLF")

	// ErrHeaderValueContainsEncodedCRLF indicates a header value contains "%0D" or "%0A".
	ErrHeaderValueContainsEncodedCRLF = errors.New("httpframe: header value contains encoded CRLF")

	// ErrHeaderKeyGreaterThanLimit indicates a header name exceeded max_header_key_length.
	ErrHeaderKeyGreaterThanLimit = errors.New("httpframe: header key exceeds configured limit")

	// ErrHeaderValueGreaterThanLimit indicates a header value exceeded max_header_value_length.
	ErrHeaderValueGreaterThanLimit = errors.New("httpframe: header value exceeds configured limit")

	// ErrInvalidContentSizeValue indicates Content-Length did not parse as a clean decimal u64.
	ErrInvalidContentSizeValue = errors.New("httpframe: invalid Content-Length value")

	// ErrAmbiguousContentLength indicates duplicate Content-Length headers with differing values.
	ErrAmbiguousContentLength = errors.New("httpframe: ambiguous Content-Length headers")

	// ErrContentLengthWithTransferEncoding indicates both framing headers were present (smuggling).
	ErrContentLengthWithTransferEncoding = errors.New("httpframe: Content-Length with Transfer-Encoding")

	// ErrInvalidTransferEncoding indicates Transfer-Encoding's last token was not "chunked".
	ErrInvalidTransferEncoding = errors.New("httpframe: invalid Transfer-Encoding (last coding is not chunked)")

	// ErrBodyContentSizeIsGreaterThanLimit indicates a sized body exceeded max_body_length.
	ErrBodyContentSizeIsGreaterThanLimit = errors.New("httpframe: body content size greater than limit")

	// ErrLimitReached indicates a bounded chunked iterator exceeded its cap.
	ErrLimitReached = errors.New("httpframe: body size limit reached")

	// ErrInvalidChunkSize indicates the chunk size octet string did not parse as hex,
	// or a chunk extension after ';' had an empty key.
	ErrInvalidChunkSize = errors.New("httpframe: invalid chunk size")

	// ErrInvalidChunkEnding indicates a chunk header was not terminated by CRLF.
	ErrInvalidChunkEnding = errors.New("httpframe: invalid chunk ending")

	// ErrSeeTrailerBeforeLastChunk indicates a trailer line was seen outside the drain-trailers state.
	ErrSeeTrailerBeforeLastChunk = errors.New("httpframe: trailer seen before last chunk")

	// ErrInvalidTrailerWithNoValue indicates a trailer line after the last chunk has no ':'.
	ErrInvalidTrailerWithNoValue = errors.New("httpframe: invalid trailer with no value")

	// ErrReadFailed wraps a generic I/O failure from the underlying stream.
	ErrReadFailed = errors.New("httpframe: read failed")

	// ErrLineReadFailed wraps an I/O failure while reading a line.
	ErrLineReadFailed = errors.New("httpframe: line read failed")

	// ErrGuardedResourceAccess indicates the shared stream's exclusive-access guard was contended.
	ErrGuardedResourceAccess = errors.New("httpframe: guarded resource access")

	// ErrBiggerThanCapacity indicates a peek() request exceeded the stream's buffer capacity.
	ErrBiggerThanCapacity = errors.New("httpframe: peek request bigger than buffer capacity")

	// ErrTooManyBlankLines indicates more leading blank lines were seen than MaxLeadingBlankLines.
	ErrTooManyBlankLines = errors.New("httpframe: too many leading blank lines")
)

// Writer errors.
var (
	// ErrHeadersRequired indicates a Writer was asked to emit a message with no headers.
	ErrHeadersRequired = errors.New("httpframe: at least one header is required")

	// ErrEncodingError wraps a failure while serialising a body chunk.
	ErrEncodingError = errors.New("httpframe: encoding error")

	// ErrInvalidSituationUsedIterator indicates next() was called on an iterator past End/Finished.
	ErrInvalidSituationUsedIterator = errors.New("httpframe: iterator used after completion")
)

// ErrInvalidLine is the sentinel matched by InvalidLineError.Is. It lets
// callers write errors.Is(err, ErrInvalidLine) without inspecting the
// offending line text.
var ErrInvalidLine = errors.New("httpframe: invalid line")

// InvalidLineError carries the offending intro line alongside ErrInvalidLine.
type InvalidLineError struct {
	Line string
}

func (e *InvalidLineError) Error() string {
	return "httpframe: invalid line: " + e.Line
}

// Is allows errors.Is(err, ErrInvalidLine) to match, per Go's wrapping convention.
func (e *InvalidLineError) Is(target error) bool {
	return target == ErrInvalidLine
}

// LimitReachedError carries the configured cap that a bounded chunked
// iterator exceeded.
type LimitReachedError struct {
	Cap uint64
}

func (e *LimitReachedError) Error() string {
	return "httpframe: body size limit reached (cap=" + uitoa(e.Cap) + " bytes)"
}

func (e *LimitReachedError) Is(target error) bool {
	return target == ErrLimitReached
}
