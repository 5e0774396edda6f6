package httpframe

import "strconv"

// Status is a response status-line's numeric code and optional reason
// phrase. A missing reason phrase is valid on the wire: the writer drops
// the trailing space rather than emitting a dangling one.
type Status struct {
	Code   int
	Reason string
}

// reasonPhrases covers the common status codes with a pre-built reason
// phrase; used only to fill in a default Reason when an outbound Status is
// built with Reason left blank.
var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	429: "Too Many Requests",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
}

// ReasonPhrase returns the well-known reason phrase for code, or "" if code
// is not one of the statuses this package knows a default phrase for.
func ReasonPhrase(code int) string {
	return reasonPhrases[code]
}

// ParseStatusCode parses a 3-digit decimal status code. Any other shape is
// ErrInvalidStatus.
func ParseStatusCode(token string) (int, error) {
	if len(token) != 3 {
		return 0, ErrInvalidStatus
	}
	code, err := strconv.Atoi(token)
	if err != nil || code < 100 || code > 999 {
		return 0, ErrInvalidStatus
	}
	return code, nil
}

// IsInformational reports code in [100,200), used by HasNoBody to decide
// whether a response may carry a body.
func (s Status) IsInformational() bool { return s.Code >= 100 && s.Code < 200 }

// HasNoBody reports whether this status class never carries a body:
// 1xx, 204 No Content, and 304 Not Modified (RFC 7230 §3.3.3).
func (s Status) HasNoBody() bool {
	return s.IsInformational() || s.Code == 204 || s.Code == 304
}
