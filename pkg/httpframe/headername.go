package httpframe

import "strings"

// HeaderName is a canonicalised header name: a well-known name compares and
// hashes by its normalised form, while a Custom name carries the original
// token. Canonicalisation folds case and treats '-' and '_' as equivalent.
type HeaderName struct {
	id    headerID
	token string // set only when id == headerCustom; holds the canonical form
}

type headerID uint16

// The canonical name table, covering roughly the header names this
// package's own logic inspects plus the common ones a caller will want
// zero-allocation comparisons for. Anything else round-trips through
// headerCustom without losing information.
const (
	headerUnknown headerID = iota
	headerAccept
	headerAcceptCharset
	headerAcceptEncoding
	headerAcceptLanguage
	headerAcceptRanges
	headerAge
	headerAllow
	headerAuthorization
	headerCacheControl
	headerConnection
	headerContentDisposition
	headerContentEncoding
	headerContentLanguage
	headerContentLength
	headerContentLocation
	headerContentRange
	headerContentType
	headerCookie
	headerDate
	headerETag
	headerExpect
	headerExpires
	headerForwarded
	headerHost
	headerIfMatch
	headerIfModifiedSince
	headerIfNoneMatch
	headerIfRange
	headerIfUnmodifiedSince
	headerLastModified
	headerLocation
	headerOrigin
	headerPragma
	headerProxyAuthenticate
	headerProxyAuthorization
	headerRange
	headerReferer
	headerRetryAfter
	headerServer
	headerSetCookie
	headerTE
	headerTrailer
	headerTransferEncoding
	headerUpgrade
	headerUserAgent
	headerVary
	headerVia
	headerWWWAuthenticate
	headerWarning
	headerXForwardedFor
	headerXForwardedProto
	headerXRequestID
	headerCustom
)

var canonicalHeaderNames = [...]string{
	headerAccept:             "Accept",
	headerAcceptCharset:      "Accept-Charset",
	headerAcceptEncoding:     "Accept-Encoding",
	headerAcceptLanguage:     "Accept-Language",
	headerAcceptRanges:       "Accept-Ranges",
	headerAge:                "Age",
	headerAllow:              "Allow",
	headerAuthorization:      "Authorization",
	headerCacheControl:       "Cache-Control",
	headerConnection:         "Connection",
	headerContentDisposition: "Content-Disposition",
	headerContentEncoding:    "Content-Encoding",
	headerContentLanguage:    "Content-Language",
	headerContentLength:      "Content-Length",
	headerContentLocation:    "Content-Location",
	headerContentRange:       "Content-Range",
	headerContentType:        "Content-Type",
	headerCookie:             "Cookie",
	headerDate:               "Date",
	headerETag:               "ETag",
	headerExpect:             "Expect",
	headerExpires:            "Expires",
	headerForwarded:          "Forwarded",
	headerHost:               "Host",
	headerIfMatch:            "If-Match",
	headerIfModifiedSince:    "If-Modified-Since",
	headerIfNoneMatch:        "If-None-Match",
	headerIfRange:            "If-Range",
	headerIfUnmodifiedSince:  "If-Unmodified-Since",
	headerLastModified:       "Last-Modified",
	headerLocation:           "Location",
	headerOrigin:             "Origin",
	headerPragma:             "Pragma",
	headerProxyAuthenticate:  "Proxy-Authenticate",
	headerProxyAuthorization: "Proxy-Authorization",
	headerRange:              "Range",
	headerReferer:            "Referer",
	headerRetryAfter:         "Retry-After",
	headerServer:             "Server",
	headerSetCookie:          "Set-Cookie",
	headerTE:                 "TE",
	headerTrailer:            "Trailer",
	headerTransferEncoding:   "Transfer-Encoding",
	headerUpgrade:            "Upgrade",
	headerUserAgent:          "User-Agent",
	headerVary:               "Vary",
	headerVia:                "Via",
	headerWWWAuthenticate:    "WWW-Authenticate",
	headerWarning:            "Warning",
	headerXForwardedFor:      "X-Forwarded-For",
	headerXForwardedProto:    "X-Forwarded-Proto",
	headerXRequestID:         "X-Request-Id",
}

var headerNameLookup map[string]headerID

func init() {
	headerNameLookup = make(map[string]headerID, len(canonicalHeaderNames))
	for id, name := range canonicalHeaderNames {
		if name == "" {
			continue
		}
		headerNameLookup[foldHeaderName(name)] = headerID(id)
	}
}

// Well-known HeaderName values.
var (
	HeaderAccept           = HeaderName{id: headerAccept}
	HeaderAcceptEncoding   = HeaderName{id: headerAcceptEncoding}
	HeaderAcceptLanguage   = HeaderName{id: headerAcceptLanguage}
	HeaderCacheControl     = HeaderName{id: headerCacheControl}
	HeaderConnection       = HeaderName{id: headerConnection}
	HeaderContentLength    = HeaderName{id: headerContentLength}
	HeaderContentType      = HeaderName{id: headerContentType}
	HeaderCookie           = HeaderName{id: headerCookie}
	HeaderHost             = HeaderName{id: headerHost}
	HeaderLocation         = HeaderName{id: headerLocation}
	HeaderServer           = HeaderName{id: headerServer}
	HeaderSetCookie        = HeaderName{id: headerSetCookie}
	HeaderTransferEncoding = HeaderName{id: headerTransferEncoding}
	HeaderUpgrade          = HeaderName{id: headerUpgrade}
	HeaderUserAgent        = HeaderName{id: headerUserAgent}
	HeaderVary             = HeaderName{id: headerVary}
	HeaderVia              = HeaderName{id: headerVia}
)

// foldHeaderName normalises case and treats '-'/'_' as equivalent.
func foldHeaderName(name string) string {
	b := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case c == '_':
			c = '-'
		}
		b[i] = c
	}
	return string(b)
}

// ParseHeaderName canonicalises a header name token seen on the wire. A
// name matching one of the well-known tokens (ignoring case, with '_'
// treated as '-')
// returns that HeaderName; otherwise the token is preserved verbatim in a
// Custom HeaderName, with canonical display form taken from the original
// bytes (NOT forced to any case) so a Custom header still round-trips byte
// for byte.
func ParseHeaderName(token string) HeaderName {
	if id, ok := headerNameLookup[foldHeaderName(token)]; ok {
		return HeaderName{id: id}
	}
	return HeaderName{id: headerCustom, token: token}
}

// String returns the canonical display form: the well-known name's
// canonical casing, or the verbatim token for a Custom header.
func (h HeaderName) String() string {
	if h.id == headerCustom {
		return h.token
	}
	if int(h.id) < len(canonicalHeaderNames) {
		return canonicalHeaderNames[h.id]
	}
	return ""
}

// Equal compares two HeaderNames case-insensitively (and -/_ insensitively
// for Custom names, to match well-known folding behaviour).
func (h HeaderName) Equal(o HeaderName) bool {
	if h.id != headerCustom && o.id != headerCustom {
		return h.id == o.id
	}
	return strings.EqualFold(foldHeaderName(h.String()), foldHeaderName(o.String()))
}

// isListValued reports whether repeated/comma-joined values for this header
// should be split into a value sequence by the reader; this only applies
// to headers known to be list-valued.
func (h HeaderName) isListValued() bool {
	switch h.id {
	case headerAccept, headerAcceptCharset, headerAcceptEncoding, headerAcceptLanguage,
		headerConnection, headerTransferEncoding, headerVia, headerVary, headerTE, headerTrailer:
		return true
	default:
		return false
	}
}
