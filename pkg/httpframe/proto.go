package httpframe

import "strings"

// Proto is the protocol token carried on an intro line. The framing core
// only parses HTTP/1.x wire shape, but the intro-line token itself is
// treated as data: an RTSP or ICE proto is accepted and passed through
// unmodified.
type Proto uint8

const (
	ProtoUnknown Proto = iota
	ProtoHTTP10
	ProtoHTTP11
	ProtoHTTP20
	ProtoHTTP30
	ProtoRTSP10
	ProtoICE10
)

var protoTokens = [...]string{
	ProtoUnknown: "",
	ProtoHTTP10:  "HTTP/1.0",
	ProtoHTTP11:  "HTTP/1.1",
	ProtoHTTP20:  "HTTP/2.0",
	ProtoHTTP30:  "HTTP/3.0",
	ProtoRTSP10:  "RTSP/1.0",
	ProtoICE10:   "ICE/1.0",
}

// String returns the canonical on-wire token for p, or the empty string for
// ProtoUnknown.
func (p Proto) String() string {
	if int(p) < len(protoTokens) {
		return protoTokens[p]
	}
	return ""
}

// ParseProto parses a protocol token case-insensitively. An unrecognised
// token returns (ProtoUnknown, ErrUnknownProto).
func ParseProto(token string) (Proto, error) {
	for id, known := range protoTokens {
		if id == int(ProtoUnknown) {
			continue
		}
		if strings.EqualFold(token, known) {
			return Proto(id), nil
		}
	}
	return ProtoUnknown, ErrUnknownProto
}
