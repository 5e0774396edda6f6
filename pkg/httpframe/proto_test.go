package httpframe

import "testing"

func TestParseProto(t *testing.T) {
	cases := []struct {
		token string
		want  Proto
	}{
		{"HTTP/1.0", ProtoHTTP10},
		{"http/1.1", ProtoHTTP11},
		{"HTTP/2.0", ProtoHTTP20},
		{"RTSP/1.0", ProtoRTSP10},
		{"ICE/1.0", ProtoICE10},
	}
	for _, c := range cases {
		got, err := ParseProto(c.token)
		if err != nil {
			t.Errorf("ParseProto(%q) error: %v", c.token, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseProto(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}

func TestParseProtoUnknown(t *testing.T) {
	_, err := ParseProto("GOPHER/1.0")
	if err != ErrUnknownProto {
		t.Fatalf("expected ErrUnknownProto, got %v", err)
	}
}
