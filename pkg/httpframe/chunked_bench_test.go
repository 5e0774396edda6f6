package httpframe

import "testing"

func BenchmarkParseChunkHeader(b *testing.B) {
	buf := []byte("1a4;ieof\r\n")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := parseChunkHeader(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateHeaderValue(b *testing.B) {
	limits := DefaultLimits()
	value := "text/html; charset=utf-8"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := validateHeaderValue(value, limits); err != nil {
			b.Fatal(err)
		}
	}
}
