package httpframe

import "strings"

// splitHeaderLine separates one header line (terminator already stripped)
// into name and value at the first ':'. A leading space/tab on the line
// instead signals an obsolete line-folding continuation of the previous
// header, still seen on the wire; isContinuation reports that case so the
// caller can add the continuation text (leading whitespace removed) as a
// further value of the previous header instead of starting a new header.
func splitHeaderLine(line string) (name, value string, isContinuation bool, err error) {
	if line == "" {
		return "", "", false, ErrInvalidHeaderLine
	}
	if line[0] == ' ' || line[0] == '\t' {
		return "", strings.TrimLeft(line, " \t"), true, nil
	}
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false, ErrInvalidHeaderLine
	}
	name = line[:idx]
	value = strings.TrimSpace(line[idx+1:])
	return name, value, false, nil
}

// validateHeaderKey enforces the header-name rules: no CTLs, no
// whitespace, no encoded CRLF, within the configured length limit.
func validateHeaderKey(key string, limits Limits) error {
	if len(key) == 0 {
		return ErrInvalidHeaderKey
	}
	if limits.MaxHeaderKeyLength > 0 && len(key) > limits.MaxHeaderKeyLength {
		return ErrHeaderKeyGreaterThanLimit
	}
	if strings.Contains(key, "%0D") || strings.Contains(key, "%0d") ||
		strings.Contains(key, "%0A") || strings.Contains(key, "%0a") {
		return ErrHeaderKeyContainsEncodedCRLF
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c <= 0x20 || c == 0x7f || c == ':' {
			return ErrInvalidHeaderKey
		}
	}
	return nil
}

// validateHeaderValue enforces the header-value rules: not empty, not
// exactly ",", doesn't start with ',' or end with " ,", within the
// configured length limit, no encoded CRLF, and no embedded bare '\r' (a
// lone CR not immediately followed by '\n' is a parse error inside
// headers).
func validateHeaderValue(value string, limits Limits) error {
	if value == "" || value == "," {
		return ErrInvalidHeaderValue
	}
	if limits.MaxHeaderValueLength > 0 && len(value) > limits.MaxHeaderValueLength {
		return ErrHeaderValueGreaterThanLimit
	}
	if value[0] == ',' {
		return ErrInvalidHeaderValueStarter
	}
	if strings.HasSuffix(value, " ,") {
		return ErrInvalidHeaderValueEnder
	}
	if strings.Contains(value, "%0D") || strings.Contains(value, "%0d") ||
		strings.Contains(value, "%0A") || strings.Contains(value, "%0a") {
		return ErrHeaderValueContainsEncodedCRLF
	}
	for i := 0; i < len(value); i++ {
		if value[i] == '\r' {
			if i+1 >= len(value) || value[i+1] != '\n' {
				return ErrInvalidLine
			}
		}
	}
	return nil
}

// splitListValue splits a list-valued header's raw value on commas,
// trimming surrounding whitespace from each element and dropping empties
// produced by trailing/doubled commas.
func splitListValue(name HeaderName, value string) []string {
	if !name.isListValued() {
		return []string{value}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{value}
	}
	return out
}
