package httpframe

// Headers is an ordered mapping from HeaderName to a sequence of string
// values: keys are unique, but each key retains its values in the order
// they were added, including multiple occurrences of the same logical
// header. Order matters here because Transfer-Encoding framing decisions
// depend on which coding in the list is last.
//
// This is an ordered-slice design rather than a fixed-array one: it trades
// some zero-allocation storage for the ability to preserve multi-occurrence
// order, not just look-up speed.
type Headers struct {
	order []HeaderName
	vals  map[headerKey][]string
}

// headerKey is the map key: for well-known names it's just the id, for
// Custom names it's keyed by the folded token so "X-Foo" and "x-foo"
// collide into the same entry while still displaying the first-seen case.
type headerKey struct {
	id    headerID
	token string
}

func keyOf(h HeaderName) headerKey {
	if h.id == headerCustom {
		return headerKey{id: headerCustom, token: foldHeaderName(h.token)}
	}
	return headerKey{id: h.id}
}

// NewHeaders returns an empty Headers map.
func NewHeaders() *Headers {
	return &Headers{vals: make(map[headerKey][]string)}
}

// Add appends value to name's sequence, adding name to the order if this is
// its first occurrence.
func (h *Headers) Add(name HeaderName, value string) {
	k := keyOf(name)
	if _, ok := h.vals[k]; !ok {
		h.order = append(h.order, name)
	}
	h.vals[k] = append(h.vals[k], value)
}

// Set replaces name's entire value sequence with a single value.
func (h *Headers) Set(name HeaderName, value string) {
	k := keyOf(name)
	if _, ok := h.vals[k]; !ok {
		h.order = append(h.order, name)
	}
	h.vals[k] = []string{value}
}

// Get returns the first value for name, and whether name is present at all.
func (h *Headers) Get(name HeaderName) (string, bool) {
	vs, ok := h.vals[keyOf(name)]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Values returns the full ordered value sequence for name.
func (h *Headers) Values(name HeaderName) []string {
	return h.vals[keyOf(name)]
}

// Has reports whether name has at least one value.
func (h *Headers) Has(name HeaderName) bool {
	_, ok := h.vals[keyOf(name)]
	return ok
}

// Del removes name and its values entirely.
func (h *Headers) Del(name HeaderName) {
	k := keyOf(name)
	if _, ok := h.vals[k]; !ok {
		return
	}
	delete(h.vals, k)
	for i, n := range h.order {
		if keyOf(n) == k {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of distinct header names present.
func (h *Headers) Len() int {
	return len(h.order)
}

// VisitAll calls visit once per (name, value) pair in insertion order, for
// serialisation use (writer.go).
func (h *Headers) VisitAll(visit func(name HeaderName, value string)) {
	for _, name := range h.order {
		for _, v := range h.vals[keyOf(name)] {
			visit(name, v)
		}
	}
}

// Names returns the header names in insertion order.
func (h *Headers) Names() []HeaderName {
	out := make([]HeaderName, len(h.order))
	copy(out, h.order)
	return out
}

// Clone returns a deep copy of h, sharing no backing storage.
func (h *Headers) Clone() *Headers {
	out := NewHeaders()
	out.order = append(out.order, h.order...)
	for k, v := range h.vals {
		cp := make([]string, len(v))
		copy(cp, v)
		out.vals[k] = cp
	}
	return out
}
