package header

// DefaultFieldLimit is the capacity a header set gets when no explicit
// limit is supplied.
const DefaultFieldLimit = 25

// Field is a single name-value pair. The name keeps the casing it was
// stored with; lookups compare names case-insensitively.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered, capacity-bounded set of fields. Insertion order
// is preserved through serialization and duplicate names are permitted.
// A Header is not safe for concurrent mutation.
type Header struct {
	fields []Field
	limit  int
}

// New creates an empty header set limited to DefaultFieldLimit fields.
func New() *Header {
	return NewWithLimit(DefaultFieldLimit)
}

// NewWithLimit creates an empty header set that accepts at most limit
// fields. A non-positive limit falls back to the default.
func NewWithLimit(limit int) *Header {
	if limit <= 0 {
		limit = DefaultFieldLimit
	}
	return &Header{
		fields: make([]Field, 0, limit),
		limit:  limit,
	}
}

// Parse creates a header set and fills it from a raw header block. The
// input is parsed leniently; malformed text just yields fewer fields.
func Parse(data []byte, limit int) *Header {
	h := NewWithLimit(limit)
	h.AddFields(data)
	return h
}

// Limit returns the capacity fixed at construction.
func (h *Header) Limit() int {
	return h.limit
}

// Add appends a field. It reports false, storing nothing, when the name
// or value is empty or the set is full.
func (h *Header) Add(name, value string) bool {
	if name == "" || value == "" || len(h.fields) >= h.limit {
		return false
	}
	h.fields = append(h.fields, Field{Name: name, Value: value})
	return true
}

// Set overwrites the value of the first field matching name, or adds the
// field when absent. Failure conditions are the same as for Add.
func (h *Header) Set(name, value string) bool {
	if name == "" || value == "" {
		return false
	}
	if i := h.find(name); i != -1 {
		h.fields[i].Value = value
		return true
	}
	return h.Add(name, value)
}

// Value returns the value of the first field matching name, or "" when
// no such field exists. Absence is not an error; use Has to tell an
// absent field from an empty result.
func (h *Header) Value(name string) string {
	if i := h.find(name); i != -1 {
		return h.fields[i].Value
	}
	return ""
}

// Has reports whether a field with the given name is present.
func (h *Header) Has(name string) bool {
	return h.find(name) != -1
}

// Size returns the number of fields currently stored.
func (h *Header) Size() int {
	return len(h.fields)
}

// IsEmpty reports whether no fields are stored.
func (h *Header) IsEmpty() bool {
	return len(h.fields) == 0
}

// Erase removes every field matching name, not just the first.
func (h *Header) Erase(name string) {
	if name == "" {
		return
	}
	kept := h.fields[:0]
	for _, f := range h.fields {
		if !equalASCIIFold(f.Name, name) {
			kept = append(kept, f)
		}
	}
	h.fields = kept
}

// Clear removes all fields.
func (h *Header) Clear() {
	h.fields = h.fields[:0]
}

// Fields returns the stored fields in insertion order. The slice is the
// set's backing storage and must not be mutated by the caller.
func (h *Header) Fields() []Field {
	return h.fields
}

// Bytes serializes the set as "Name: Value\r\n" per field, in insertion
// order, followed by the end-of-headers blank line. The header set owns
// that terminator; enclosing messages never emit a second one.
func (h *Header) Bytes() []byte {
	size := 2
	for _, f := range h.fields {
		size += len(f.Name) + 2 + len(f.Value) + 2
	}

	buf := make([]byte, 0, size)
	for _, f := range h.fields {
		buf = append(buf, f.Name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.Value...)
		buf = append(buf, '\r', '\n')
	}
	buf = append(buf, '\r', '\n')
	return buf
}

func (h *Header) String() string {
	return string(h.Bytes())
}

func (h *Header) find(name string) int {
	if name == "" {
		return -1
	}
	for i, f := range h.fields {
		if equalASCIIFold(f.Name, name) {
			return i
		}
	}
	return -1
}

// equalASCIIFold compares two names byte for byte, folding only ASCII
// letters. Field names are token characters, so Unicode case folding
// never applies.
func equalASCIIFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
