package header

// AddFields consumes "Name: Value\r\n" lines from the front of data until
// the input is exhausted, the capacity is reached, or the field grammar
// stops matching. Parsing is deliberately lenient: malformed input is
// never an error, the set simply keeps whatever fields were well-formed
// before the stopping condition.
//
// Obsolete line folding is honored: a line starting with whitespace
// continues the previous value, joined by a single space.
func (h *Header) AddFields(data []byte) {
	if len(data) == 0 || h.Size() >= h.limit {
		return
	}

	var (
		i     int
		n     = len(data)
		name  []byte
		value []byte
	)

	for i < n && h.Size() < h.limit {
		name = name[:0]
		value = value[:0]

		for i < n && isOWS(data[i]) {
			i++
		}

		for i < n && data[i] != ':' && !isCtl(data[i]) && !isOWS(data[i]) {
			name = append(name, data[i])
			i++
		}

		for i < n && isOWS(data[i]) {
			i++
		}

		// Anything but a colon here means the bytes in front of us are
		// no longer header fields. End of headers, not an error.
		if i >= n || data[i] != ':' {
			return
		}
		i++

		for i < n && isOWS(data[i]) {
			i++
		}

	scanValue:
		for i < n && data[i] != '\r' && data[i] != '\n' && !isCtl(data[i]) {
			value = append(value, data[i])
			i++
		}

		terminators := 0
		for i < n && (data[i] == '\r' || data[i] == '\n') {
			i++
			terminators++
		}

		// A run of exactly three terminators is the header/body
		// boundary with one terminator already consumed by the value
		// scan. The field in flight belongs to the boundary, not to
		// the header block.
		if terminators == 3 {
			return
		}

		// Whitespace after the terminator run folds the next line into
		// the current value.
		if i < n && isOWS(data[i]) {
			for i < n && isOWS(data[i]) {
				i++
			}
			if i < n && data[i] != '\r' && data[i] != '\n' && !isCtl(data[i]) {
				value = append(value, ' ')
				goto scanValue
			}
		}

		h.Add(string(name), string(value))
	}
}

func isOWS(c byte) bool {
	return c == ' ' || c == '\t'
}

func isCtl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
