package message

import "strconv"

// Version is the protocol version carried by a start line.
type Version struct {
	Major uint
	Minor uint
}

// DefaultVersion is HTTP/1.1, the version every default-constructed
// message speaks.
func DefaultVersion() Version {
	return Version{Major: 1, Minor: 1}
}

// String renders the version in wire form, e.g. "HTTP/1.1".
func (v Version) String() string {
	return "HTTP/" + strconv.FormatUint(uint64(v.Major), 10) +
		"." + strconv.FormatUint(uint64(v.Minor), 10)
}
