package uri

import "net/url"

// URI is an opaque wrapper around a parsed request target. The message
// model only ever needs parse, stringify and query lookup; everything
// else stays behind this boundary.
type URI struct {
	url *url.URL
}

// Parse parses a raw request target.
func Parse(raw string) (*URI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &URI{url: u}, nil
}

// Root returns the default request target, "/".
func Root() *URI {
	return &URI{url: &url.URL{Path: "/"}}
}

// String renders the target back into its wire form.
func (u *URI) String() string {
	if u == nil || u.url == nil {
		return ""
	}
	return u.url.String()
}

// Path returns the path component of the target.
func (u *URI) Path() string {
	if u == nil || u.url == nil {
		return ""
	}
	return u.url.Path
}

// Query returns the first value bound to name in the query component,
// or "" when the parameter is absent.
func (u *URI) Query(name string) string {
	if u == nil || u.url == nil {
		return ""
	}
	return u.url.Query().Get(name)
}
