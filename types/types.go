package types

// Method is an HTTP request method. The set is closed: anything outside
// it maps to INVALID.
type Method string

const (
	GET     Method = "GET"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	OPTIONS Method = "OPTIONS"
	HEAD    Method = "HEAD"
	TRACE   Method = "TRACE"
	CONNECT Method = "CONNECT"
	PATCH   Method = "PATCH"
	INVALID Method = "INVALID"
)

// ParseMethod maps a wire token onto the closed method set.
func ParseMethod(token string) Method {
	switch Method(token) {
	case GET, POST, PUT, DELETE, OPTIONS, HEAD, TRACE, CONNECT, PATCH:
		return Method(token)
	default:
		return INVALID
	}
}

var BadRequestResponse = []byte("HTTP/1.1 400 Bad Request\r\n" +
	"Content-Length: 11\r\n" +
	"Content-Type: text/plain\r\n\r\n" +
	"Bad Request")

var NotFoundResponse = []byte("HTTP/1.1 404 Not Found\r\n" +
	"Content-Length: 9\r\n" +
	"Content-Type: text/plain\r\n\r\n" +
	"Not Found")
