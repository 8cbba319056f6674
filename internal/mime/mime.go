package mime

import "strings"

// extensionTypes is filled once at startup and read-only afterwards.
var extensionTypes = map[string]string{
	// Text
	"html": "text/html",
	"htm":  "text/html",
	"js":   "text/javascript",
	"txt":  "text/plain",
	"css":  "text/css",
	"xml":  "text/xml",

	// Image
	"bmp":  "image/bmp",
	"gif":  "image/gif",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"ico":  "image/x-icon",

	// Application
	"json": "application/json",
	"bin":  "application/octet-stream",
}

// ByExtension returns the content type registered for a file extension,
// with or without its leading dot, falling back to text/plain.
func ByExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return "text/plain"
}
