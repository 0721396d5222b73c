package constants

import "strings"

// ArtifactTypes holds the allowed declared types for uploaded job artifacts.
var ArtifactTypes = []string{"PDF", "IMAGE", "TXT"}

// AllowedContentTypes maps upload MIME types to the stored artifact type.
var AllowedContentTypes = map[string]string{
	"application/pdf": "PDF",
	"image/jpeg":      "IMAGE",
	"image/png":       "IMAGE",
	"image/tiff":      "IMAGE",
	"text/plain":      "TXT",
}

// MapContentType resolves a declared MIME type to an artifact type, or "".
func MapContentType(ct string) string {
	normalized := strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(normalized, ';'); i >= 0 {
		normalized = strings.TrimSpace(normalized[:i])
	}
	return AllowedContentTypes[normalized]
}
