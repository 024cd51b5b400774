package response

import "strings"

// resolveFileURL turns an upstream file reference into an absolute URL.
// The freight API sometimes returns bare media paths and sometimes full
// URLs depending on how the file was stored.
func resolveFileURL(baseHost, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return baseHost + ref
}
