package helpers

import "net/http"

// CanonicalHeaders returns a copy of the headers with canonical names, so
// that "user-agent" read from a config file and "User-Agent" refer to the
// same header. Empty names are dropped.
func CanonicalHeaders(headers map[string]string) map[string]string {
	canonical := make(map[string]string, len(headers))

	for name, value := range headers {
		if name == "" {
			continue
		}
		canonical[http.CanonicalHeaderKey(name)] = value
	}

	return canonical
}
