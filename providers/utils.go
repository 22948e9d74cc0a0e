package providers

import (
	"io"
	"strings"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

func parseFieldPath(path string) []string {
	if path == "" {
		return []string{"ip"}
	}

	return strings.Split(path, ".")
}

func extractField(data interface{}, path []string) (string, bool) {
	for _, key := range path {
		obj, ok := data.(map[string]interface{})
		if !ok {
			return "", false
		}

		if data, ok = obj[key]; !ok {
			return "", false
		}
	}

	value, ok := data.(string)

	return value, ok && value != ""
}
