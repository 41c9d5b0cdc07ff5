package api

import (
	"net/http"
	"strconv"
)

// parsePage extracts the 1-based page number from the ?page query parameter.
// Missing, malformed, or non-positive values default to 1. Out-of-range
// pages are not an error; listings return empty items with the true total.
func parsePage(r *http.Request) int {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return page
}

// parseID parses a positive int64 path parameter.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
