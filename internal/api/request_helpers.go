package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// releaseDateFormats lists the accepted layouts for release dates,
// tried in order.
var releaseDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
}

// getPathID extracts a numeric entity ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("path parameter %q is required", paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q must be an integer", paramName)
	}

	return id, nil
}

// parseReleaseDate parses a release date supplied by a client,
// accepting a plain date or a full RFC 3339 timestamp.
func parseReleaseDate(value string) (time.Time, error) {
	for _, layout := range releaseDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized release date %q", value)
}
