package input

import (
	"net/url"
	"regexp"
	"strings"
)

var reHTTPURL = regexp.MustCompile(`(?i)^https?://`)

func isURL(s string) bool {
	return reHTTPURL.MatchString(s)
}

// splitURL separates s into the query-less URL and its query parameters.
// When s cannot be split into a scheme and a host it is returned as is.
func splitURL(s string) (string, map[string]string) {
	rest, _, _ := strings.Cut(s, "#")
	_, rawQuery, _ := strings.Cut(rest, "?")
	query := parseQueryString(rawQuery)

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return s, query
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return u.Scheme + "://" + strings.ToLower(u.Host) + path, query
}
