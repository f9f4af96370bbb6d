package input

import (
	"net/url"
	"strings"
)

// parseQueryString splits s into key/value pairs on "&" and the first "=".
// It never fails: a pair that does not unescape keeps its literal text, and
// ";" is an ordinary character. The last value of a repeated key wins.
func parseQueryString(s string) map[string]string {
	query := map[string]string{}
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		query[unescapeQuery(key)] = unescapeQuery(value)
	}
	return query
}

func unescapeQuery(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		return unescaped
	}
	return s
}
