package input

import (
	"encoding/json"
	"strings"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

type decoded struct {
	value any
	ok    bool
}

func (d decoded) or(raw string) any {
	if !d.ok {
		return raw
	}
	return d.value
}

// DecodeBody interprets a -d payload according to contentType. JSON and
// form-urlencoded payloads are decoded; anything else, or JSON that fails
// to decode, is returned as the raw string. Form decoding never fails.
func DecodeBody(raw, contentType string) any {
	if contentType == "" {
		contentType = contentTypeForm
	}
	switch {
	case strings.Contains(contentType, contentTypeJSON):
		return decodeJSON(raw).or(raw)
	case strings.Contains(contentType, contentTypeForm):
		return decodeForm(raw)
	default:
		return raw
	}
}

func decodeJSON(raw string) decoded {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return decoded{}
	}
	return decoded{value: v, ok: true}
}

func decodeForm(raw string) map[string]any {
	query := parseQueryString(raw)
	form := make(map[string]any, len(query))
	for name, v := range query {
		form[name] = v
	}
	return form
}
