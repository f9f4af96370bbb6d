package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"code.cloudfoundry.org/bytefmt"
)

const ellipsis = "..."

// formatValue renders a raw field value on a single line. Top-level
// strings are printed as is, everything else as compact JSON with binary
// blobs replaced by their size.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "(none)"
	case string:
		return v
	case []byte:
		return formatBinary(v)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(displayable(v)); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func formatBinary(b []byte) string {
	return fmt.Sprintf("<binary %s>", bytefmt.ByteSize(uint64(len(b))))
}

// displayable replaces []byte leaves so that JSON shows sizes instead of
// base64.
func displayable(v any) any {
	switch v := v.(type) {
	case []byte:
		return formatBinary(v)
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = displayable(e)
		}
		return m
	case []any:
		a := make([]any, len(v))
		for i, e := range v {
			a[i] = displayable(e)
		}
		return a
	default:
		return v
	}
}

// truncate shortens s to at most width runes. A width below the length
// of the ellipsis disables truncation.
func truncate(s string, width int) string {
	if width <= len(ellipsis) || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-len(ellipsis)]) + ellipsis
}
