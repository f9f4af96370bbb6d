package compare

import (
	"encoding/json"

	"github.com/Youky1/curl-diff/input"
)

// FieldResult is the verdict for one field. Value holds the first raw value
// when Same is true; otherwise Values holds every raw value in input order,
// nil where a request lacked the field.
type FieldResult struct {
	Same   bool
	Value  any
	Values []any
}

func (r *FieldResult) MarshalJSON() ([]byte, error) {
	if r.Same {
		return json.Marshal(struct {
			Same  bool `json:"same"`
			Value any  `json:"value"`
		}{true, r.Value})
	}
	return json.Marshal(struct {
		Same   bool  `json:"same"`
		Values []any `json:"values"`
	}{false, r.Values})
}

// Result holds one FieldResult per field. Every field is nil when nothing
// was compared.
type Result struct {
	Method *FieldResult `json:"method"`
	URL    *FieldResult `json:"url"`
	Query  *FieldResult `json:"query"`
	Header *FieldResult `json:"header"`
	Body   *FieldResult `json:"body"`
}

// Get returns the result for field.
func (r *Result) Get(field input.Field) *FieldResult {
	switch field {
	case input.MethodField:
		return r.Method
	case input.URLField:
		return r.URL
	case input.QueryField:
		return r.Query
	case input.HeaderField:
		return r.Header
	case input.BodyField:
		return r.Body
	default:
		return nil
	}
}

func (r *Result) set(field input.Field, fr *FieldResult) {
	switch field {
	case input.MethodField:
		r.Method = fr
	case input.URLField:
		r.URL = fr
	case input.QueryField:
		r.Query = fr
	case input.HeaderField:
		r.Header = fr
	case input.BodyField:
		r.Body = fr
	}
}

// Empty reports whether nothing was compared.
func (r *Result) Empty() bool {
	for _, field := range input.Fields {
		if r.Get(field) != nil {
			return false
		}
	}
	return true
}

// Same reports whether every compared field agrees. An empty result is
// not Same.
func (r *Result) Same() bool {
	if r.Empty() {
		return false
	}
	for _, field := range input.Fields {
		if fr := r.Get(field); fr != nil && !fr.Same {
			return false
		}
	}
	return true
}
