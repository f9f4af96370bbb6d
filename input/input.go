package input

import "encoding/json"

// Field names one of the five comparable parts of a Request.
type Field string

const (
	MethodField Field = "method"
	URLField    Field = "url"
	QueryField  Field = "query"
	HeaderField Field = "header"
	BodyField   Field = "body"
)

// Fields lists every comparable field in display order.
var Fields = []Field{MethodField, URLField, QueryField, HeaderField, BodyField}

const defaultMethod = "GET"

// Request is the structured form of one curl command.
type Request struct {
	Method string
	// URL is scheme, host and path without the query string. Empty when
	// the command had no URL.
	URL string
	// Query is nil when the command had no URL.
	Query  map[string]string
	Header map[string]string
	// Body holds decoded JSON, a form mapping, a multipart field mapping
	// or the raw payload. HasBody tells a JSON null apart from no body.
	Body    any
	HasBody bool
}

// MarshalJSON follows the presence rules of Value: an empty query and a
// null body are written, a missing URL, query or body is left out.
func (r Request) MarshalJSON() ([]byte, error) {
	out := struct {
		Method string             `json:"method"`
		URL    string             `json:"url,omitempty"`
		Query  *map[string]string `json:"query,omitempty"`
		Header map[string]string  `json:"header"`
		Body   *any               `json:"body,omitempty"`
	}{
		Method: r.Method,
		URL:    r.URL,
		Header: r.Header,
	}
	if r.Query != nil {
		out.Query = &r.Query
	}
	if r.HasBody {
		out.Body = &r.Body
	}
	return json.Marshal(out)
}

func newRequest() *Request {
	return &Request{
		Method: defaultMethod,
		Header: map[string]string{},
	}
}

// Value returns the raw value of field and whether the request has it.
func (r *Request) Value(field Field) (any, bool) {
	switch field {
	case MethodField:
		return r.Method, true
	case URLField:
		if r.URL == "" {
			return nil, false
		}
		return r.URL, true
	case QueryField:
		if r.Query == nil {
			return nil, false
		}
		return r.Query, true
	case HeaderField:
		return r.Header, true
	case BodyField:
		if !r.HasBody {
			return nil, false
		}
		return r.Body, true
	default:
		return nil, false
	}
}

// Options controls how curl commands are collected by the CLI.
type Options struct {
	ReadStdin bool
}
