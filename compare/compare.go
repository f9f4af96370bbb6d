// Package compare decides, field by field, whether parsed curl requests
// are equivalent, ignoring header, query and object-key order.
package compare

import (
	"reflect"
	"strings"

	"github.com/Youky1/curl-diff/input"
)

// Options adjusts what is compared.
type Options struct {
	// IgnoreHeaders names headers (case-insensitive) left out of the
	// header comparison.
	IgnoreHeaders []string
}

// Compare parses commands and compares the ones that parse. Commands
// that are not curl invocations are skipped.
func Compare(commands []string) Result {
	requests := make([]*input.Request, 0, len(commands))
	for _, command := range commands {
		request, err := input.ParseCurl(command)
		if err != nil {
			continue
		}
		requests = append(requests, request)
	}
	return CompareRequests(requests)
}

// CompareRequests compares requests field by field. With no requests
// every field of the result is nil.
func CompareRequests(requests []*input.Request) Result {
	return CompareRequestsWith(requests, &Options{})
}

// CompareRequestsWith is CompareRequests with options. The requests
// themselves are not modified.
func CompareRequestsWith(requests []*input.Request, options *Options) Result {
	result := Result{}
	if len(requests) == 0 {
		return result
	}
	if len(options.IgnoreHeaders) > 0 {
		requests = withoutHeaders(requests, options.IgnoreHeaders)
	}
	for _, field := range input.Fields {
		result.set(field, compareField(requests, field))
	}
	return result
}

type fieldValue struct {
	raw       any
	canonical any
	present   bool
}

func compareField(requests []*input.Request, field input.Field) *FieldResult {
	values := make([]fieldValue, len(requests))
	for i, request := range requests {
		raw, ok := request.Value(field)
		values[i] = fieldValue{raw: raw, canonical: Canonicalize(raw), present: ok}
	}

	same := true
	for _, v := range values[1:] {
		if v.present != values[0].present || !reflect.DeepEqual(v.canonical, values[0].canonical) {
			same = false
			break
		}
	}

	if same {
		return &FieldResult{Same: true, Value: values[0].raw}
	}
	raws := make([]any, len(values))
	for i, v := range values {
		raws[i] = v.raw
	}
	return &FieldResult{Same: false, Values: raws}
}

func withoutHeaders(requests []*input.Request, names []string) []*input.Request {
	filtered := make([]*input.Request, len(requests))
	for i, request := range requests {
		r := *request
		r.Header = make(map[string]string, len(request.Header))
		for k, v := range request.Header {
			if !containsFold(names, k) {
				r.Header[k] = v
			}
		}
		filtered[i] = &r
	}
	return filtered
}

func containsFold(names []string, s string) bool {
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), s) {
			return true
		}
	}
	return false
}
