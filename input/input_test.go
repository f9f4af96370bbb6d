package input

import (
	"encoding/json"
	"testing"
)

func TestRequest_MarshalJSON(t *testing.T) {
	testCases := []struct {
		title    string
		command  string
		expected string
	}{
		{
			title:    "Empty query is written",
			command:  `curl -X put https://example.com/a`,
			expected: `{"method":"PUT","url":"https://example.com/a","query":{},"header":{}}`,
		},
		{
			title:    "No URL leaves out URL and query",
			command:  `curl -H 'A: 1'`,
			expected: `{"method":"GET","header":{"A":"1"}}`,
		},
		{
			title:    "Null body is written",
			command:  `curl -H 'Content-Type: application/json' -d null https://example.com?x=1`,
			expected: `{"method":"POST","url":"https://example.com/","query":{"x":"1"},"header":{"Content-Type":"application/json"},"body":null}`,
		},
		{
			title:    "Form body",
			command:  `curl -d 'b=2&a=1' https://example.com`,
			expected: `{"method":"POST","url":"https://example.com/","query":{},"header":{},"body":{"a":"1","b":"2"}}`,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			request, err := ParseCurl(tt.command)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Exercise
			actual, err := json.Marshal(request)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if string(actual) != tt.expected {
				t.Errorf("unexpected JSON: expected=%s, actual=%s", tt.expected, actual)
			}
		})
	}
}
