package input

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadCommands(t *testing.T) {
	testCases := []struct {
		title    string
		input    string
		expected []string
	}{
		{
			title:    "Empty",
			input:    "",
			expected: nil,
		},
		{
			title: "One command per line",
			input: strings.Join([]string{
				`curl https://example.com/a`,
				`curl https://example.com/b`,
			}, "\n"),
			expected: []string{
				`curl https://example.com/a`,
				`curl https://example.com/b`,
			},
		},
		{
			title: "Continuations, comments and blank lines",
			input: strings.Join([]string{
				`# first`,
				`curl 'https://example.com/a' \`,
				``,
				`  -H 'A: 1'`,
				``,
				`   curl https://example.com/b   `,
				`  -X PUT`,
			}, "\r\n"),
			expected: []string{
				"curl 'https://example.com/a' \\\n\n  -H 'A: 1'",
				"curl https://example.com/b\n  -X PUT",
			},
		},
		{
			title: "Stray lines are kept",
			input: strings.Join([]string{
				`wget https://example.com`,
				``,
				`curl https://example.com`,
			}, "\n"),
			expected: []string{
				`wget https://example.com`,
				`curl https://example.com`,
			},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual, err := ReadCommands(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("unexpected commands: expected=%q, actual=%q", tt.expected, actual)
			}
		})
	}
}

func TestReadCommands_Parseable(t *testing.T) {
	input := "curl 'https://example.com/a' \\\n  -H 'A: 1' \\\n  --compressed\n"

	commands, err := ReadCommands(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if len(commands) != 1 {
		t.Fatalf("unexpected number of commands: %d", len(commands))
	}

	request, err := ParseCurl(commands[0])
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	expected := map[string]string{"A": "1", "Accept-Encoding": "deflate, gzip"}
	if !reflect.DeepEqual(request.Header, expected) {
		t.Errorf("unexpected header: expected=%v, actual=%v", expected, request.Header)
	}
}
