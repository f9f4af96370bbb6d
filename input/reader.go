package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxLineSize = 16 * 1024 * 1024

// ReadCommands splits r into curl commands. A line starting with "curl "
// begins a new command; following lines belong to it until a blank line,
// a comment line (#) or the next "curl " line. A trailing backslash always
// continues a command onto the next line.
func ReadCommands(r io.Reader) ([]string, error) {
	var commands []string
	var current strings.Builder
	continued := false

	flush := func() {
		if current.Len() > 0 {
			commands = append(commands, current.String())
			current.Reset()
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case continued && current.Len() > 0:
			current.WriteString("\n")
			current.WriteString(line)
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			flush()
		case strings.HasPrefix(trimmed, curlPrefix):
			flush()
			current.WriteString(trimmed)
		case current.Len() > 0:
			current.WriteString("\n")
			current.WriteString(line)
		default:
			// Not part of any curl command; kept so that callers can
			// report it as skipped.
			commands = append(commands, trimmed)
		}
		continued = strings.HasSuffix(line, "\\")
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading commands")
	}
	flush()
	return commands, nil
}
