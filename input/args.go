package input

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const stdinName = "-"

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// CollectCommands turns positional arguments into curl commands. An argument
// starting with "curl " is a command itself; any other argument names a file
// to read commands from, "-" being stdin. Without arguments stdin is read
// when options.ReadStdin is set.
func CollectCommands(args []string, stdin io.Reader, options *Options) ([]string, error) {
	var commands []string
	stdinUsed := false

	readFrom := func(name string, r io.Reader) error {
		cs, err := ReadCommands(r)
		if err != nil {
			return errors.Wrapf(err, "reading commands from %s", name)
		}
		commands = append(commands, cs...)
		return nil
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(strings.TrimSpace(arg), curlPrefix):
			commands = append(commands, strings.TrimSpace(arg))
		case arg == stdinName:
			if stdinUsed {
				continue
			}
			stdinUsed = true
			if err := readFrom("stdin", stdin); err != nil {
				return nil, err
			}
		default:
			if err := readFile(arg, readFrom); err != nil {
				return nil, err
			}
		}
	}

	if len(args) == 0 && options.ReadStdin {
		if err := readFrom("stdin", stdin); err != nil {
			return nil, err
		}
	}

	if len(commands) == 0 {
		return nil, newUsageError("at least one curl command is required")
	}
	return commands, nil
}

func readFile(path string, readFrom func(string, io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return readFrom(path, f)
}
