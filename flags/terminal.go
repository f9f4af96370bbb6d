package flags

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/ssh/terminal"
)

type terminalInfo struct {
	stdinIsTerminal  bool
	stdoutIsTerminal bool
	// stdoutWidth is zero when stdout is not a terminal or its size is
	// unknown.
	stdoutWidth int
}

func detectTerminal() terminalInfo {
	info := terminalInfo{
		stdinIsTerminal:  isatty.IsTerminal(os.Stdin.Fd()),
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	}
	if info.stdoutIsTerminal {
		if width, _, err := terminal.GetSize(int(os.Stdout.Fd())); err == nil {
			info.stdoutWidth = width
		}
	}
	return info
}
