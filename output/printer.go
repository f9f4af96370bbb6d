package output

import (
	"github.com/Youky1/curl-diff/compare"
	"github.com/Youky1/curl-diff/input"
)

// Command is one input command together with its parse outcome.
type Command struct {
	Index   int
	Source  string
	Request *input.Request
	Err     error
}

// Report is everything a Printer renders for one run.
type Report struct {
	// Commands is only filled when the parsed requests should be shown.
	Commands []Command
	Result   compare.Result
}

type Printer interface {
	Print(report *Report) error
}

// NewPrinter returns the printer selected by options.
func NewPrinter(options *Options) Printer {
	if options.JSON {
		return NewJSONPrinter(options.Writer)
	}
	return NewPrettyPrinter(PrettyPrinterConfig{
		Writer:        options.Writer,
		EnableColor:   options.EnableColor,
		Width:         options.Width,
		OnlyDifferent: options.OnlyDifferent,
	})
}
