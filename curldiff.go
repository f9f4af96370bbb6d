package curldiff

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Youky1/curl-diff/compare"
	"github.com/Youky1/curl-diff/flags"
	"github.com/Youky1/curl-diff/input"
	"github.com/Youky1/curl-diff/output"
	"github.com/Youky1/curl-diff/version"
	"github.com/pkg/errors"
)

// ErrDifferent is returned by Main and Run when at least one field differs
// between the compared requests.
var ErrDifferent = errors.New("requests differ")

func Main() error {
	// Parse flags
	args, usage, optionSet, err := flags.Parse(os.Args)
	if err != nil {
		usage.PrintUsage(os.Stderr)
		return err
	}
	switch {
	case optionSet.ShowHelp:
		usage.PrintUsage(os.Stdout)
		return nil
	case optionSet.ShowVersion:
		fmt.Printf("curl-diff %s\n", version.Current())
		return nil
	case optionSet.ShowLicenses:
		version.PrintLicenses(os.Stdout)
		return nil
	}

	slog.SetDefault(newLogger(os.Stderr, optionSet.Verbose))

	writer := bufio.NewWriter(optionSet.OutputOptions.Writer)
	defer writer.Flush()
	optionSet.OutputOptions.Writer = writer

	err = Run(args, os.Stdin, optionSet)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		writer.Flush()
		usage.PrintUsage(os.Stderr)
	}
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run collects the curl commands named by args, compares them and prints
// the report.
func Run(args []string, stdin io.Reader, optionSet *flags.OptionSet) error {
	commands, err := input.CollectCommands(args, stdin, &optionSet.InputOptions)
	if err != nil {
		return err
	}
	slog.Debug("collected commands", "count", len(commands))

	report := &output.Report{}
	requests := make([]*input.Request, 0, len(commands))
	for i, command := range commands {
		request, err := input.ParseCurlWith(command, &optionSet.ParseOptions)
		if err != nil {
			slog.Debug("skipping command", "index", i+1, "err", err)
		} else {
			requests = append(requests, request)
		}
		if optionSet.OutputOptions.PrintRequests {
			report.Commands = append(report.Commands, output.Command{
				Index:   i,
				Source:  command,
				Request: request,
				Err:     err,
			})
		}
	}

	report.Result = compare.CompareRequestsWith(requests, &optionSet.CompareOptions)

	printer := output.NewPrinter(&optionSet.OutputOptions)
	if err := printer.Print(report); err != nil {
		return err
	}

	if !report.Result.Empty() && !report.Result.Same() {
		return ErrDifferent
	}
	return nil
}
