package flags

import (
	"io"
	"os"
	"strings"

	"github.com/Youky1/curl-diff/compare"
	"github.com/Youky1/curl-diff/input"
	"github.com/Youky1/curl-diff/output"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

type Usage interface {
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions   input.Options
	ParseOptions   input.ParseOptions
	CompareOptions compare.Options
	OutputOptions  output.Options

	Verbose      bool
	ShowHelp     bool
	ShowVersion  bool
	ShowLicenses bool
}

// Parse parses os.Args-style arguments and returns the positional
// arguments, which are curl commands or files to read them from.
func Parse(args []string) ([]string, Usage, *OptionSet, error) {
	return parse(args, detectTerminal())
}

func parse(args []string, terminalInfo terminalInfo) ([]string, Usage, *OptionSet, error) {
	inputOptions := input.Options{}
	compareOptions := compare.Options{}
	parseOptions := input.ParseOptions{}
	outputOptions := output.Options{Writer: os.Stdout}
	optionSet := &OptionSet{}
	var ignoreStdin bool
	color := "auto"

	flagSet := getopt.New()
	flagSet.SetProgram("curldiff")
	flagSet.SetParameters("[COMMAND | FILE ...]")
	flagSet.BoolVarLong(&parseOptions.ExtendedFlags, "extended-flags", 'x', "also recognize curl's -A, -b, --url, --json and -I")
	flagSet.BoolVarLong(&outputOptions.JSON, "json", 'j', "print the result as JSON")
	flagSet.BoolVarLong(&outputOptions.PrintRequests, "requests", 'r', "print every parsed request before the result")
	flagSet.BoolVarLong(&outputOptions.OnlyDifferent, "only-different", 's', "print only fields that differ")
	flagSet.ListVarLong(&compareOptions.IgnoreHeaders, "ignore-header", 'i', "leave header NAME out of the comparison (repeatable, comma separated)", "NAME")
	flagSet.StringVarLong(&color, "color", 0, "colorize output: auto, always or never", "WHEN")
	flagSet.BoolVarLong(&ignoreStdin, "ignore-stdin", 0, "do not attempt to read stdin")
	flagSet.BoolVarLong(&optionSet.Verbose, "verbose", 'v', "log skipped commands to stderr")
	flagSet.BoolVarLong(&optionSet.ShowVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.ShowLicenses, "licenses", 0, "print third-party licenses and exit")
	flagSet.BoolVarLong(&optionSet.ShowHelp, "help", 'h', "print this help and exit")
	if err := flagSet.Getopt(args, nil); err != nil {
		return nil, flagSet, nil, errors.Wrap(err, "parsing flags")
	}

	// Check stdin
	if !ignoreStdin && !terminalInfo.stdinIsTerminal {
		inputOptions.ReadStdin = true
	}

	// Color
	enableColor, err := parseColorFlag(color, terminalInfo)
	if err != nil {
		return nil, flagSet, nil, err
	}
	outputOptions.EnableColor = enableColor && !outputOptions.JSON
	outputOptions.Width = terminalInfo.stdoutWidth

	optionSet.InputOptions = inputOptions
	optionSet.ParseOptions = parseOptions
	optionSet.CompareOptions = compareOptions
	optionSet.OutputOptions = outputOptions
	return flagSet.Args(), flagSet, optionSet, nil
}

func parseColorFlag(color string, terminalInfo terminalInfo) (bool, error) {
	switch strings.ToLower(color) {
	case "auto":
		return terminalInfo.stdoutIsTerminal, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, errors.Errorf("Value of --color must be auto, always or never: %s", color)
	}
}
