package output

import (
	"fmt"
	"io"
	"net/url"
	"sort"

	"github.com/Youky1/curl-diff/compare"
	"github.com/Youky1/curl-diff/input"
	"github.com/logrusorgru/aurora"
)

const (
	fieldColumnWidth   = 8
	verdictColumnWidth = 10
	valueIndent        = "    "
)

type PrettyPrinter struct {
	writer        io.Writer
	aurora        aurora.Aurora
	width         int
	onlyDifferent bool
	headerPalette *HeaderPalette
	resultPalette *ResultPalette
}

type PrettyPrinterConfig struct {
	Writer        io.Writer
	EnableColor   bool
	Width         int
	OnlyDifferent bool
}

type HeaderPalette struct {
	Method         aurora.Color
	URL            aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Method:         aurora.BlueFg,
	URL:            aurora.CyanFg,
	FieldName:      aurora.GrayFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.GrayFg,
}

type ResultPalette struct {
	Field     aurora.Color
	Same      aurora.Color
	Different aurora.Color
	Index     aurora.Color
	Skipped   aurora.Color
}

var defaultResultPalette = ResultPalette{
	Field:     aurora.BoldFm,
	Same:      aurora.GreenFg,
	Different: aurora.RedFg | aurora.BoldFm,
	Index:     aurora.BrownFg,
	Skipped:   aurora.GrayFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:        config.Writer,
		aurora:        aurora.NewAurora(config.EnableColor),
		width:         config.Width,
		onlyDifferent: config.OnlyDifferent,
		headerPalette: &defaultHeaderPalette,
		resultPalette: &defaultResultPalette,
	}
}

func (p *PrettyPrinter) Print(report *Report) error {
	for _, command := range report.Commands {
		if err := p.PrintCommand(command); err != nil {
			return err
		}
	}
	return p.PrintResult(&report.Result)
}

// PrintCommand prints one parsed request, or why it was skipped.
func (p *PrettyPrinter) PrintCommand(command Command) error {
	index := p.aurora.Colorize(fmt.Sprintf("#%d", command.Index+1), p.resultPalette.Index)
	if command.Err != nil {
		fmt.Fprintf(p.writer, "%s %s\n\n", index,
			p.aurora.Colorize(fmt.Sprintf("skipped: %v", command.Err), p.resultPalette.Skipped))
		return nil
	}

	fmt.Fprintf(p.writer, "%s ", index)
	if err := p.PrintRequestLine(command.Request); err != nil {
		return err
	}
	if err := p.PrintHeader(command.Request.Header); err != nil {
		return err
	}
	if command.Request.HasBody {
		fmt.Fprintln(p.writer, p.fit(formatValue(command.Request.Body), 0))
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PrettyPrinter) PrintRequestLine(request *input.Request) error {
	target := request.URL
	if len(request.Query) > 0 {
		q := url.Values{}
		for k, v := range request.Query {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize(request.Method, p.headerPalette.Method),
		p.aurora.Colorize(target, p.headerPalette.URL))
	return nil
}

func (p *PrettyPrinter) PrintHeader(header map[string]string) error {
	var names []string
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(p.writer, "%s%s %s\n",
			p.aurora.Colorize(name, p.headerPalette.FieldName),
			p.aurora.Colorize(":", p.headerPalette.FieldSeparator),
			p.aurora.Colorize(p.fit(header[name], len(name)+2), p.headerPalette.FieldValue))
	}
	return nil
}

func (p *PrettyPrinter) PrintResult(result *compare.Result) error {
	if result.Empty() {
		fmt.Fprintln(p.writer, "No curl commands to compare")
		return nil
	}

	for _, field := range input.Fields {
		fr := result.Get(field)
		if fr == nil || (p.onlyDifferent && fr.Same) {
			continue
		}
		name := p.aurora.Colorize(fmt.Sprintf("%-*s", fieldColumnWidth, field), p.resultPalette.Field)

		if fr.Same {
			fmt.Fprintf(p.writer, "%s%s%s\n",
				name,
				p.aurora.Colorize(fmt.Sprintf("%-*s", verdictColumnWidth, "same"), p.resultPalette.Same),
				p.fit(formatValue(fr.Value), fieldColumnWidth+verdictColumnWidth))
			continue
		}

		fmt.Fprintf(p.writer, "%s%s\n",
			name,
			p.aurora.Colorize("different", p.resultPalette.Different))
		for i, v := range fr.Values {
			label := fmt.Sprintf("[%d] ", i+1)
			fmt.Fprintf(p.writer, "%s%s%s\n",
				valueIndent,
				p.aurora.Colorize(label, p.resultPalette.Index),
				p.fit(formatValue(v), len(valueIndent)+len(label)))
		}
	}
	return nil
}

// fit truncates s to what is left of the line after used columns.
func (p *PrettyPrinter) fit(s string, used int) string {
	if p.width <= 0 {
		return s
	}
	return truncate(s, p.width-used)
}
