package output

import (
	"encoding/json"
	"io"

	"github.com/Youky1/curl-diff/compare"
	"github.com/Youky1/curl-diff/input"
	"github.com/pkg/errors"
)

type JSONPrinter struct {
	writer io.Writer
}

func NewJSONPrinter(writer io.Writer) Printer {
	return &JSONPrinter{writer: writer}
}

type jsonCommand struct {
	Index   int            `json:"index"`
	Command string         `json:"command"`
	Request *input.Request `json:"request,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type jsonReport struct {
	Requests []jsonCommand  `json:"requests,omitempty"`
	Result   compare.Result `json:"result"`
}

// Print writes the report as one JSON document. Without commands only the
// comparison result is written.
func (p *JSONPrinter) Print(report *Report) error {
	var v interface{} = &report.Result
	if len(report.Commands) > 0 {
		out := jsonReport{Result: report.Result}
		for _, command := range report.Commands {
			c := jsonCommand{
				Index:   command.Index + 1,
				Command: command.Source,
				Request: command.Request,
			}
			if command.Err != nil {
				c.Error = command.Err.Error()
			}
			out.Requests = append(out.Requests, c)
		}
		v = &out
	}

	encoder := json.NewEncoder(p.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}
