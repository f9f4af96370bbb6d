package input

import (
	"encoding/base64"
	"io/ioutil"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// ErrNotCurl is returned by ParseCurl for input that is not a curl command.
var ErrNotCurl = errors.New("not a curl command")

const curlPrefix = "curl "

type pendingState int

const (
	expectNothing pendingState = iota
	expectMethod
	expectHeader
	expectData
	expectForm
	expectBinary
	expectAuth
	expectUserAgent
	expectCookie
	expectURL
	expectJSON
)

// flagStates maps flags that take an argument to the state that consumes it.
var flagStates = map[string]pendingState{
	"-X":            expectMethod,
	"--request":     expectMethod,
	"-H":            expectHeader,
	"--header":      expectHeader,
	"-d":            expectData,
	"--data":        expectData,
	"--data-raw":    expectData,
	"--data-ascii":  expectData,
	"-F":            expectForm,
	"--form":        expectForm,
	"--data-binary": expectBinary,
	"-u":            expectAuth,
	"--user":        expectAuth,
}

// extendedFlagStates is only consulted with ParseOptions.ExtendedFlags.
var extendedFlagStates = map[string]pendingState{
	"-A":           expectUserAgent,
	"--user-agent": expectUserAgent,
	"-b":           expectCookie,
	"--cookie":     expectCookie,
	"--url":        expectURL,
	"--json":       expectJSON,
}

// ParseOptions adjusts which curl flags ParseCurlWith recognizes.
type ParseOptions struct {
	// ExtendedFlags enables -A/--user-agent, -b/--cookie, --url, --json
	// and -I/--head. Without it those tokens are ignored like any other
	// unknown flag.
	ExtendedFlags bool
}

type parser struct {
	out      *Request
	state    pendingState
	extended bool
}

// ParseCurl parses a shell curl command line into a Request. It returns
// ErrNotCurl when command does not start with "curl ". Unknown flags and
// stray arguments are ignored.
func ParseCurl(command string) (*Request, error) {
	return ParseCurlWith(command, &ParseOptions{})
}

// ParseCurlWith is ParseCurl with options.
func ParseCurlWith(command string, options *ParseOptions) (*Request, error) {
	if !strings.HasPrefix(command, curlPrefix) {
		return nil, errors.WithStack(ErrNotCurl)
	}

	args, err := tokenize(command)
	if err != nil {
		return nil, err
	}

	p := parser{out: newRequest(), extended: options.ExtendedFlags}
	for _, arg := range args {
		p.next(arg)
	}
	return p.out, nil
}

func tokenize(command string) ([]string, error) {
	command = strings.NewReplacer("\\\r\n", "", "\\\n", "").Replace(command)

	sp := shellwords.NewParser()
	sp.ParseEnv = false
	sp.ParseBacktick = false
	args, err := sp.Parse(command)
	if err != nil {
		return nil, errors.Wrap(err, "splitting curl command")
	}
	return args, nil
}

// next handles one token. A flag taking an argument sets the pending state;
// every other token clears it, whether it was consumed or not.
func (p *parser) next(arg string) {
	state, isFlag := p.flagState(arg)
	switch {
	case isURL(arg):
		p.setURL(arg)
	case isFlag:
		p.state = state
		return
	case arg == "--compressed":
		if _, ok := p.header("Accept-Encoding"); !ok {
			p.out.Header["Accept-Encoding"] = "deflate, gzip"
		}
	case p.extended && (arg == "-I" || arg == "--head"):
		p.out.Method = "HEAD"
	default:
		p.consume(arg)
	}
	p.state = expectNothing
}

func (p *parser) flagState(arg string) (pendingState, bool) {
	if state, ok := flagStates[arg]; ok {
		return state, true
	}
	if p.extended {
		state, ok := extendedFlagStates[arg]
		return state, ok
	}
	return expectNothing, false
}

func (p *parser) consume(arg string) {
	switch p.state {
	case expectMethod:
		p.out.Method = strings.ToUpper(arg)
	case expectHeader:
		name, value := splitHeader(arg)
		p.out.Header[name] = value
	case expectData:
		p.promoteMethod()
		contentType, _ := p.header("Content-Type")
		p.setBody(DecodeBody(arg, contentType))
	case expectJSON:
		p.setDefaultHeader("Content-Type", contentTypeJSON)
		p.setDefaultHeader("Accept", contentTypeJSON)
		p.promoteMethod()
		p.setBody(DecodeBody(arg, contentTypeJSON))
	case expectForm:
		p.promoteMethod()
		p.setBody(parseFormField(arg))
	case expectBinary:
		p.promoteMethod()
		p.setBody(arg)
	case expectAuth:
		p.replaceHeader("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(arg)))
	case expectUserAgent:
		p.replaceHeader("User-Agent", arg)
	case expectCookie:
		p.replaceHeader("Cookie", arg)
	case expectURL:
		p.setURL(arg)
	}
}

func (p *parser) setURL(arg string) {
	p.out.URL, p.out.Query = splitURL(arg)
}

func (p *parser) setBody(body any) {
	p.out.Body = body
	p.out.HasBody = true
}

// promoteMethod turns the default GET into POST once a payload is given.
// An explicit "-X GET" is indistinguishable from the default and is
// promoted as well.
func (p *parser) promoteMethod() {
	if p.out.Method == defaultMethod {
		p.out.Method = "POST"
	}
}

// header looks name up case-insensitively.
func (p *parser) header(name string) (string, bool) {
	if v, ok := p.out.Header[name]; ok {
		return v, true
	}
	for k, v := range p.out.Header {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

func (p *parser) setDefaultHeader(name, value string) {
	if _, ok := p.header(name); !ok {
		p.out.Header[name] = value
	}
}

// replaceHeader sets name, dropping any differently cased duplicate.
func (p *parser) replaceHeader(name, value string) {
	for k := range p.out.Header {
		if strings.EqualFold(k, name) {
			delete(p.out.Header, k)
		}
	}
	p.out.Header[name] = value
}

func splitHeader(s string) (string, string) {
	i := strings.Index(s, ":")
	if i == -1 {
		return s, ""
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
}

// parseFormField parses a -F argument. "name=@path" reads the file; when
// it cannot be read the path itself becomes the value.
func parseFormField(s string) map[string]any {
	form := map[string]any{}
	i := strings.Index(s, "=")
	if i == -1 {
		return form
	}

	name, value := s[:i], s[i+1:]
	if strings.HasPrefix(value, "@") {
		path := value[1:]
		if data, err := ioutil.ReadFile(path); err == nil {
			form[name] = data
			return form
		}
		form[name] = path
		return form
	}
	form[name] = value
	return form
}
