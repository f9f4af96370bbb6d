package output

import "io"

type Options struct {
	Writer io.Writer

	JSON          bool
	PrintRequests bool
	OnlyDifferent bool

	EnableColor bool
	// Width truncates rendered values; zero disables truncation.
	Width int
}
