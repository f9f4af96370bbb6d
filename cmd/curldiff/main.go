package main

import (
	"fmt"
	"os"

	curldiff "github.com/Youky1/curl-diff"
	"github.com/pkg/errors"
)

func main() {
	err := curldiff.Main()
	if err == nil {
		return
	}
	if errors.Cause(err) == curldiff.ErrDifferent {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(2)
}
