// Command promptctl talks to a running prompt matching service.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit *exitError
		if !errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// exitError signals a non-zero exit after output was already written.
type exitError struct {
	msg string
}

func (e *exitError) Error() string { return e.msg }
