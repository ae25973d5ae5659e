// Package main is the entry point for the devsetup CLI.
package main

import (
	"fmt"
	"os"

	"github.com/devenv-toolkit/devsetup/pkg/errors"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "devsetup: %v\n", err)
		os.Exit(errors.ExitStatus(err))
	}
}
