package main

import (
	"errors"
	"fmt"
	"os"

	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps failures to process status: 2 for bad input, 1 otherwise.
func exitCode(err error) int {
	var (
		parseErr      *shapeerrors.ParseError
		validationErr *shapeerrors.ValidationError
	)
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
