package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/uyouii/viterbi-plots/common"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitFailure = 1 // unreadable or malformed input
	ExitUsage   = 2 // missing argument, bad flag or config value
)

func main() {
	if err := execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, common.ErrorMissingArgument), errors.Is(err, common.ErrorInvalidValue):
		return ExitUsage
	default:
		return ExitFailure
	}
}
