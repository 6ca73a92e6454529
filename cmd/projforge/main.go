// Package main is the entry point for the projforge CLI application.
// projforge is an AI-powered command-line tool that generates or mutates
// project files and commits the result to git.
package main

import (
	"fmt"
	"os"

	"github.com/projforge/projforge/internal/cmd"
	apperrors "github.com/projforge/projforge/internal/pkg/errors"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if apperrors.IsVerbose() {
			fmt.Fprintln(os.Stderr, apperrors.FormatErrorVerbose(err))
		} else {
			fmt.Fprintln(os.Stderr, apperrors.FormatError(err))
		}
		os.Exit(apperrors.GetExitCode(err))
	}
}
