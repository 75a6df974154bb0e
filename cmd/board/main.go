// Package main is the entry point for the board CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	container, err := newContainer(os.Args[1:])
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// newContainer builds the container for the data directory named by --dir,
// or the one resolved from the current directory.
func newContainer(args []string) (*app.Container, error) {
	if dir := dirFromArgs(args); dir != "" {
		return app.NewForDataDir(app.Config{DataDir: dir})
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return app.New(cwd)
}

// dirFromArgs returns the value of the --dir flag, which is needed before
// cobra parses the command line.
func dirFromArgs(args []string) string {
	flag := "--" + cli.DirFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
	}
	return ""
}
