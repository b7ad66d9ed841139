// Package main provides the micrograd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/born-ml/micrograd/internal/command"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("micrograd", command.Version)
	c.Args = os.Args[1:]
	c.Commands = command.Commands(command.Meta{Ui: ui})
	c.HelpWriter = os.Stdout

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return exitCode
}
