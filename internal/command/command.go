// Package command implements the micrograd command-line interface.
package command

import (
	"io"
	"os"
	"strings"

	"github.com/mitchellh/cli"
)

// Version is the micrograd release version.
const Version = "v0.1.0-dev"

// Meta holds state shared by all commands.
type Meta struct {
	Ui cli.Ui

	// LogOutput receives structured logs. Defaults to os.Stderr.
	LogOutput io.Writer
}

func (m *Meta) logOutput() io.Writer {
	if m.LogOutput != nil {
		return m.LogOutput
	}
	return os.Stderr
}

// Commands returns the command table for ui.
func Commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"train": func() (cli.Command, error) {
			return &TrainCommand{Meta: meta}, nil
		},
		"graph": func() (cli.Command, error) {
			return &GraphCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: meta}, nil
		},
	}
}

// helpText trims the indentation-friendly raw strings used for Help.
func helpText(s string) string {
	return strings.TrimSpace(s)
}
