package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner opens path in an editor and returns once the user is done
type Runner interface {
	Run(ctx context.Context, path string) error
}

// Command runs an external editor. Editor may carry arguments, e.g. "code -w".
type Command struct {
	Editor string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the editor attached to the terminal and waits for it to exit
func (c Command) Run(ctx context.Context, path string) error {
	fields := strings.Fields(c.Editor)
	if len(fields) == 0 {
		return fmt.Errorf("no editor configured")
	}

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", fields[0], err)
	}
	return nil
}

// Edit writes doc to a temporary YAML file, lets the runner modify it and
// parses the result. The file is removed afterwards.
func Edit(ctx context.Context, runner Runner, doc Document) (Document, error) {
	data, err := doc.Marshal()
	if err != nil {
		return Document{}, err
	}

	f, err := os.CreateTemp("", "tdo-*.yaml")
	if err != nil {
		return Document{}, err
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return Document{}, err
	}
	if err := f.Close(); err != nil {
		return Document{}, err
	}

	if err := runner.Run(ctx, path); err != nil {
		return Document{}, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(edited)
}
