package main

import (
	"fmt"
	"os"

	"github.com/balkashynov/tdo/internal/commands"
	"github.com/balkashynov/tdo/internal/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(models.ExitCode(err))
	}
}
