package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/scheduler"
)

// addTaskFlags registers the scheduling and metadata flags shared by add and move
func addTaskFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("today", false, "Schedule for today")
	f.Bool("evening", false, "This evening (with --today on move)")
	f.Bool("someday", false, "Move to Someday")
	f.Bool("anytime", false, "Move to Anytime")
	f.StringP("when", "w", "", "Schedule for a date: today, tomorrow, fri, next-week, 2025-03-01")
	f.StringP("deadline", "d", "", "Deadline date")
	f.StringP("project", "p", "", "Project slug")
	f.StringP("area", "a", "", "Area name")
	f.StringArrayP("tag", "t", nil, "Tag (repeatable)")
	f.StringP("notes", "n", "", "Notes")
}

// readTaskFlags collects the flags the user actually passed
func readTaskFlags(cmd *cobra.Command) scheduler.Flags {
	f := cmd.Flags()
	var out scheduler.Flags

	out.Today, _ = f.GetBool("today")
	out.Evening, _ = f.GetBool("evening")
	out.Someday, _ = f.GetBool("someday")
	out.Anytime, _ = f.GetBool("anytime")
	out.Tags, _ = f.GetStringArray("tag")

	changed := func(name string) *string {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetString(name)
		return &v
	}
	out.When = changed("when")
	out.Deadline = changed("deadline")
	out.Project = changed("project")
	out.Area = changed("area")
	out.Notes = changed("notes")

	return out
}

// usageArgs turns cobra's positional argument errors into validation errors
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return models.WrapError(models.ErrCodeInvalid, "Invalid usage", err)
		}
		return nil
	}
}
