package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/scheduler"
	"github.com/balkashynov/tdo/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task. Without a schedule flag it lands in the Inbox.

Modes:
  Quick: tdo add "Call dentist" --today -p health
  Interactive: tdo add -i (or just 'tdo add' with no title)

--evening on its own means this evening. Only one of --today, --someday,
--anytime and --when may be given.`,
	Args: cobra.ArbitraryArgs,
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		flags := readTaskFlags(cmd)

		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive || strings.TrimSpace(title) == "" {
			res, err := tui.RunAddForm(title)
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Task creation cancelled.")
				return nil
			}
			title = res.Title
			flags = mergeFlags(flags, res.Flags)
		}

		var task *models.Task
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			task, err = db.AddTask(tx, db.AddTaskRequest{Title: title, Flags: flags, Now: now()})
			return err
		})
		if err != nil {
			return err
		}

		cmdLog(cmd).Debug("task added", zap.Uint("task_id", task.ID), zap.String("bucket", string(task.Bucket)))
		newRenderer(cmd).Success("Added task #%d: %s", task.ID, task.Title)
		return nil
	}),
}

// mergeFlags overlays values entered in the form on top of command-line flags
func mergeFlags(base, form scheduler.Flags) scheduler.Flags {
	if form.Today || form.Someday || form.Anytime || form.When != nil {
		base.Today, base.Evening, base.Someday, base.Anytime, base.When = false, false, false, false, nil
	}
	base.Today = base.Today || form.Today
	base.Evening = base.Evening || form.Evening
	base.Someday = base.Someday || form.Someday
	base.Anytime = base.Anytime || form.Anytime
	if form.When != nil {
		base.When = form.When
	}
	if form.Deadline != nil {
		base.Deadline = form.Deadline
	}
	if form.Project != nil {
		base.Project = form.Project
	}
	if form.Area != nil {
		base.Area = form.Area
	}
	if form.Notes != nil {
		base.Notes = form.Notes
	}
	base.Tags = append(base.Tags, form.Tags...)
	return base
}

func init() {
	addTaskFlags(addCmd)
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
}
