package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/models"
)

var doneCmd = &cobra.Command{
	Use:   "done <id|title>",
	Short: "Mark a task as completed",
	Long: `Mark an active task as completed. The task can be named by ID or by
part of its title; the lowest matching ID wins.`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		var task *models.Task
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			task, err = db.CompleteTask(tx, args[0], now())
			return err
		})
		if err != nil {
			return withSuggestions(cmd, err, args[0], matcher.ScopeActive)
		}

		cmdLog(cmd).Debug("task completed", zap.Uint("task_id", task.ID))
		newRenderer(cmd).Success("✓ Completed task #%d: %s", task.ID, task.Title)
		return nil
	}),
}
