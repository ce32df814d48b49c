package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/models"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id|title>",
	Aliases: []string{"rm"},
	Short:   "Move a task to the trash",
	Args:    usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		var task *models.Task
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			task, err = db.TrashTask(tx, args[0], now())
			return err
		})
		if err != nil {
			return withSuggestions(cmd, err, args[0], matcher.ScopeActive)
		}

		cmdLog(cmd).Debug("task trashed", zap.Uint("task_id", task.ID))
		newRenderer(cmd).Success("Trashed task #%d: %s", task.ID, task.Title)
		return nil
	}),
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id|title>",
	Short: "Restore a task from the trash",
	Long:  `Restore a trashed task. It keeps the schedule it had before deletion.`,
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		var task *models.Task
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			task, err = db.RestoreTask(tx, args[0])
			return err
		})
		if err != nil {
			return withSuggestions(cmd, err, args[0], matcher.ScopeTrashed)
		}

		cmdLog(cmd).Debug("task restored", zap.Uint("task_id", task.ID))
		newRenderer(cmd).Success("Restored task #%d: %s → %s", task.ID, task.Title, task.Schedule())
		return nil
	}),
}
