package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/scheduler"
)

var moveCmd = &cobra.Command{
	Use:   "move <id|title> [flags]",
	Short: "Reschedule a task or change its project, area, tags or notes",
	Long: `Reschedule a task or change its metadata. Tags are added to the task.

--evening only applies together with --today, e.g.
  tdo move 4 --today --evening`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		return moveTask(cmd, args[0], readTaskFlags(cmd))
	}),
}

func moveTask(cmd *cobra.Command, ref string, flags scheduler.Flags) error {
	var task *models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = db.MoveTask(tx, ref, flags, now())
		return err
	})
	if err != nil {
		return withSuggestions(cmd, err, ref, matcher.ScopeActive)
	}

	cmdLog(cmd).Debug("task moved", zap.Uint("task_id", task.ID), zap.String("schedule", task.Schedule().String()))
	newRenderer(cmd).Success("Moved task #%d: %s → %s", task.ID, task.Title, task.Schedule())
	return nil
}

func init() {
	addTaskFlags(moveCmd)
}
