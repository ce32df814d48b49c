package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/editor"
	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit <id|title>",
	Short: "Edit a task in your editor",
	Long: `Open the task as YAML in $TDO_EDITOR, $VISUAL or $EDITOR.

Title, when, deadline, project, area, tags and notes can be changed. Only
fields you modify are applied, and nothing is saved unless every change is
valid. Clear a field by leaving it empty.

Usage:
  tdo edit 42
  tdo edit dentist`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		runner := editor.Command{
			Editor: cfg.Editor,
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
		return editTask(cmd, args[0], runner)
	}),
}

func editTask(cmd *cobra.Command, ref string, runner editor.Runner) error {
	changed := false

	var task *models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = db.EditTask(tx, ref, func(t *models.Task, catalog *models.Catalog) error {
			orig := editor.FromTask(t, catalog)
			edited, err := editor.Edit(cmd.Context(), runner, orig)
			if err != nil {
				return err
			}

			change, err := editor.Diff(orig, edited, now(), catalog)
			if err != nil {
				return err
			}
			changed = !change.IsEmpty()
			change.Apply(t)
			return nil
		})
		return err
	})
	if err != nil {
		return withSuggestions(cmd, err, ref, matcher.ScopeActive)
	}

	r := newRenderer(cmd)
	if !changed {
		r.Plain("No changes to task #%d", task.ID)
		return nil
	}

	cmdLog(cmd).Debug("task edited", zap.Uint("task_id", task.ID))
	r.Success("Updated task #%d: %s", task.ID, task.Title)
	return nil
}
