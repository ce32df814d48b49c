package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/views"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Args:  usageArgs(cobra.NoArgs),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		snap, err := db.Load(db.DB)
		if err != nil {
			return err
		}
		newRenderer(cmd).Projects(views.New(now(), snap.Tasks, snap.Catalog()).Projects())
		return nil
	}),
}

var projectCmd = &cobra.Command{
	Use:   "project <slug>",
	Short: "Show a project's tasks, or manage projects",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		snap, err := db.Load(db.DB)
		if err != nil {
			return err
		}
		res, err := views.New(now(), snap.Tasks, snap.Catalog()).ProjectView(args[0])
		if err != nil {
			return err
		}
		newRenderer(cmd).View(res)
		return nil
	}),
}

var projectNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a project",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		area, _ := cmd.Flags().GetString("area")

		var project *models.Project
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			project, err = db.CreateProject(tx, db.CreateProjectRequest{Name: args[0], Area: area})
			return err
		})
		if err != nil {
			return err
		}

		cmdLog(cmd).Debug("project created", zap.Uint("project_id", project.ID), zap.String("slug", project.Slug))
		newRenderer(cmd).Success("Created project %s (%s)", project.Name, project.Slug)
		return nil
	}),
}

var projectDoneCmd = &cobra.Command{
	Use:   "done <slug>",
	Short: "Mark a project as completed",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		return projectTransition(cmd, args[0], "Completed", func(tx *gorm.DB, slug string) (*models.Project, error) {
			return db.CompleteProject(tx, slug, now())
		})
	}),
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a project; its tasks are kept",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		return projectTransition(cmd, args[0], "Deleted", func(tx *gorm.DB, slug string) (*models.Project, error) {
			return db.DeleteProject(tx, slug, now())
		})
	}),
}

var projectRestoreCmd = &cobra.Command{
	Use:   "restore <slug>",
	Short: "Restore a deleted project",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		return projectTransition(cmd, args[0], "Restored", db.RestoreProject)
	}),
}

func projectTransition(cmd *cobra.Command, slug, verb string, fn func(*gorm.DB, string) (*models.Project, error)) error {
	var project *models.Project
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		project, err = fn(tx, slug)
		return err
	})
	if err != nil {
		return err
	}

	cmdLog(cmd).Debug("project updated", zap.String("slug", project.Slug), zap.String("status", string(project.Status)))
	newRenderer(cmd).Success("%s project %s (%s)", verb, project.Name, project.Slug)
	return nil
}

func init() {
	projectNewCmd.Flags().StringP("area", "a", "", "Area name")

	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectDoneCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectRestoreCmd)
}
