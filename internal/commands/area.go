package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/models"
)

var areaCmd = &cobra.Command{
	Use:     "area",
	Aliases: []string{"areas"},
	Short:   "List or manage areas",
	Args:    usageArgs(cobra.NoArgs),
	RunE:    withDB(listAreas),
}

var areaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List areas",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  withDB(listAreas),
}

func listAreas(cmd *cobra.Command, args []string) error {
	areas, err := db.ListAreas(db.DB)
	if err != nil {
		return err
	}
	newRenderer(cmd).Areas(areas)
	return nil
}

var areaNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an area",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		var area *models.Area
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			area, err = db.CreateArea(tx, args[0])
			return err
		})
		if err != nil {
			return err
		}

		cmdLog(cmd).Debug("area created", zap.Uint("area_id", area.ID))
		newRenderer(cmd).Success("Created area %s", area.Name)
		return nil
	}),
}

var areaDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an area; its projects and tasks are kept",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		var area *models.Area
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			area, err = db.DeleteArea(tx, args[0], now())
			return err
		})
		if err != nil {
			return err
		}

		cmdLog(cmd).Debug("area deleted", zap.Uint("area_id", area.ID))
		newRenderer(cmd).Success("Deleted area %s", area.Name)
		return nil
	}),
}

func init() {
	areaCmd.AddCommand(areaListCmd)
	areaCmd.AddCommand(areaNewCmd)
	areaCmd.AddCommand(areaDeleteCmd)
}
