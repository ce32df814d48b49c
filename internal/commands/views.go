package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/scheduler"
	"github.com/balkashynov/tdo/internal/views"
)

type viewDef struct {
	name  views.Name
	short string
	// move is the shorthand applied by "tdo <view> <ref>"; nil means the view
	// takes no arguments
	move *scheduler.Flags
}

var viewDefs = []viewDef{
	{views.Today, "Tasks for today, overdue ones and this evening", &scheduler.Flags{Today: true}},
	{views.Inbox, "Unsorted tasks", &scheduler.Flags{Inbox: true}},
	{views.Anytime, "Tasks to do whenever", &scheduler.Flags{Anytime: true}},
	{views.Someday, "Tasks for later, maybe", &scheduler.Flags{Someday: true}},
	{views.Upcoming, "Scheduled tasks grouped by date", nil},
	{views.Logbook, "Tasks completed in the last 14 days", nil},
	{views.Trash, "Deleted tasks", nil},
	{views.All, "Every active task", nil},
}

// viewCmds builds one command per view. Views that double as buckets accept a
// task reference and move it there, e.g. "tdo today 4".
func viewCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(viewDefs))
	for _, def := range viewDefs {
		def := def
		cmd := &cobra.Command{
			Use:   string(def.name),
			Short: def.short,
			Args:  usageArgs(cobra.NoArgs),
			RunE: withDB(func(cmd *cobra.Command, args []string) error {
				if len(args) == 1 {
					return moveTask(cmd, args[0], *def.move)
				}
				return showView(cmd, def.name)
			}),
		}
		if def.move != nil {
			cmd.Use += " [id|title]"
			cmd.Args = usageArgs(cobra.MaximumNArgs(1))
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func showView(cmd *cobra.Command, name views.Name) error {
	snap, err := db.Load(db.DB)
	if err != nil {
		return err
	}

	res, err := views.New(now(), snap.Tasks, snap.Catalog()).Build(name)
	if err != nil {
		return err
	}

	newRenderer(cmd).View(res)
	return nil
}
