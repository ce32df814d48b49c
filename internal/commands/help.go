package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show the tdo cheat sheet",
	Long:  `Display the cheat sheet, or help for a single command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			target, _, err := rootCmd.Find(args)
			if err != nil {
				return err
			}
			return target.Help()
		}
		fmt.Fprint(cmd.OutOrStdout(), cheatSheet)
		return nil
	},
}

const cheatSheet = `
tdo - tasks for the terminal

VIEWS:

  tdo                     Same as 'tdo today'
  today                   Today, overdue tasks and this evening
  inbox                   Unsorted tasks
  anytime                 Tasks to do whenever
  someday                 Tasks for later, maybe
  upcoming                Scheduled tasks grouped by date
  logbook                 Completed in the last 14 days
  trash                   Deleted tasks
  all                     Every active task
  projects                Projects with area and open task count
  project <slug>          Tasks in a project
  search <query>          Fuzzy search active task titles
  search -l <query>       Search completed tasks (logbook)

  Shorthand: 'tdo today 4' moves task 4 to Today (also inbox, anytime, someday).

TASKS:

  add <title>             Add a task (Inbox unless scheduled)
    -i, --interactive     Fill in a form instead
  move <ref>              Reschedule or change project, area, tags, notes
  done <ref>              Complete a task
  edit <ref>              Edit a task as YAML in $EDITOR
  delete <ref>            Move a task to the trash
  restore <ref>           Bring a task back from the trash

  <ref> is a task ID or part of its title; the lowest matching ID wins.

  Flags for add and move:
    --today               Today
    --evening             This evening (move needs --today as well)
    --someday             Someday
    --anytime             Anytime
    -w, --when <date>     Scheduled for a date
    -d, --deadline <date> Deadline
    -p, --project <slug>  Project
    -a, --area <name>     Area
    -t, --tag <name>      Tag, repeatable
    -n, --notes <text>    Notes

  Dates: today, tomorrow, next-week, monday..sunday (mon..sun),
         next-friday, 2025-03-01

PROJECTS AND AREAS:

  project new <name>      Create a project (-a, --area <name>)
  project done <slug>     Complete a project
  project delete <slug>   Delete a project, keeping its tasks
  project restore <slug>  Restore a deleted project
  area                    List areas
  area new <name>         Create an area
  area delete <name>      Delete an area

OTHER:

  --db <path>             Use another database file
  version                 Print version information
  help                    Show this help

`
