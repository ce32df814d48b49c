package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/views"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search task titles",
	Long: `Search active tasks by title. Matching is fuzzy and case insensitive:
"dnt" finds "Call dentist". Best matches are listed first. With --logbook
the search runs over completed tasks instead.`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		snap, err := db.Load(db.DB)
		if err != nil {
			return err
		}

		engine := views.New(now(), snap.Tasks, snap.Catalog())
		res := views.Result{Title: fmt.Sprintf("Search %q", query)}

		scope := matcher.ScopeActive
		if logbook, _ := cmd.Flags().GetBool("logbook"); logbook {
			scope = matcher.ScopeCompleted
			res.Title = fmt.Sprintf("Logbook search %q", query)
		}

		var group views.Group
		matches := matcher.Search(query, snap.Tasks, scope)
		for i := range matches {
			group.Entries = append(group.Entries, engine.Entry(&matches[i]))
		}
		if len(group.Entries) > 0 {
			res.Groups = append(res.Groups, group)
		}

		newRenderer(cmd).View(res)
		return nil
	}),
}

func init() {
	searchCmd.Flags().BoolP("logbook", "l", false, "Search completed tasks")
}
