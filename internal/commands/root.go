package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/tdo/internal/config"
	"github.com/balkashynov/tdo/internal/db"
	"github.com/balkashynov/tdo/internal/logger"
	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/tui"
	"github.com/balkashynov/tdo/internal/views"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg    *config.Config
	dbPath string

	// now is swapped in tests
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "tdo",
	Short: "A Things-style task manager for the terminal",
	Long: `tdo organizes tasks into Inbox, Today, Anytime, Someday and Upcoming,
grouped by projects and areas. Running tdo with no command shows Today.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Args:              usageArgs(cobra.NoArgs),
	RunE: withDB(func(cmd *cobra.Command, args []string) error {
		return showView(cmd, views.Today)
	}),
}

// setup loads configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	log := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	}, cmd.ErrOrStderr())
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))

	return nil
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := db.Initialize(cfg.DBPath); err != nil {
			cmdLog(cmd).Error("open database", zap.String("path", cfg.DBPath), zap.Error(err))
			return err
		}
		db.EnableBackups(cfg.BackupDir, cfg.Backups)
		defer db.Close()
		return fn(cmd, args)
	}
}

// cmdLog returns the logger setup stored on the command context
func cmdLog(cmd *cobra.Command) *zap.Logger {
	return logger.FromContext(cmd.Context())
}

func newRenderer(cmd *cobra.Command) *tui.Renderer {
	return tui.NewRenderer(cmd.OutOrStdout(), cfg.Width)
}

// withSuggestions prints close titles when err is a task-not-found for ref
func withSuggestions(cmd *cobra.Command, err error, ref string, scope matcher.Scope) error {
	var dErr *models.Error
	if !errors.As(err, &dErr) || dErr.Message != models.ErrTaskNotFound(ref).Message {
		return err
	}

	snap, loadErr := db.Load(db.DB)
	if loadErr != nil {
		return err
	}
	if titles := matcher.Suggest(ref, snap.Tasks, scope, 3); len(titles) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Did you mean:")
		for _, title := range titles {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", title)
		}
	}
	return err
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tdo %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default $TDO_HOME/tdo.db)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return models.WrapError(models.ErrCodeInvalid, "Invalid usage", err)
	})
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
	for _, c := range viewCmds() {
		rootCmd.AddCommand(c)
	}
}
