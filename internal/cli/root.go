package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/config"
	"github.com/sadopc/salah/internal/logging"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/sadopc/salah/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries what the commands share once PersistentPreRunE has run.
type app struct {
	now func() time.Time

	cfg   *config.Config
	store *store.Store
	logs  io.Closer

	flagDB       string
	flagLogFile  string
	flagLogLevel string
}

func newApp(now func() time.Time) *app {
	return &app{now: now}
}

// Execute builds the salah command tree, runs it against os.Args and
// releases the database and log file afterwards.
// The version parameter is set by the calling binary via ldflags.
func Execute(version string) error {
	a := newApp(time.Now)
	defer a.close()
	return a.rootCmd(version).Execute()
}

func (a *app) rootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salah",
		Short: "Track the five daily prayers rakat by rakat",
		Long: "salah records which rakat of each daily prayer you have performed,\n" +
			"shows a month calendar of completed days and counts down to the next prayer.\n" +
			"Run without a subcommand to open the interactive tracker.",
		Version:           version,
		PersistentPreRunE: a.setup,
		// Default action: open the TUI.
		RunE:          a.runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flagDB, "db", "", "Database path (default: <config dir>/salah/salah.db)")
	pf.StringVar(&a.flagLogFile, "log-file", "", "Log file path (default: <config dir>/salah/salah.log)")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "Log level: debug, info, warn, error or disabled")

	rootCmd.AddCommand(a.newTUICmd())
	rootCmd.AddCommand(a.newTodayCmd())
	rootCmd.AddCommand(a.newToggleCmd())
	rootCmd.AddCommand(a.newGroupCmd())
	rootCmd.AddCommand(a.newClearCmd())
	rootCmd.AddCommand(a.newMonthCmd())
	rootCmd.AddCommand(a.newNextCmd())
	rootCmd.AddCommand(a.newUnitsCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newSettingsCmd())

	return rootCmd
}

// setup merges the configuration (CLI flags > environment > defaults),
// starts logging and opens the store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()
	if flagWasSet(flags, root, "db") {
		cfg.DBPath = a.flagDB
	}
	if flagWasSet(flags, root, "log-file") {
		cfg.LogPath = a.flagLogFile
	}
	if flagWasSet(flags, root, "log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logs, err = logging.Setup(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	a.store, err = store.New(cfg.DBPath)
	if err != nil {
		log.Error().Err(err).Str("db", cfg.DBPath).Msg("[cli] open database failed")
		return fmt.Errorf("open database: %w", err)
	}
	log.Debug().Str("command", cmd.Name()).Str("db", cfg.DBPath).Msg("[cli] ready")
	return nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
		a.store = nil
	}
	if a.logs != nil {
		a.logs.Close()
		a.logs = nil
	}
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// resolveDate validates a --date value; empty means today.
func (a *app) resolveDate(s string) (string, error) {
	if s == "" {
		return calendar.Today(a.now()), nil
	}
	if _, err := prayer.ParseDate(s); err != nil {
		return "", err
	}
	return s, nil
}

func (a *app) preferences() store.Preferences {
	p, err := a.store.GetPreferences()
	if err != nil {
		log.Warn().Err(err).Msg("[cli] reading preferences failed, using defaults")
	}
	return p
}

// statusFor derives the status shown for date, marking past days as missed
// when the preference asks for it.
func (a *app) statusFor(r *prayer.DayRecord, date string, prefs store.Preferences) prayer.DayStatus {
	if prefs.MarkMissed {
		return prayer.StatusOn(r, date, calendar.Today(a.now()))
	}
	return prayer.StatusOf(r)
}
