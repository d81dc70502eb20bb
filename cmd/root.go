package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/auth"
	"github.com/lmehta/cohortplan/internal/config"
	"github.com/lmehta/cohortplan/internal/schedule"
	"github.com/lmehta/cohortplan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cohortplan",
	Short: "Cohort calendar planner",
	Long:  "Cohortplan — schedules structured learning experiences onto a cohort's daily slot grid.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COHORTPLAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides COHORTPLAN_CONFIG env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COHORTPLAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadAppConfig loads the YAML config from --config, COHORTPLAN_CONFIG, or
// the default XDG path, creating it with defaults on first run.
func loadAppConfig(cmd *cobra.Command) (*config.Config, error) {
	p, _ := cmd.Flags().GetString("config")
	if p == "" {
		var err error
		p, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(p)
}

// openStore opens the SQLite-backed store for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildComposer wires the composer from an open store and loaded config.
func buildComposer(st *store.Store, cfg *config.Config) *schedule.Composer {
	defaults := store.NewFallbackSlotDefaults(st.SlotDefaultRepo(), cfg.FallbackTimes())
	checker := auth.NewStaticChecker(cfg.RoleMap())

	var opts []schedule.ComposerOption
	if wd, ok := cfg.SkipDay(); ok {
		opts = append(opts, schedule.WithSkipWeekday(wd))
	}
	return schedule.NewComposer(st.SessionRepo(), st.ChallengeRepo(), defaults, checker, opts...)
}
