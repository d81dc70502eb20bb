package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/sweep"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete orphaned challenge records",
	Long: `Sweep removes challenge rows that have no sessions: leftovers from a
composer whose compensating delete failed. With --watch it keeps running on
the configured cron schedule.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().Bool("watch", false, "Keep sweeping on the configured cron schedule")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	grace := time.Duration(cfg.SweepGraceMinutes) * time.Minute
	sweeper := sweep.New(st.SessionRepo(), st.ChallengeRepo(), grace)

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		fmt.Printf("Sweeping on schedule %q (grace %s)\n", cfg.SweepCron, grace)
		return sweeper.Watch(cmd.Context(), cfg.SweepCron)
	}

	n, err := sweeper.Sweep(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Swept %d orphaned challenge(s)\n", n)
	return nil
}
