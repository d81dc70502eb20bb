package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/boundary"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show a scope's sessions and challenge boundaries",
	RunE:  runBoard,
}

func init() {
	boardCmd.Flags().String("cohort", "", "Cohort id (required)")
	boardCmd.Flags().String("epic", "", "Epic id (required)")
	boardCmd.MarkFlagRequired("cohort")
	boardCmd.MarkFlagRequired("epic")
}

func runBoard(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cohort, _ := cmd.Flags().GetString("cohort")
	epic, _ := cmd.Flags().GetString("epic")
	ctx := cmd.Context()

	sessions, err := st.SessionRepo().ListByScope(ctx, cohort, epic)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	fmt.Printf("Sessions (%d):\n", len(sessions))
	for _, s := range sessions {
		printSession(s)
	}

	detector := boundary.NewDetector(st.ChallengeRepo())
	envelopes, err := detector.Detect(ctx, sessions)
	if err != nil {
		return fmt.Errorf("detect boundaries: %w", err)
	}

	fmt.Printf("\nChallenge boundaries (%d):\n", len(envelopes))
	for _, e := range envelopes {
		mock := ""
		if e.IsMock {
			mock = "  [mock]"
		}
		fmt.Printf("  %s  %s to %s  slots 1..%d on the last day%s\n",
			e.ChallengeTitle,
			e.StartDate.Format("2006-01-02"),
			e.EndDate.Format("2006-01-02"),
			e.SlotMax, mock)
	}
	return nil
}
