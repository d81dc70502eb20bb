package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/ical"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scope's schedule as an iCalendar file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("cohort", "", "Cohort id (required)")
	exportCmd.Flags().String("epic", "", "Epic id (required)")
	exportCmd.Flags().String("out", "", "Output file (defaults to stdout)")
	exportCmd.MarkFlagRequired("cohort")
	exportCmd.MarkFlagRequired("epic")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cohort, _ := cmd.Flags().GetString("cohort")
	epic, _ := cmd.Flags().GetString("epic")
	out, _ := cmd.Flags().GetString("out")

	sessions, err := st.SessionRepo().ListByScope(cmd.Context(), cohort, epic)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	payload := ical.Export(sessions)
	if out == "" {
		fmt.Print(payload)
		return nil
	}
	if err := os.WriteFile(out, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %d session(s) to %s\n", len(sessions), out)
	return nil
}
