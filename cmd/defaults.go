package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/store"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Set a cohort's default times for one slot",
	Long: `Defaults stores the wall-clock window sessions in a slot inherit at
creation time. A slot with no defaults produces sessions without a fixed
time.`,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().String("cohort", "", "Cohort id (required)")
	defaultsCmd.Flags().Int("slot", 0, "Slot position, 1-based (required)")
	defaultsCmd.Flags().String("start", "", "Start time, HH:mm (required)")
	defaultsCmd.Flags().String("end", "", "End time, HH:mm (required)")
	defaultsCmd.MarkFlagRequired("cohort")
	defaultsCmd.MarkFlagRequired("slot")
	defaultsCmd.MarkFlagRequired("start")
	defaultsCmd.MarkFlagRequired("end")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cohort, _ := cmd.Flags().GetString("cohort")
	slot, _ := cmd.Flags().GetInt("slot")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	if slot < 1 {
		return fmt.Errorf("slot must be 1 or greater, got %d", slot)
	}

	err = st.SlotDefaultRepo().Upsert(cmd.Context(), cohort, slot, store.SlotTimes{Start: start, End: end})
	if err != nil {
		return fmt.Errorf("save slot defaults: %w", err)
	}
	fmt.Printf("Slot %d of cohort %s now defaults to %s-%s\n", slot, cohort, start, end)
	return nil
}
