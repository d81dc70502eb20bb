package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete a challenge and its member sessions",
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().String("challenge", "", "Challenge id (required)")
	removeCmd.MarkFlagRequired("challenge")
}

func runRemove(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	id, _ := cmd.Flags().GetString("challenge")
	ctx := cmd.Context()

	ch, err := st.ChallengeRepo().Get(ctx, id)
	if err != nil {
		return fmt.Errorf("look up challenge: %w", err)
	}
	if ch == nil {
		return fmt.Errorf("challenge %s not found", id)
	}

	n, err := st.SessionRepo().DeleteChallengeMembers(ctx, id)
	if err != nil {
		return fmt.Errorf("delete member sessions: %w", err)
	}
	if err := st.ChallengeRepo().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}

	fmt.Printf("Deleted challenge %q and %d member session(s)\n", ch.Title, n)
	return nil
}
