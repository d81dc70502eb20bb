package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update a session's title or times",
	Long: `Edit patches one session in place. Only the given flags change;
everything else keeps its current value. Times are HH:mm and anchor to the
day given by --date.`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Int("session", 0, "Session id (required)")
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("date", "", "Calendar day the times anchor to, YYYY-MM-DD")
	editCmd.Flags().String("start", "", "New start time, HH:mm (requires --date)")
	editCmd.Flags().String("end", "", "New end time, HH:mm (requires --date)")
	editCmd.MarkFlagRequired("session")
}

func runEdit(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	id, _ := cmd.Flags().GetInt("session")

	var patch store.SessionPatch
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
	}

	if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
		dateStr, _ := cmd.Flags().GetString("date")
		if dateStr == "" {
			return fmt.Errorf("--start/--end need --date to anchor to")
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("parse --date: %w", err)
		}
		day := store.DayOf(date)

		if cmd.Flags().Changed("start") {
			start, _ := cmd.Flags().GetString("start")
			t, err := atClock(day, start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			patch.StartTime = &t
		}
		if cmd.Flags().Changed("end") {
			end, _ := cmd.Flags().GetString("end")
			t, err := atClock(day, end)
			if err != nil {
				return fmt.Errorf("parse --end: %w", err)
			}
			patch.EndTime = &t
		}
	}

	if patch.Title == nil && patch.StartTime == nil && patch.EndTime == nil {
		return fmt.Errorf("nothing to change; pass --title, --start or --end")
	}

	updated, err := st.SessionRepo().UpdateByID(cmd.Context(), id, patch)
	if err != nil {
		return err
	}

	fmt.Println("Updated:")
	printSession(*updated)
	return nil
}

func atClock(day time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute), nil
}
