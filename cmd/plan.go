package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/schedule"
	"github.com/lmehta/cohortplan/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Expand an experience into sessions on the calendar",
	Long: `Plan expands one experience (cbl, mock-challenge, masterclass,
workshop or gap) into its session sequence starting at the given date and
slot, validates every target cell in one pass, and commits the whole group
at once.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("cohort", "", "Cohort id (required)")
	planCmd.Flags().String("epic", "", "Epic id (required)")
	planCmd.Flags().String("actor", "", "Acting user id (required)")
	planCmd.Flags().String("kind", "cbl", "Experience kind: cbl, mock-challenge, masterclass, workshop, gap")
	planCmd.Flags().String("title", "", "Experience title (required)")
	planCmd.Flags().StringSlice("lecture", nil, "Lecture module title, repeatable, in order")
	planCmd.Flags().Bool("singleton", false, "Plan a mock challenge as one unlinked session (mock-challenge only)")
	planCmd.Flags().String("date", "", "Start date, YYYY-MM-DD (required)")
	planCmd.Flags().Int("slot", 1, "Start slot (1-based)")
	planCmd.Flags().Int("slots-per-day", 0, "Slots per day (defaults to config)")

	planCmd.MarkFlagRequired("cohort")
	planCmd.MarkFlagRequired("epic")
	planCmd.MarkFlagRequired("actor")
	planCmd.MarkFlagRequired("title")
	planCmd.MarkFlagRequired("date")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cohort, _ := cmd.Flags().GetString("cohort")
	epic, _ := cmd.Flags().GetString("epic")
	actor, _ := cmd.Flags().GetString("actor")
	kind, _ := cmd.Flags().GetString("kind")
	title, _ := cmd.Flags().GetString("title")
	lectures, _ := cmd.Flags().GetStringSlice("lecture")
	singleton, _ := cmd.Flags().GetBool("singleton")
	dateStr, _ := cmd.Flags().GetString("date")
	slot, _ := cmd.Flags().GetInt("slot")
	slotsPerDay, _ := cmd.Flags().GetInt("slots-per-day")

	if slotsPerDay == 0 {
		slotsPerDay = cfg.SlotsPerDay
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("parse --date: %w", err)
	}

	exp := schedule.Experience{Kind: schedule.Kind(kind), Title: title, Singleton: singleton}
	for i, l := range lectures {
		exp.Lectures = append(exp.Lectures, schedule.LectureModule{Title: l, Order: i + 1})
	}

	composer := buildComposer(st, cfg)
	created, err := composer.Compose(cmd.Context(), schedule.ComposeRequest{
		Experience:  exp,
		CohortID:    cohort,
		EpicID:      epic,
		ActorID:     actor,
		StartDate:   date,
		StartSlot:   slot,
		SlotsPerDay: slotsPerDay,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created %d session(s):\n", len(created))
	for _, s := range created {
		printSession(s)
	}
	return nil
}

func printSession(s store.Session) {
	line := fmt.Sprintf("  %s  slot %d  %s %-16s %s",
		store.DayOf(s.Date).Format("2006-01-02"), s.Slot, s.Type.Icon(), s.Type.DisplayName(), s.Title)
	if s.StartTime != nil && s.EndTime != nil {
		line += fmt.Sprintf("  (%s-%s)", s.StartTime.Format("15:04"), s.EndTime.Format("15:04"))
	}
	fmt.Println(line)
}
