package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/lmehta/cohortplan/internal/sessiontype"
	"github.com/lmehta/cohortplan/internal/store"
)

func TestExportTimedAndAllDay(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	sessions := []store.Session{
		{
			ID:        1,
			Date:      time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Slot:      1,
			Type:      sessiontype.ChallengeIntro,
			Title:     "Kickoff",
			StartTime: &start,
			EndTime:   &end,
		},
		{
			ID:    2,
			Date:  time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
			Slot:  1,
			Type:  sessiontype.Workshop,
			Title: "Untimed Workshop",
		},
	}

	out := Export(sessions)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("missing calendar wrapper")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("event count = %d, want 2", got)
	}
	if !strings.Contains(out, "Kickoff") || !strings.Contains(out, "Untimed Workshop") {
		t.Error("missing session titles")
	}
	if !strings.Contains(out, "session-1@cohortplan") {
		t.Error("missing stable uid")
	}
	if !strings.Contains(out, "20260105T090000Z") {
		t.Error("timed event lost its start instant")
	}
}

func TestExportEmpty(t *testing.T) {
	out := Export(nil)
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatal("empty export must still be a valid calendar")
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("no events expected")
	}
}
