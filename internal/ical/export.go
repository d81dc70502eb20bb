package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/lmehta/cohortplan/internal/store"
)

// Export renders a scope's sessions as an iCalendar feed. Sessions with
// resolved slot times become timed VEVENTs; the rest become all-day events.
func Export(sessions []store.Session) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//cohortplan//schedule//EN")

	now := time.Now().UTC()
	for _, s := range sessions {
		ev := cal.AddEvent(fmt.Sprintf("session-%d@cohortplan", s.ID))
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetSummary(fmt.Sprintf("%s %s", s.Type.Icon(), s.Title))
		ev.SetDescription(s.Type.DisplayName())

		if s.StartTime != nil && s.EndTime != nil {
			ev.SetStartAt(*s.StartTime)
			ev.SetEndAt(*s.EndTime)
			continue
		}
		day := store.DayOf(s.Date)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
	}

	return cal.Serialize()
}
