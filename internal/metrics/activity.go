package metrics

import (
	"time"

	"github-profile-analyzer/internal/ghfetch"
	"github-profile-analyzer/internal/profile"
)

// Activity buckets event timestamps by weekday and hour-of-day (UTC) and
// measures consistency as the fraction of weeks in the observed span that
// saw at least one event, scaled to 0-100. The span runs from the week of
// the earliest event to the week of the latest, so the metric depends only
// on the event list, never on the wall clock.
func Activity(events []ghfetch.RawEvent) profile.ActivityPattern {
	if len(events) == 0 {
		return profile.ActivityPattern{}
	}

	var dayCounts [7]int
	var hourCounts [24]int
	pushes := 0
	activeWeeks := make(map[time.Time]struct{})
	var earliest, latest time.Time

	for _, ev := range events {
		ts := ev.CreatedAt.UTC()
		dayCounts[ts.Weekday()]++
		hourCounts[ts.Hour()]++
		if ev.Type == "PushEvent" {
			pushes++
		}
		week := weekStart(ts)
		activeWeeks[week] = struct{}{}
		if earliest.IsZero() || week.Before(earliest) {
			earliest = week
		}
		if week.After(latest) {
			latest = week
		}
	}

	bestDay, bestHour := 0, 0
	for d := 1; d < 7; d++ {
		if dayCounts[d] > dayCounts[bestDay] {
			bestDay = d
		}
	}
	for h := 1; h < 24; h++ {
		if hourCounts[h] > hourCounts[bestHour] {
			bestHour = h
		}
	}

	totalWeeks := int(latest.Sub(earliest)/(7*24*time.Hour)) + 1
	consistency := round1(float64(len(activeWeeks)) / float64(totalWeeks) * 100)

	return profile.ActivityPattern{
		MostActiveDay:    time.Weekday(bestDay).String(),
		MostActiveHour:   bestHour,
		PushEvents:       pushes,
		ConsistencyScore: consistency,
	}
}

// weekStart truncates t to the preceding Monday at midnight UTC.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
