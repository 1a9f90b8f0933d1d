package entity

import "time"

// Streak is the consecutive-reading summary shown to the user.
type Streak struct {
	Current  int  `json:"streak"`
	TodayMet bool `json:"today_met"`
}

// ComputeStreak counts consecutive reading days ending yesterday, then adds today
// when the user both opened the app and read today. Dates are local calendar dates.
func ComputeStreak(today time.Time, readingDates []time.Time, openedToday bool) Streak {
	days := make(map[string]struct{}, len(readingDates))
	for _, d := range readingDates {
		days[d.Format(time.DateOnly)] = struct{}{}
	}

	has := func(d time.Time) bool {
		_, ok := days[d.Format(time.DateOnly)]

		return ok
	}

	streak := 0
	for cursor := today.AddDate(0, 0, -1); has(cursor); cursor = cursor.AddDate(0, 0, -1) {
		streak++
	}

	todayMet := openedToday && has(today)
	if todayMet {
		streak++
	}

	return Streak{Current: streak, TodayMet: todayMet}
}
