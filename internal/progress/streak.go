package progress

import "time"

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextStreak returns the streak after activity at now, given the day of
// the previous activity. Same day keeps the streak, the next day extends
// it, and any gap restarts it at 1.
func NextStreak(current int, lastActive *time.Time, now time.Time) int {
	if lastActive == nil {
		return 1
	}
	last := Day(lastActive.In(now.Location()))
	today := Day(now)

	switch {
	case last.Equal(today):
		if current < 1 {
			return 1
		}
		return current
	case last.AddDate(0, 0, 1).Equal(today):
		return current + 1
	default:
		return 1
	}
}
