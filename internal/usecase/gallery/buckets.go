package gallery

import "time"

type bucketRule int

const (
	bucketToday bucketRule = iota
	bucketYesterday
	bucketWeekday
	bucketMonthDay
	bucketFull
)

// dateBucket derives the bucket label for one upload date. Rules are
// evaluated in strict order; the first match wins, so every date lands
// in exactly one bucket.
func dateBucket(t, now time.Time) (string, bucketRule) {
	t = t.In(now.Location())

	switch {
	case sameDay(t, now):
		return "Today", bucketToday
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday", bucketYesterday
	case sameWeek(t, now):
		return t.Weekday().String(), bucketWeekday
	case t.Year() == now.Year():
		return t.Format("January 2"), bucketMonthDay
	default:
		return t.Format("January 2, 2006"), bucketFull
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// sameWeek reports whether t falls in the calendar week containing now.
// Weeks start on Sunday.
func sameWeek(t, now time.Time) bool {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)

	return !t.Before(start) && t.Before(end)
}

func startOfWeek(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return midnight.AddDate(0, 0, -int(now.Weekday()))
}
