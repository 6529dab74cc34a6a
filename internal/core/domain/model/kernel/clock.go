package kernel

import "time"

// Timestamps are kept at minute precision: the snapshot document stores
// "dd/mm/yyyy hh:mm" and both storage backends must round-trip the same value.

// TruncateToMinute drops seconds and below while keeping the location.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// WholeMinutesBetween returns the whole minutes elapsed from start to end,
// truncated toward zero. The result is negative when end precedes start.
func WholeMinutesBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Minute)
}

// SameLocalDay reports whether a and b fall on the same calendar day in loc.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// LocalDay returns midnight of t's calendar day in loc.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
