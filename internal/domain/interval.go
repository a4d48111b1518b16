package domain

// MinuteInterval is a half-open interval [Start, End) of minute offsets
// within a single day. Start and End are minutes since midnight.
type MinuteInterval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals truly intersect.
// Touching intervals (a.End == b.Start) do NOT overlap: both comparisons
// are strict.
func (a MinuteInterval) Overlaps(b MinuteInterval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether b lies entirely within a.
func (a MinuteInterval) Contains(b MinuteInterval) bool {
	return a.Start <= b.Start && b.End <= a.End
}

// IsValid reports whether the interval is well-formed and lies within a day.
func (a MinuteInterval) IsValid() bool {
	return 0 <= a.Start && a.Start <= a.End && a.End <= MinutesPerDay
}

// Duration returns the length of the interval in minutes.
func (a MinuteInterval) Duration() int {
	return a.End - a.Start
}
