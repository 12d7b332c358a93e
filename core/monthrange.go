package core

// MonthRange is an inclusive [from, to] window over (year, month) pairs,
// shared by the template and timesheet listings.
type MonthRange struct {
	FromYear  int
	FromMonth int
	ToYear    int
	ToMonth   int
}

// Contains reports whether (year, month) falls inside the range. Both ends
// are inclusive.
func (r MonthRange) Contains(year, month int) bool {
	afterFrom := year > r.FromYear || (year == r.FromYear && month >= r.FromMonth)
	beforeTo := year < r.ToYear || (year == r.ToYear && month <= r.ToMonth)
	return afterFrom && beforeTo
}
