package common

import (
	"tempora.io/tempora/core"
)

// MonthRangeQuery binds the fromYear/fromMonth/toYear/toMonth query
// parameters shared by the template and timesheet listings.
type MonthRangeQuery struct {
	FromYear  int `form:"fromYear" binding:"required"`
	FromMonth int `form:"fromMonth" binding:"required,min=1,max=12"`
	ToYear    int `form:"toYear" binding:"required"`
	ToMonth   int `form:"toMonth" binding:"required,min=1,max=12"`
}

func (q MonthRangeQuery) Range() core.MonthRange {
	return core.MonthRange{
		FromYear:  q.FromYear,
		FromMonth: q.FromMonth,
		ToYear:    q.ToYear,
		ToMonth:   q.ToMonth,
	}
}
