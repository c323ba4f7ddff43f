package model

import "time"

// ReportFilter narrows the report list. Every predicate is optional
// and they compose conjunctively. The date range only applies when
// both ends parsed.
type ReportFilter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	ReportType     string
	VehicleType    string
	RegistrationNo string
}

func (f ReportFilter) HasRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// RangeBounds returns the half-open timestamp interval covering the
// inclusive calendar-date range [start, end].
func (f ReportFilter) RangeBounds() (time.Time, time.Time) {
	start := *f.StartDate
	end := f.EndDate.AddDate(0, 0, 1)
	return start, end
}
