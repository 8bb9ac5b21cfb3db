package models

import "time"

// CompletedReading marks one (day, section) reading as done.
type CompletedReading struct {
	Day         int       `json:"day"`
	SectionID   SectionID `json:"section_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// ProgressRecord is the per-plan completion ledger. One record per plan,
// created lazily on the first completion.
type ProgressRecord struct {
	PlanID    string             `json:"plan_id"`
	Completed []CompletedReading `json:"completed_readings"`
}

// Has reports whether the (day, section) pair is marked complete.
func (r ProgressRecord) Has(day int, sectionID SectionID) bool {
	for _, c := range r.Completed {
		if c.Day == day && c.SectionID == sectionID {
			return true
		}
	}
	return false
}
