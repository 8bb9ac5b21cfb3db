package models

import "time"

type SectionID string

const (
	SectionHistory      SectionID = "history"
	SectionPsalms       SectionID = "psalms"
	SectionWisdom       SectionID = "wisdom"
	SectionProphets     SectionID = "prophets"
	SectionNewTestament SectionID = "newTestament"
	SectionRevelation   SectionID = "revelation"
)

// ReadingRange is a contiguous run of chapters within a single book.
// Ranges are produced by the generator and never cross book boundaries.
type ReadingRange struct {
	Book         string `json:"book"`
	StartChapter int    `json:"start_chapter"`
	EndChapter   int    `json:"end_chapter"`
	Reference    string `json:"reference"`
}

// DailyReading holds at most one range per section for a single day.
// Sections with no remaining material are simply absent from the map.
type DailyReading struct {
	Day      int                        `json:"day"`
	Date     string                     `json:"date"` // YYYY-MM-DD format
	Sections map[SectionID]ReadingRange `json:"sections"`
}

// ReadingPlan is a named, dated schedule covering the selected sections.
// The schedule is fixed at creation time; only metadata may change later.
type ReadingPlan struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Duration    int            `json:"duration"`   // days
	StartDate   string         `json:"start_date"` // YYYY-MM-DD format
	Sections    []SectionID    `json:"sections"`
	Readings    []DailyReading `json:"readings"`
	Created     time.Time      `json:"created"`
	Updated     time.Time      `json:"updated"`
}

// EndDate returns the date of the plan's last day.
func (p ReadingPlan) EndDate() string {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return p.StartDate
	}
	return start.AddDate(0, 0, p.Duration-1).Format("2006-01-02")
}

// DayFor maps a calendar date to the plan's 1-based day index.
// The second return is false when the date falls outside the plan.
func (p ReadingPlan) DayFor(date string) (int, bool) {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return 0, false
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	day := int(d.Sub(start).Hours()/24) + 1
	if day < 1 || day > p.Duration {
		return 0, false
	}
	return day, true
}

// TotalReadings counts every (day, section) reading in the schedule.
func (p ReadingPlan) TotalReadings() int {
	n := 0
	for _, r := range p.Readings {
		n += len(r.Sections)
	}
	return n
}
