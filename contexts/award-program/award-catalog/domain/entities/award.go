package entities

import "time"

const (
	MinYear = 2000
	MaxYear = 2100
)

// ScheduleStage is a labeled date range within an award's schedule, for
// example "Submissions" or "Ceremony". Stages may overlap; only the
// start-before-end invariant is enforced per stage.
type ScheduleStage struct {
	Label     string
	StartDate time.Time
	EndDate   time.Time
}

func (s ScheduleStage) Valid() bool {
	return s.StartDate.Before(s.EndDate)
}

// Award is a named, year-scoped competition owning an ordered stage schedule.
// CreatorID references the admin principal that published it.
type Award struct {
	AwardID     string
	Name        string
	Description string
	Year        int
	CreatorID   string
	Stages      []ScheduleStage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CascadeResult reports what an award delete removed alongside the award row.
type CascadeResult struct {
	Stages      int
	Projects    int
	Evaluations int
}
