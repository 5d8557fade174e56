package entities

import "time"

type ProjectStatus string

const (
	StatusPending   ProjectStatus = "pending"
	StatusEvaluated ProjectStatus = "evaluated"
)

// Project is a competition entry submitted under an award. Status only moves
// forward: pending at creation, evaluated once the first verdict is recorded,
// never back.
type Project struct {
	ProjectID    string
	AwardID      string
	AuthorID     string
	Title        string
	Summary      string
	TopicArea    string
	CoauthorIDs  []string
	ArtifactPath string
	Status       ProjectStatus
	SubmittedAt  time.Time
	UpdatedAt    time.Time
}

func (p Project) Pending() bool {
	return p.Status == StatusPending
}
