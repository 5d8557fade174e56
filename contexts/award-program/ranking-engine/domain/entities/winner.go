package entities

// WinnerDeclaration is the derived standing of one award's winning project.
// It is computed on demand and never stored.
type WinnerDeclaration struct {
	AwardID         string
	AwardName       string
	Year            int
	ProjectID       string
	Title           string
	AuthorID        string
	MeanScore       float64
	EvaluationCount int
}
