package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type WinnerResponse struct {
	AwardID         string  `json:"award_id"`
	AwardName       string  `json:"award_name"`
	Year            int     `json:"year"`
	ProjectID       string  `json:"project_id"`
	Title           string  `json:"title"`
	AuthorID        string  `json:"author_id"`
	MeanScore       float64 `json:"mean_score"`
	EvaluationCount int     `json:"evaluation_count"`
}

type WinnerListResponse struct {
	Items []WinnerResponse `json:"items"`
}
