package http

type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CreateEvaluationRequest struct {
	ProjectID   string  `json:"project_id"`
	Verdict     string  `json:"verdict"`
	Score       float64 `json:"score"`
	EvaluatedAt string  `json:"evaluated_at,omitempty"`
}

type UpdateEvaluationRequest struct {
	Verdict     string  `json:"verdict"`
	Score       float64 `json:"score"`
	EvaluatedAt string  `json:"evaluated_at,omitempty"`
}

type EvaluationResponse struct {
	EvaluationID string  `json:"evaluation_id"`
	ProjectID    string  `json:"project_id"`
	EvaluatorID  string  `json:"evaluator_id"`
	Verdict      string  `json:"verdict"`
	Score        float64 `json:"score"`
	EvaluatedAt  string  `json:"evaluated_at"`
}

type EvaluationListResponse struct {
	Items []EvaluationResponse `json:"items"`
}

type QueueItemResponse struct {
	ProjectID   string `json:"project_id"`
	AwardID     string `json:"award_id"`
	Title       string `json:"title"`
	SubmittedAt string `json:"submitted_at"`
}

type QueueResponse struct {
	Items []QueueItemResponse `json:"items"`
}
