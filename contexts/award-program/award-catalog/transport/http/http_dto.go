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

type StagePayload struct {
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CreateAwardRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Year        int            `json:"year"`
	Stages      []StagePayload `json:"stages"`
}

type UpdateAwardRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Year        int            `json:"year"`
	Stages      []StagePayload `json:"stages"`
}

type AwardResponse struct {
	AwardID     string         `json:"award_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Year        int            `json:"year"`
	CreatorID   string         `json:"creator_id"`
	Stages      []StagePayload `json:"stages"`
}

type AwardListResponse struct {
	Items  []AwardResponse `json:"items"`
	Mine   []AwardResponse `json:"mine,omitempty"`
	Others []AwardResponse `json:"others,omitempty"`
}

type DeleteAwardResponse struct {
	AwardID             string `json:"award_id"`
	CascadedStages      int    `json:"cascaded_stages"`
	CascadedProjects    int    `json:"cascaded_projects"`
	CascadedEvaluations int    `json:"cascaded_evaluations"`
}
