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

type SubmitProjectRequest struct {
	AwardID      string   `json:"award_id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	TopicArea    string   `json:"topic_area"`
	CoauthorIDs  []string `json:"coauthor_ids"`
	ArtifactPath string   `json:"artifact_path"`
}

type UpdateProjectRequest struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	TopicArea    string   `json:"topic_area"`
	CoauthorIDs  []string `json:"coauthor_ids"`
	ArtifactPath string   `json:"artifact_path"`
}

type ProjectResponse struct {
	ProjectID    string   `json:"project_id"`
	AwardID      string   `json:"award_id"`
	AuthorID     string   `json:"author_id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	TopicArea    string   `json:"topic_area"`
	CoauthorIDs  []string `json:"coauthor_ids,omitempty"`
	ArtifactPath string   `json:"artifact_path,omitempty"`
	Status       string   `json:"status"`
	SubmittedAt  string   `json:"submitted_at"`
}

type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
}
