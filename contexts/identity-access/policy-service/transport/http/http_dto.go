package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CheckRequest struct {
	Action        string `json:"action"`
	ResourceType  string `json:"resource_type,omitempty"`
	ResourceOwner string `json:"resource_owner,omitempty"`
	ResourceState string `json:"resource_state,omitempty"`
}

type CheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}
