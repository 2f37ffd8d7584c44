package dto

// NotificationRequest payload.
type NotificationRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// NotificationResponse acknowledges receipt.
type NotificationResponse struct {
	Success bool `json:"success"`
}

// WorkflowRequest payload.
type WorkflowRequest struct {
	UserID      string `json:"user_id"`
	RequestType string `json:"request_type"`
}

// WorkflowResponse reports the generated workflow id.
type WorkflowResponse struct {
	WorkflowID string `json:"workflow_id"`
	Started    bool   `json:"started"`
}

// CompletionRequest payload.
type CompletionRequest struct {
	Prompt string `json:"prompt"`
}

// CompletionResponse carries the model's text verbatim.
type CompletionResponse struct {
	Answer string `json:"answer"`
}
