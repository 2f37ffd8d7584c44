package dto

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	UserID           string `json:"user_id"`
	IssueDescription string `json:"issue_description"`
}

// TicketStatusRequest payload.
type TicketStatusRequest struct {
	TicketID string `json:"ticket_id"`
}

// TicketResponse is returned by both creation and status lookup.
type TicketResponse struct {
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`
}
