package domain

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	// TicketStatusOpen is the only status this service ever writes.
	TicketStatusOpen TicketStatus = "OPEN"

	// TicketStatusUnknown is a display default returned when a stored
	// ticket carries no status attribute. It is never persisted.
	TicketStatusUnknown TicketStatus = "UNKNOWN"
)

// Ticket is the persisted incident record. Status values other than OPEN
// may be written out-of-band by external systems; this service reads them
// back verbatim.
type Ticket struct {
	ID               string
	UserID           string
	IssueDescription string
	Status           TicketStatus
}
