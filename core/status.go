package core

// Status is the workflow state of a timesheet.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusReviewed  Status = "reviewed"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusReviewed, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a state an approver or reviewer can set.
func (s Status) IsDecision() bool {
	switch s {
	case StatusApproved, StatusReviewed, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
