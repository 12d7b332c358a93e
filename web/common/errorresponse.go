package common

// ErrorResponse is the error body shape the frontend expects:
// {"status": "error", "message": ..., "data": {...}} with data only present
// on conflicts (it carries the existing record's id and name).
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  "error",
		Message: message,
	}
}

func NewConflictResponse(message string, data interface{}) *ErrorResponse {
	return &ErrorResponse{
		Status:  "error",
		Message: message,
		Data:    data,
	}
}
