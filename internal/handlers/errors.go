package handlers

import "github.com/danielgtaylor/huma/v2"

// ErrorResponse is the JSON body for all API failures.
type ErrorResponse struct {
	status  int
	Success bool   `json:"success"`
	Message string `json:"error"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// init replaces huma's default RFC 7807 error model so failures
// serialize as {"success": false, "error": "..."}.
func init() {
	huma.NewError = func(status int, msg string, _ ...error) huma.StatusError {
		return &ErrorResponse{
			status:  status,
			Success: false,
			Message: msg,
		}
	}
}
