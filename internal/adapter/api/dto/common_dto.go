package dto

// Response is the envelope of every API response except /health.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse documents the failure shape of Response.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Branch not found"`
}

// MessageData is the payload of delete responses.
type MessageData struct {
	Message string `json:"message" example:"Branch deleted"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}
