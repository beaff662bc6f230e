package response

// Resp is the standard JSON response body for failures.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	ErrorCodeBadRequest   = 1
	ErrorCodeUnauthorized = 401
)
