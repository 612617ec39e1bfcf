package remote

// Error codes carried in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeWrongAlgorithm = "WRONG_ALGORITHM"
	CodeEmptySource    = "EMPTY_SOURCE"
	CodeInvalidGraph   = "INVALID_GRAPH"
	CodeGraphTooLarge  = "GRAPH_TOO_LARGE"
	CodeRateLimited    = "RATE_LIMITED"
	CodeCanceled       = "CANCELED"
	CodeComputeFailed  = "COMPUTE_FAILED"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is one of the Code* constants.
	Code string `json:"code,omitempty"`

	// Details provides additional error context (optional).
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of GET /v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
