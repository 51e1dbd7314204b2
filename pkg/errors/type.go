package errors

// ValidationError is a malformed-input error tied to a field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// PermissionError is an insufficient-permission error tied to a field or action.
type PermissionError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// HTTPError represents an HTTP error with status code and message.
// Details, when set, is attached to the response body (used for provider
// failures surfaced as 500).
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
	Details    string
}
