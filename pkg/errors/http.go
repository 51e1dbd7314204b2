package errors

// NewHTTPError returns a new HTTPError. If statusCode is 0, it defaults
// to 400 Bad Request.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewBadRequestHTTPError returns a 400 Bad Request error.
func NewBadRequestHTTPError(message string) *HTTPError {
	return &HTTPError{Code: 400, Message: message, StatusCode: StatusBadRequest}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{Code: 401, Message: MessageUnauthorized, StatusCode: StatusUnauthorized}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{Code: 403, Message: MessageForbidden, StatusCode: StatusForbidden}
}

// NewNotFoundHTTPError returns a 404 Not Found error.
func NewNotFoundHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageNotFound
	}
	return &HTTPError{Code: 404, Message: message, StatusCode: StatusNotFound}
}

// NewMethodNotAllowedHTTPError returns a 405 Method Not Allowed error.
func NewMethodNotAllowedHTTPError() *HTTPError {
	return &HTTPError{Code: 405, Message: MessageMethodNotAllowed, StatusCode: StatusMethodNotAllowed}
}

// NewInternalHTTPError returns a 500 error carrying provider details.
func NewInternalHTTPError(message, details string) *HTTPError {
	return &HTTPError{Code: 500, Message: message, StatusCode: 500, Details: details}
}

func (e *HTTPError) Error() string {
	return e.Message
}
