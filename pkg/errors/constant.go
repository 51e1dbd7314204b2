package errors

import "net/http"

const (
	StatusBadRequest       = http.StatusBadRequest       // 400
	StatusUnauthorized     = http.StatusUnauthorized     // 401
	StatusForbidden        = http.StatusForbidden        // 403
	StatusNotFound         = http.StatusNotFound         // 404
	StatusMethodNotAllowed = http.StatusMethodNotAllowed // 405
)

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
	// MessageNotFound is the default message for 404.
	MessageNotFound = "Not found"
	// MessageMethodNotAllowed is the default message for 405.
	MessageMethodNotAllowed = "Method not allowed"
)
