package http

import (
	"alert-srv/internal/alert"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	alert.ErrAlertNotFound:      pkgErrors.NewNotFoundHTTPError("Alert not found"),
	alert.ErrNoFailedDeliveries: pkgErrors.NewBadRequestHTTPError("No failed deliveries to retry for this alert"),
	alert.ErrDispatchInProgress: pkgErrors.NewHTTPError(409, "A dispatch is already in progress for this alert", 409),
	alert.ErrAlertExpired:       pkgErrors.NewBadRequestHTTPError("Alert has expired"),
}
