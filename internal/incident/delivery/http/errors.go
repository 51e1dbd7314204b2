package http

import (
	"alert-srv/internal/incident"
	pkgErrors "alert-srv/pkg/errors"
	"alert-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	incident.ErrReportNotFound:        pkgErrors.NewNotFoundHTTPError("Incident report not found"),
	incident.ErrNotCommunityConfirmed: pkgErrors.NewBadRequestHTTPError("Report must be community confirmed first"),
	incident.ErrAlreadyVerified:       pkgErrors.NewBadRequestHTTPError("Report is already ODPEM verified"),
}
