package incident

import "errors"

var (
	ErrReportNotFound        = errors.New("incident report not found")
	ErrNotCommunityConfirmed = errors.New("report is not community confirmed")
	ErrAlreadyVerified       = errors.New("report is already ODPEM verified")
)
