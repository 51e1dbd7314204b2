package alert

import (
	"errors"
	"fmt"
)

var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrNoFailedDeliveries = errors.New("no failed deliveries to retry for this alert")
	ErrDispatchInProgress = errors.New("a dispatch is already in progress for this alert")
	ErrAlertExpired       = errors.New("alert has expired")
)

// ProviderError signals that a provider-level failure affected the whole
// retry operation, not just individual recipients.
type ProviderError struct {
	Detail string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider failure during retry: %s", e.Detail)
}
