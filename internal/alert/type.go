package alert

import (
	"time"

	"alert-srv/internal/model"
)

// CreateInput carries the administrator's "create alert" intent.
type CreateInput struct {
	Type      string
	Severity  string
	Title     string
	Message   string
	Parishes  []string
	ExpiresAt *time.Time
}

// RetryResult reports the outcome of a retry pass over the failed subset
// of an alert's delivery attempts.
type RetryResult struct {
	TotalRetried  int                 `json:"totalRetried"`
	SuccessCount  int                 `json:"successCount"`
	FailureCount  int                 `json:"failureCount"`
	DeliveryStats model.DeliveryStats `json:"deliveryStats"`
}

// Analytics is the read-only projection of an alert's delivery counters.
type Analytics struct {
	AlertID        string               `json:"alertId"`
	DeliveryStatus model.DeliveryStatus `json:"deliveryStatus"`
	RecipientCount int                  `json:"recipientCount"`
	DeliveredCount int                  `json:"deliveredCount"`
	FailedCount    int                  `json:"failedCount"`
	DeliveryStats  model.DeliveryStats  `json:"deliveryStats"`
	DeliveryRate   float64              `json:"deliveryRate"`
}
