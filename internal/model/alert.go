package model

import "time"

// AlertType classifies the hazard an alert is about.
type AlertType string

const (
	AlertTypeHurricane  AlertType = "HURRICANE"
	AlertTypeFlood      AlertType = "FLOOD"
	AlertTypeEarthquake AlertType = "EARTHQUAKE"
	AlertTypeFire       AlertType = "FIRE"
	AlertTypeLandslide  AlertType = "LANDSLIDE"
	AlertTypeOther      AlertType = "OTHER"
)

var alertTypes = map[AlertType]struct{}{
	AlertTypeHurricane:  {},
	AlertTypeFlood:      {},
	AlertTypeEarthquake: {},
	AlertTypeFire:       {},
	AlertTypeLandslide:  {},
	AlertTypeOther:      {},
}

// ParseAlertType parses an alert type code.
func ParseAlertType(s string) (AlertType, bool) {
	t := AlertType(s)
	_, ok := alertTypes[t]
	return t, ok
}

// Severity is the urgency classification shared by alerts and incident
// reports. Users with the emergency-only flag receive HIGH alerts only.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

var severities = map[Severity]struct{}{
	SeverityLow:    {},
	SeverityMedium: {},
	SeverityHigh:   {},
}

// ParseSeverity parses a severity code.
func ParseSeverity(s string) (Severity, bool) {
	sv := Severity(s)
	_, ok := severities[sv]
	return sv, ok
}

// DeliveryStatus is the lifecycle state of an alert's delivery run.
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "PENDING"
	DeliveryStatusInProgress DeliveryStatus = "IN_PROGRESS"
	DeliveryStatusCompleted  DeliveryStatus = "COMPLETED"
	DeliveryStatusFailed     DeliveryStatus = "FAILED"
)

// ChannelStats holds sent/failed counts for one channel.
type ChannelStats struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// DeliveryStats holds per-channel delivery counts for an alert.
type DeliveryStats struct {
	Email ChannelStats `json:"email"`
	SMS   ChannelStats `json:"sms"`
	Push  ChannelStats `json:"push"`
}

// IsZero reports whether no delivery has ever been recorded.
func (s DeliveryStats) IsZero() bool {
	return s == DeliveryStats{}
}

// ForChannel returns a pointer to the stats bucket of the given channel.
func (s *DeliveryStats) ForChannel(ch Channel) *ChannelStats {
	switch ch {
	case ChannelEmail:
		return &s.Email
	case ChannelSMS:
		return &s.SMS
	case ChannelPush:
		return &s.Push
	}
	return nil
}

// Alert is an administrator-issued broadcast to all eligible users in one
// or more parishes.
//
// Invariant: DeliveredCount + FailedCount <= RecipientCount at all times.
type Alert struct {
	ID             string         `json:"id"`
	Type           AlertType      `json:"type"`
	Severity       Severity       `json:"severity"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Parishes       []Parish       `json:"parishes"`
	DeliveryStatus DeliveryStatus `json:"deliveryStatus"`
	RecipientCount int            `json:"recipientCount"`
	DeliveredCount int            `json:"deliveredCount"`
	FailedCount    int            `json:"failedCount"`
	DeliveryStats  DeliveryStats  `json:"deliveryStats"`
	CreatedBy      string         `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	ExpiresAt      *time.Time     `json:"expiresAt,omitempty"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Expired reports whether the alert's expiry has passed at the given time.
func (a Alert) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}
