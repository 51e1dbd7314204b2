package http

import (
	"time"

	"alert-srv/internal/alert"
	"alert-srv/internal/model"
)

type createAlertReq struct {
	Type      string     `json:"type"`
	Severity  string     `json:"severity"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Parishes  []string   `json:"parishes"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (r createAlertReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		Type:      r.Type,
		Severity:  r.Severity,
		Title:     r.Title,
		Message:   r.Message,
		Parishes:  r.Parishes,
		ExpiresAt: r.ExpiresAt,
	}
}

type alertResp struct {
	ID             string               `json:"id"`
	Type           model.AlertType      `json:"type"`
	Severity       model.Severity       `json:"severity"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Parishes       []model.Parish       `json:"parishes"`
	DeliveryStatus model.DeliveryStatus `json:"deliveryStatus"`
	RecipientCount int                  `json:"recipientCount"`
	DeliveredCount int                  `json:"deliveredCount"`
	FailedCount    int                  `json:"failedCount"`
	DeliveryStats  model.DeliveryStats  `json:"deliveryStats"`
	CreatedBy      string               `json:"createdBy"`
	CreatedAt      time.Time            `json:"createdAt"`
	ExpiresAt      *time.Time           `json:"expiresAt,omitempty"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:             a.ID,
		Type:           a.Type,
		Severity:       a.Severity,
		Title:          a.Title,
		Message:        a.Message,
		Parishes:       a.Parishes,
		DeliveryStatus: a.DeliveryStatus,
		RecipientCount: a.RecipientCount,
		DeliveredCount: a.DeliveredCount,
		FailedCount:    a.FailedCount,
		DeliveryStats:  a.DeliveryStats,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		ExpiresAt:      a.ExpiresAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type retryResp struct {
	AlertID     string            `json:"alertId"`
	RetryResult alert.RetryResult `json:"retryResult"`
}
