package models

import "time"

// NotificationType classifies a customer notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is one message sent to a customer
type Notification struct {
	ID      string           `json:"id"`
	Client  string           `json:"client"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	SentAt  time.Time        `json:"sent_at"`
	Read    bool             `json:"read"`
}
