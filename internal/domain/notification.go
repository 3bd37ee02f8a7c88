package domain

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeApplication  NotificationType = "application"
	NotificationTypeStatusChange NotificationType = "status_change"
	NotificationTypeNewJob       NotificationType = "new_job"
	NotificationTypeSystem       NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
