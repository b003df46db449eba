package domain

import "time"

// PushToken is a registered device token for push notifications.
type PushToken struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
}
