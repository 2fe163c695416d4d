package events

import "time"

type EventType string

const (
	FeedbackCreated EventType = "feedback.created"
	ProjectDeleted  EventType = "project.deleted"
)

// Event - событие жизненного цикла отзыва для внешних потребителей
type Event struct {
	Type       EventType `json:"type"`
	ProjectID  string    `json:"project_id"`
	FeedbackID string    `json:"feedback_id,omitempty"`
	Rating     int       `json:"rating,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
