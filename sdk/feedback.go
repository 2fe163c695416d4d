package sdk

import (
	"context"
	"time"
)

// DeviceInfo - контекст устройства, с которого отправлен отзыв.
// Фиксированный набор полей плюс Extra для произвольной телеметрии.
type DeviceInfo struct {
	UserAgent  string                 `json:"userAgent"`
	URL        string                 `json:"url,omitempty"`
	ScreenSize string                 `json:"screenSize,omitempty"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// Feedback - структура отзыва, отправляемого виджетом
type Feedback struct {
	ProjectID  string     `json:"projectId"`
	UserID     string     `json:"userId"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
	Timestamp  string     `json:"timestamp"` // ISO-8601
}

// FeedbackSender - порт отправки отзыва на бекенд
type FeedbackSender interface {
	// Send - доставляет отзыв на endpoint, авторизуясь публичным ключом.
	// Возвращает nil только если сервер подтвердил прием
	Send(ctx context.Context, feedback Feedback, endpoint string, apiKey string) error
}

// UserStorage - порт локального хранилища установки
type UserStorage interface {
	// UserID - идентификатор установки, создается лениво при первом обращении
	UserID() string
	// IsRateLimited - true, если с момента последней успешной отправки
	// прошло меньше cooldown
	IsRateLimited(cooldown time.Duration) bool
	// RecordSubmission - перезаписывает отметку последней отправки текущим временем.
	// Вызывается только после подтвержденной доставки
	RecordSubmission()
}

// timestampLayout - ISO-8601 с миллисекундной точностью
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp - время создания отзыва в формате провода
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
