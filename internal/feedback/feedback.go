package feedback

import (
	"context"
	"encoding/json"
	"time"
)

// Feedback - отзыв, принятый коллектором
type Feedback struct {
	ID         string          `json:"id"`         // uuid
	ProjectID  string          `json:"project_id"` // uuid
	UserID     string          `json:"user_id"`    // анонимный идентификатор установки SDK
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment,omitempty"`
	DeviceInfo json.RawMessage `json:"device_info"`
	IPAddress  string          `json:"ip_address"`
	CreatedAt  int64           `json:"created_at"` // unix миллисекунды
}

// FeedbackRepo - репозиторий для работы с отзывами
//
//go:generate mockgen -source=internal/feedback/feedback.go -destination=internal/mocks/mock_feedback_repo.go -package=mocks
type FeedbackRepo interface {
	// Create - сохраняет принятый отзыв
	// Возвращает созданный Feedback
	Create(ctx context.Context, feedback *Feedback) (*Feedback, error)

	// GetByProjectID - все отзывы проекта, новые первыми
	GetByProjectID(ctx context.Context, projectID string) ([]*Feedback, error)
}

// timestampLayout - ISO-8601 с миллисекундной точностью, формат клиента
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseClientTimestamp - ISO-8601 строка клиента -> unix миллисекунды
func ParseClientTimestamp(ts string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return 0, err
	}

	return t.UnixMilli(), nil
}

// FormatClientTimestamp - обратное преобразование; точно обратимо
// с точностью до миллисекунды
func FormatClientTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(timestampLayout)
}
