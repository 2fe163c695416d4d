package sdk

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// submissionCooldown - фиксированное окно между отправками с одной установки
const submissionCooldown = 2 * time.Minute

// SubmitFeedbackUseCase - оркестратор отправки отзыва:
// rate limit -> сборка записи -> валидация -> транспорт -> фиксация успеха.
// Каждый шаг закрывает дорогу следующему
type SubmitFeedbackUseCase struct {
	Sender  FeedbackSender
	Storage UserStorage
	Config  Config
	Logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewSubmitFeedbackUseCase(
	sender FeedbackSender,
	storage UserStorage,
	config Config,
	logger *zap.SugaredLogger,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		Sender:  sender,
		Storage: storage,
		Config:  config,
		Logger:  logger,
		now:     time.Now,
	}
}

// Execute - принимает оценку и комментарий, возвращает отправленную запись
// либо типизированную ошибку
func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, rating int, comment string) (*Feedback, error) {
	// 1. Бизнес-правило: не чаще одного отзыва в две минуты
	if uc.Storage.IsRateLimited(submissionCooldown) {
		return nil, ErrRateLimitExceeded
	}

	// 2. Сборка записи
	feedback := Feedback{
		ProjectID:  uc.Config.ProjectID,
		UserID:     uc.Storage.UserID(),
		Rating:     rating,
		Comment:    comment,
		DeviceInfo: uc.Config.DeviceInfo,
		Timestamp:  FormatTimestamp(uc.now()),
	}

	// 3. Валидация домена: детали по полям только в лог,
	// наружу один общий сигнал
	if fieldErrs := Validate(feedback); fieldErrs != nil {
		uc.Logger.Debugf("feedback validation failed: %v", fieldErrs)
		return nil, ErrValidation
	}

	// 4. Отправка через порт
	endpoint := uc.Config.APIEndpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if err := uc.Sender.Send(ctx, feedback, endpoint, uc.Config.APIKey); err != nil {
		return nil, err
	}

	// 5. Окно rate limit расходуется только после подтвержденной доставки
	uc.Storage.RecordSubmission()

	return &feedback, nil
}
