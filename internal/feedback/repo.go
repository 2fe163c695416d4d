package feedback

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	myErr "feedback-main/internal/types/errors"
)

type FeedbackDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewFeedbackDBRepository(db *sql.DB, logger *zap.SugaredLogger) *FeedbackDBRepository {
	return &FeedbackDBRepository{
		DB:     db,
		Logger: logger,
	}
}

// Create - сохраняет принятый отзыв
// Возвращает созданный Feedback
func (feedbackRepository *FeedbackDBRepository) Create(
	ctx context.Context,
	feedback *Feedback,
) (*Feedback, error) {
	feedback.ID = uuid.New().String()

	query :=
		`
		INSERT INTO feedbacks (id, project_id, user_id, rating, comment, device_info, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

	_, err := feedbackRepository.DB.ExecContext(
		ctx,
		query,
		feedback.ID,
		feedback.ProjectID,
		feedback.UserID,
		feedback.Rating,
		feedback.Comment,
		[]byte(feedback.DeviceInfo),
		feedback.IPAddress,
		feedback.CreatedAt,
	)

	if err != nil {
		feedbackRepository.Logger.Error(
			"Failed save feedback to DB",
			zap.Error(err),
			zap.String("feedbackID", feedback.ID),
		)

		return nil, myErr.ErrDBInternal
	}

	feedbackRepository.Logger.Info(
		fmt.Sprintf("Feedback with feedbackID %s created successfully", feedback.ID),
	)

	return feedback, nil
}

// GetByProjectID - все отзывы проекта, новые первыми
func (feedbackRepository *FeedbackDBRepository) GetByProjectID(
	ctx context.Context,
	projectID string,
) ([]*Feedback, error) {
	query :=
		`
		SELECT id, project_id, user_id, rating, comment, device_info, ip_address, created_at
		FROM feedbacks
		WHERE project_id = $1
		ORDER BY created_at DESC
		`

	rows, err := feedbackRepository.DB.QueryContext(ctx, query, projectID)
	if err != nil {
		feedbackRepository.Logger.Error(
			"Failed to get feedbacks from DB",
			zap.Error(err),
			zap.String("projectID", projectID),
		)

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var feedbacks []*Feedback
	for rows.Next() {
		var feedback Feedback
		var deviceInfo []byte
		err := rows.Scan(
			&feedback.ID,
			&feedback.ProjectID,
			&feedback.UserID,
			&feedback.Rating,
			&feedback.Comment,
			&deviceInfo,
			&feedback.IPAddress,
			&feedback.CreatedAt,
		)
		if err != nil {
			feedbackRepository.Logger.Error(
				"Failed to scan feedback row from DB",
				zap.Error(err),
			)

			return nil, myErr.ErrDBInternal
		}
		feedback.DeviceInfo = deviceInfo

		feedbacks = append(feedbacks, &feedback)
	}

	if err := rows.Err(); err != nil {
		feedbackRepository.Logger.Error(
			"Error occurred while iterating over feedback rows from DB",
			zap.Error(err),
			zap.String("projectID", projectID),
		)

		return nil, myErr.ErrDBInternal
	}

	return feedbacks, nil
}
