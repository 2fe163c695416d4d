package sdk

import "unicode/utf8"

const (
	minRating        = 1
	maxRating        = 5
	maxCommentLength = 1000
)

// FieldErrors - ошибки валидации, ключ - имя поля
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Validate - проверяет отзыв по всем правилам сразу, не останавливаясь
// на первой ошибке. Те же правила используются и для подсветки формы,
// и для авторитетной проверки в оркестраторе
func Validate(f Feedback) FieldErrors {
	errs := FieldErrors{}

	if f.Rating < minRating || f.Rating > maxRating {
		errs["rating"] = "rating must be between 1 and 5"
	}
	// лимит в символах, не в байтах
	if utf8.RuneCountInString(f.Comment) > maxCommentLength {
		errs["comment"] = "comment must be less than 1000 characters"
	}
	if f.ProjectID == "" {
		errs["projectId"] = "project id is required"
	}
	if f.UserID == "" {
		errs["userId"] = "user id is required"
	}
	if f.DeviceInfo.UserAgent == "" {
		errs["deviceInfo"] = "user agent is required"
	}
	if f.Timestamp == "" {
		errs["timestamp"] = "timestamp is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
