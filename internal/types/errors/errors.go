package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal = errors.New("database internal error")
	ErrNotFound   = errors.New("record not found")

	ErrNotFoundProject = errors.New("can't find a project with this key")

	ErrRatingIsInvalid  = errors.New("rating must be between 1 and 5")
	ErrCommentIsTooLong = errors.New("comment must be less than 1000 characters")
	ErrInvalidTimestamp = errors.New("timestamp must be ISO-8601")
	ErrMissingProjectID = errors.New("project id is missing")
	ErrMissingName      = errors.New("project name is missing")

	ErrNoAuth = errors.New("authorization required")
	// Намеренно без деталей, чтобы не раскрывать содержимое allow-list
	ErrOriginNotAllowed = errors.New("origin not allowed")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
	ErrTooManyRequests    = errors.New("too many requests")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
