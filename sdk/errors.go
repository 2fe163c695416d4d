package sdk

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRateLimitExceeded - отзыв отклонен локальным rate limiter'ом
	ErrRateLimitExceeded = errors.New("RATE_LIMIT_EXCEEDED")
	// ErrValidation - отзыв не прошел валидацию; детали по полям логируются,
	// наружу уходит один общий сигнал
	ErrValidation = errors.New("VALIDATION_ERROR")
)

// RequestError - ответ сервера с неуспешным HTTP статусом.
// Статусы до 500 считаем клиентскими: повтор такого запроса не поможет
type RequestError struct {
	Status int
}

func (e *RequestError) Error() string {
	if e.Status >= 500 {
		return fmt.Sprintf("SERVER_ERROR:%d", e.Status)
	}
	return fmt.Sprintf("CLIENT_ERROR:%d", e.Status)
}

// Retryable - серверные ошибки можно повторять, клиентские нет
func (e *RequestError) Retryable() bool {
	return e.Status >= 500
}

// NetworkError - транспортный сбой до получения ответа (нет соединения и т.п.)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ClassifyMessage - подбирает ключ пользовательского сообщения по ошибке
// оркестратора: по префиксу тега, либо по признаку сетевого сбоя
func ClassifyMessage(err error) MessageKey {
	if err == nil {
		return KeyUnexpectedError
	}

	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "CLIENT_ERROR:"):
		return KeyClientError
	case strings.HasPrefix(msg, "SERVER_ERROR:"):
		return KeyServerError
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection"):
		return KeyConnectivityError
	}

	return KeyUnexpectedError
}
