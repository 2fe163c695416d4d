package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	myErr "feedback-main/internal/types/errors"
)

// RateLimiter - фиксированное окно на маршруте приема отзывов:
// не больше Limit запросов с одного IP за Window
type RateLimiter struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
	Limit       int64
	Window      time.Duration
}

func NewRateLimiter(
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
	limit int64,
	window time.Duration,
) *RateLimiter {
	return &RateLimiter{
		RedisClient: redisClient,
		Logger:      logger,
		Limit:       limit,
		Window:      window,
	}
}

// Middleware - счетчик в Redis: INCR + EXPIRE на первом запросе окна
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:" + requestIP(r)

		count, err := rl.RedisClient.Incr(r.Context(), key).Result()
		if err != nil {
			// лимит best-effort: при недоступном Redis запрос пропускаем
			rl.Logger.Warnf("rate limit check failed: %v", err)
			next.ServeHTTP(w, r)

			return
		}

		if count == 1 {
			if err := rl.RedisClient.Expire(r.Context(), key, rl.Window).Err(); err != nil {
				rl.Logger.Warnf("failed to set rate limit window: %v", err)
			}
		}

		if count > rl.Limit {
			myErr.SendErrorTo(w, myErr.ErrTooManyRequests, http.StatusTooManyRequests, rl.Logger)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
