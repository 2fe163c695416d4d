package sdk

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ключи локального состояния установки
const (
	userKey = "fdbk_user_id"
	spamKey = "fdbk_last_sent"
)

// FileUserStorage - файловое хранилище установки: идентификатор установки
// и отметка времени последней успешной отправки. Аналог localStorage виджета
type FileUserStorage struct {
	path   string
	logger *zap.SugaredLogger
	now    func() time.Time

	mu     sync.Mutex
	values map[string]string
}

func NewFileUserStorage(path string, logger *zap.SugaredLogger) (*FileUserStorage, error) {
	s := &FileUserStorage{
		path:   path,
		logger: logger,
		now:    time.Now,
		values: map[string]string{},
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// UserID - идентификатор установки; создается лениво и дальше стабилен
// на все время жизни файла состояния
func (s *FileUserStorage) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id := s.values[userKey]; id != "" {
		return id
	}

	id := uuid.New().String()
	s.values[userKey] = id
	if err := s.flush(); err != nil {
		s.logger.Warnf("failed to persist installation id: %v", err)
	}

	return id
}

// IsRateLimited - true, если последняя отправка была меньше cooldown назад.
// Отсутствие отметки означает, что отправок еще не было
func (s *FileUserStorage) IsRateLimited(cooldown time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.values[spamKey]
	if raw == "" {
		return false
	}

	last, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}

	return s.now().UnixMilli()-last < cooldown.Milliseconds()
}

// RecordSubmission - перезаписывает отметку последней отправки текущим временем
func (s *FileUserStorage) RecordSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[spamKey] = strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.flush(); err != nil {
		s.logger.Warnf("failed to persist submission timestamp: %v", err)
	}
}

func (s *FileUserStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return json.Unmarshal(data, &s.values)
}

func (s *FileUserStorage) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}
