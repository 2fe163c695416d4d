package sdk

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTempStorage(t *testing.T) (*FileUserStorage, string) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileUserStorage(path, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	return s, path
}

func TestFileUserStorage_UserIDIsStable(t *testing.T) {
	s, path := newTempStorage(t)

	id := s.UserID()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, s.UserID())

	// новый экземпляр над тем же файлом видит тот же идентификатор
	s2, err := NewFileUserStorage(path, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	assert.Equal(t, id, s2.UserID())
}

func TestFileUserStorage_RateLimit(t *testing.T) {
	s, _ := newTempStorage(t)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// до первой отправки лимита нет
	assert.False(t, s.IsRateLimited(2*time.Minute))

	s.RecordSubmission()
	assert.True(t, s.IsRateLimited(2*time.Minute))

	// внутри окна, на границе и после
	now = now.Add(119 * time.Second)
	assert.True(t, s.IsRateLimited(2*time.Minute))

	now = now.Add(time.Second)
	assert.False(t, s.IsRateLimited(2*time.Minute))
}

func TestFileUserStorage_RecordOverwrites(t *testing.T) {
	s, path := newTempStorage(t)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.RecordSubmission()
	now = now.Add(10 * time.Minute)
	assert.False(t, s.IsRateLimited(2*time.Minute))

	// повторная фиксация перезаписывает отметку, а не добавляет
	s.RecordSubmission()
	assert.True(t, s.IsRateLimited(2*time.Minute))

	// отметка переживает перезапуск
	s2, err := NewFileUserStorage(path, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	s2.now = func() time.Time { return now }
	assert.True(t, s2.IsRateLimited(2*time.Minute))
}
