package sdk

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUseCase - управляемый оркестратор для тестов машины состояний
type fakeUseCase struct {
	calls    int
	feedback *Feedback
	err      error
}

func (f *fakeUseCase) Execute(_ context.Context, rating int, comment string) (*Feedback, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.feedback != nil {
		return f.feedback, nil
	}
	fb := validFeedback()
	fb.Rating = rating
	fb.Comment = comment
	return &fb, nil
}

// recordingRenderer - запоминает все отрисованные снимки
type recordingRenderer struct {
	views []View
}

func (r *recordingRenderer) Render(view View) {
	r.views = append(r.views, view)
}

func (r *recordingRenderer) states() []State {
	out := make([]State, 0, len(r.views))
	for _, v := range r.views {
		out = append(out, v.State)
	}
	return out
}

func newTestWidget(uc *fakeUseCase, cfg Config) (*Widget, *recordingRenderer) {
	r := &recordingRenderer{}
	return NewWidget(uc, cfg, r, zap.NewNop().Sugar()), r
}

func TestWidget_SubmitSuccess(t *testing.T) {
	uc := &fakeUseCase{}
	var gotSuccess *Feedback
	cfg := testConfig()
	cfg.OnSuccess = func(f Feedback) { gotSuccess = &f }

	w, r := newTestWidget(uc, cfg)
	w.SelectRating(5)
	w.SetComment("Great!")
	w.Submit(context.Background())

	assert.Equal(t, StateSuccess, w.CurrentState())
	assert.Equal(t, []State{StateForm, StateForm, StateLoading, StateSuccess}, r.states())
	assert.Equal(t, 1, uc.calls)
	require.NotNil(t, gotSuccess)
	assert.Equal(t, 5, gotSuccess.Rating)
	assert.Equal(t, Translate(KeySuccess, LocaleEN), r.views[len(r.views)-1].Message)
}

func TestWidget_LocalValidationBlocksSubmit(t *testing.T) {
	uc := &fakeUseCase{}
	w, r := newTestWidget(uc, testConfig())

	// оценка не выбрана - остаемся в форме с ошибкой поля,
	// оркестратор не вызывается
	w.Submit(context.Background())

	assert.Equal(t, StateForm, w.CurrentState())
	assert.Equal(t, 0, uc.calls)
	last := r.views[len(r.views)-1]
	assert.True(t, last.FieldErrors.Has("rating"))

	// слишком длинный комментарий
	w.SelectRating(4)
	w.SetComment(strings.Repeat("a", 1001))
	w.Submit(context.Background())

	assert.Equal(t, 0, uc.calls)
	last = r.views[len(r.views)-1]
	assert.True(t, last.FieldErrors.Has("comment"))
	assert.False(t, last.FieldErrors.Has("rating"))
}

func TestWidget_InputClearsFieldErrors(t *testing.T) {
	uc := &fakeUseCase{}
	w, r := newTestWidget(uc, testConfig())

	w.Submit(context.Background())
	assert.True(t, r.views[len(r.views)-1].FieldErrors.Has("rating"))

	w.SelectRating(3)
	assert.Empty(t, r.views[len(r.views)-1].FieldErrors)

	w.Submit(context.Background())
	assert.Equal(t, 1, uc.calls)
}

func TestWidget_RateLimited(t *testing.T) {
	uc := &fakeUseCase{err: ErrRateLimitExceeded}
	var gotErr error
	cfg := testConfig()
	cfg.OnError = func(err error) { gotErr = err }

	w, r := newTestWidget(uc, cfg)
	w.SelectRating(5)
	w.Submit(context.Background())

	assert.Equal(t, StateRateLimited, w.CurrentState())
	assert.ErrorIs(t, gotErr, ErrRateLimitExceeded)
	assert.Equal(t, Translate(KeyRateLimit, LocaleEN), r.views[len(r.views)-1].Message)

	// явное закрытие возвращает форму и сбрасывает выбор
	w.Dismiss()
	assert.Equal(t, StateForm, w.CurrentState())
	assert.Equal(t, 0, r.views[len(r.views)-1].Rating)
}

func TestWidget_ServerErrorPath(t *testing.T) {
	uc := &fakeUseCase{err: &RequestError{Status: 503}}
	w, r := newTestWidget(uc, testConfig())

	w.SelectRating(5)
	w.Submit(context.Background())

	assert.Equal(t, StateError, w.CurrentState())
	assert.Equal(t, []State{StateForm, StateLoading, StateError}, r.states()[1:])
	assert.Equal(t, Translate(KeyServerError, LocaleEN), r.views[len(r.views)-1].Message)

	// retry из окна ошибки запускает отправку заново
	uc.err = nil
	w.Submit(context.Background())
	assert.Equal(t, StateSuccess, w.CurrentState())
	assert.Equal(t, 2, uc.calls)
}

func TestWidget_SubmitIgnoredWhileLoading(t *testing.T) {
	uc := &fakeUseCase{}
	w, _ := newTestWidget(uc, testConfig())

	w.SelectRating(5)
	w.Submit(context.Background())

	// success терминален для цикла отправки: повторный Submit игнорируется
	w.Submit(context.Background())
	assert.Equal(t, 1, uc.calls)

	// ввод в несоответствующем состоянии тоже игнорируется
	w.SelectRating(1)
	assert.Equal(t, 5, w.rating)
}

func TestWidget_ToggleIsOrthogonal(t *testing.T) {
	uc := &fakeUseCase{err: &RequestError{Status: 500}}
	w, _ := newTestWidget(uc, testConfig())

	assert.False(t, w.IsOpen())
	w.Toggle()
	assert.True(t, w.IsOpen())

	w.SelectRating(2)
	w.Submit(context.Background())
	assert.Equal(t, StateError, w.CurrentState())

	// переключение видимости не трогает состояние отправки
	w.Toggle()
	assert.False(t, w.IsOpen())
	assert.Equal(t, StateError, w.CurrentState())
}

func TestWidget_LocalizedMessages(t *testing.T) {
	uc := &fakeUseCase{err: &RequestError{Status: 404}}
	cfg := testConfig()
	cfg.Locale = LocaleES

	w, r := newTestWidget(uc, cfg)
	w.SelectRating(1)
	w.Submit(context.Background())

	assert.Equal(t, Translate(KeyClientError, LocaleES), r.views[len(r.views)-1].Message)
}
