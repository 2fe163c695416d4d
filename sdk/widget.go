package sdk

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// State - состояние презентации виджета
type State string

const (
	StateForm        State = "form"
	StateLoading     State = "loading"
	StateSuccess     State = "success"
	StateError       State = "error"
	StateRateLimited State = "rate_limited"
)

// View - снимок состояния для рендерера
type View struct {
	State       State
	Open        bool
	Rating      int
	Comment     string
	FieldErrors FieldErrors // локализованные ошибки полей формы
	Message     string      // локализованный текст для success/error/rate limit
	Theme       []ThemeVar
}

// Renderer - порт отрисовки; машина состояний не знает про DOM
type Renderer interface {
	Render(view View)
}

// NopRenderer - заглушка для встраивания без UI
type NopRenderer struct{}

func (NopRenderer) Render(View) {}

// SubmitUseCase - порт оркестратора для виджета
type SubmitUseCase interface {
	Execute(ctx context.Context, rating int, comment string) (*Feedback, error)
}

// Widget - машина состояний презентации:
// form -> loading -> success | error | rate_limited.
// Открытие/закрытие виджета - независимый переключатель,
// на состояние отправки не влияет
type Widget struct {
	useCase  SubmitUseCase
	config   Config
	renderer Renderer
	logger   *zap.SugaredLogger

	state       State
	open        bool
	rating      int
	comment     string
	fieldErrors FieldErrors
	messageKey  MessageKey
}

func NewWidget(useCase SubmitUseCase, config Config, renderer Renderer, logger *zap.SugaredLogger) *Widget {
	if renderer == nil {
		renderer = NopRenderer{}
	}

	return &Widget{
		useCase:  useCase,
		config:   config,
		renderer: renderer,
		logger:   logger,
		state:    StateForm,
	}
}

// CurrentState - текущее состояние презентации
func (w *Widget) CurrentState() State {
	return w.state
}

// IsOpen - видимость виджета
func (w *Widget) IsOpen() bool {
	return w.open
}

// Toggle - показать/скрыть виджет
func (w *Widget) Toggle() {
	w.open = !w.open
	w.render()
}

// SelectRating - выбор звезды; сбрасывает показанные ошибки полей
func (w *Widget) SelectRating(rating int) {
	if w.state != StateForm {
		return
	}

	w.rating = rating
	w.fieldErrors = nil
	w.render()
}

// SetComment - ввод комментария; сбрасывает показанные ошибки полей
func (w *Widget) SetComment(comment string) {
	if w.state != StateForm {
		return
	}

	w.comment = comment
	w.fieldErrors = nil
	w.render()
}

// Submit - запуск отправки. Допустим из формы и из окна ошибки (retry).
// Пока идет загрузка, повторные вызовы игнорируются
func (w *Widget) Submit(ctx context.Context) {
	if w.state != StateForm && w.state != StateError {
		return
	}

	// Предварительная проверка формы теми же правилами, что и в оркестраторе:
	// при ошибке остаемся в форме и до сети не доходим
	if errs := w.validateForm(); len(errs) > 0 {
		w.state = StateForm
		w.fieldErrors = errs
		w.render()
		return
	}

	w.state = StateLoading
	w.render()

	feedback, err := w.useCase.Execute(ctx, w.rating, w.comment)
	if err != nil {
		w.fail(err)
		return
	}

	w.state = StateSuccess
	w.messageKey = KeySuccess
	w.render()

	if w.config.OnSuccess != nil {
		w.config.OnSuccess(*feedback)
	}
}

// Dismiss - возврат к форме из окна ошибки или rate limit.
// Выбранная оценка и комментарий сбрасываются
func (w *Widget) Dismiss() {
	if w.state != StateError && w.state != StateRateLimited {
		return
	}

	w.state = StateForm
	w.rating = 0
	w.comment = ""
	w.fieldErrors = nil
	w.messageKey = ""
	w.render()
}

func (w *Widget) fail(err error) {
	if errors.Is(err, ErrRateLimitExceeded) {
		w.state = StateRateLimited
		w.messageKey = KeyRateLimit
	} else {
		w.state = StateError
		w.messageKey = ClassifyMessage(err)
		if w.config.Debug {
			w.logger.Errorf("feedback submit failed: %v", err)
		}
	}
	w.render()

	if w.config.OnError != nil {
		w.config.OnError(err)
	}
}

// validateForm - локальная проверка введенного. Поля, которые заполняет
// оркестратор, подставляются заглушками, наружу идут только ошибки формы
func (w *Widget) validateForm() FieldErrors {
	candidate := Feedback{
		ProjectID:  w.config.ProjectID,
		UserID:     "pending",
		Rating:     w.rating,
		Comment:    w.comment,
		DeviceInfo: DeviceInfo{UserAgent: "pending"},
		Timestamp:  FormatTimestamp(time.Now()),
	}

	out := FieldErrors{}
	for field := range Validate(candidate) {
		switch field {
		case "rating":
			out[field] = Translate(KeyRatingError, w.config.Locale)
		case "comment":
			out[field] = Translate(KeyCommentError, w.config.Locale)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

func (w *Widget) render() {
	view := View{
		State:       w.state,
		Open:        w.open,
		Rating:      w.rating,
		Comment:     w.comment,
		FieldErrors: w.fieldErrors,
		Theme:       w.config.Theme.CSSVars(),
	}
	if w.messageKey != "" {
		view.Message = Translate(w.messageKey, w.config.Locale)
	}

	w.renderer.Render(view)
}
