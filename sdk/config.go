package sdk

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultEndpoint - эндпоинт коллектора по умолчанию
const DefaultEndpoint = "https://api.default.com/feedback"

// Theme - переопределения цветов виджета
type Theme struct {
	PrimaryColor         string
	BackgroundColor      string
	TextColor            string
	BorderColor          string
	InputBackgroundColor string
}

// ThemeVar - пара (CSS-переменная, значение) для рендерера
type ThemeVar struct {
	Name  string
	Value string
}

// CSSVars - статический перечень соответствий поле темы -> CSS-переменная.
// Пустые значения пропускаются
func (t Theme) CSSVars() []ThemeVar {
	pairs := []ThemeVar{
		{Name: "--fdbk-primary", Value: t.PrimaryColor},
		{Name: "--fdbk-bg", Value: t.BackgroundColor},
		{Name: "--fdbk-text", Value: t.TextColor},
		{Name: "--fdbk-border", Value: t.BorderColor},
		{Name: "--fdbk-input-bg", Value: t.InputBackgroundColor},
	}

	vars := make([]ThemeVar, 0, len(pairs))
	for _, p := range pairs {
		if p.Value != "" {
			vars = append(vars, p)
		}
	}

	return vars
}

// Config - конфигурация SDK; после Init не меняется
type Config struct {
	ProjectID   string
	APIKey      string
	APIEndpoint string // переопределение DefaultEndpoint
	Locale      Locale // en|es, по умолчанию en
	Theme       Theme
	Debug       bool           // включает диагностические логи
	StoragePath string         // файл локального состояния установки
	DeviceInfo  DeviceInfo     // контекст устройства, снимается при инициализации
	OnSuccess   func(Feedback) // колбек успешной отправки
	OnError     func(error)    // колбек ошибки
}

// validate - fail fast при инициализации: без валидной конфигурации
// виджет не монтируется
func (c *Config) validate() error {
	if c.ProjectID == "" {
		return errors.New("project id is required")
	}
	if c.APIKey == "" {
		return errors.New("api key is required")
	}

	if c.APIEndpoint != "" {
		u, err := url.Parse(c.APIEndpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid api endpoint: %q", c.APIEndpoint)
		}
	}

	switch c.Locale {
	case "":
		c.Locale = LocaleEN
	case LocaleEN, LocaleES:
	default:
		return fmt.Errorf("unsupported locale: %q", c.Locale)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.DeviceInfo.UserAgent == "" {
		c.DeviceInfo.UserAgent = fmt.Sprintf("feedback-sdk-go/1.0 (%s; %s)", runtime.GOOS, runtime.GOARCH)
	}
	if c.StoragePath == "" {
		c.StoragePath = defaultStoragePath()
	}
}

func defaultStoragePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}

	return filepath.Join(base, "feedback-sdk", "state.json")
}
