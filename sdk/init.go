package sdk

import (
	"fmt"

	"go.uber.org/zap"
)

// Init - единственная точка входа SDK: валидирует конфигурацию,
// собирает адаптеры и возвращает готовый виджет. При невалидной
// конфигурации виджет не монтируется
func Init(config Config, renderer Renderer) (*Widget, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid sdk config: %w", err)
	}
	config.applyDefaults()

	logger := zap.NewNop().Sugar()
	if config.Debug {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		logger = zl.Sugar()
	}

	storage, err := NewFileUserStorage(config.StoragePath, logger)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	sender := NewHTTPFeedbackSender(logger)
	useCase := NewSubmitFeedbackUseCase(sender, storage, config, logger)

	logger.Debugf("feedback sdk initialized for project %s", config.ProjectID)

	return NewWidget(useCase, config, renderer, logger), nil
}
