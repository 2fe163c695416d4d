package project

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Project - структура проекта, собирающего отзывы
type Project struct {
	ID             string            `json:"id"` // uuid
	Name           string            `json:"name"`
	PublicKey      string            `json:"public_key"`
	SecretKeyHash  string            `json:"-"` // bcrypt, наружу не отдается
	AllowedOrigins []string          `json:"allowed_origins"`
	ThemeConfig    map[string]string `json:"theme_config,omitempty"`
	CreatedAt      int64             `json:"created_at"` // unix миллисекунды
}

// IsOriginAllowed - проверяет origin по allow-list проекта.
// Запись "*" разрешает любой origin
func (p *Project) IsOriginAllowed(origin string) bool {
	for _, allowed := range p.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}

// CheckSecretKey - сверяет секретный ключ с bcrypt-хешем.
// Секретный ключ открывает привилегированные (management) маршруты
func (p *Project) CheckSecretKey(secretKey string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.SecretKeyHash), []byte(secretKey)) == nil
}

// ProjectRepo - репозиторий для работы с проектами
//
//go:generate mockgen -source=internal/project/project.go -destination=internal/mocks/mock_project_repo.go -package=mocks
type ProjectRepo interface {
	// Create - создает проект и генерирует пару ключей.
	// Секретный ключ возвращается в открытом виде единственный раз
	Create(ctx context.Context, name string, allowedOrigins []string, themeConfig map[string]string) (*Project, string, error)

	// GetByID - получает проект по ID
	GetByID(ctx context.Context, id string) (*Project, error)

	// GetByPublicKey - ищет проект по публичному ключу коллектора
	GetByPublicKey(ctx context.Context, publicKey string) (*Project, error)

	// Delete - удаляет проект; его отзывы удаляются каскадом
	Delete(ctx context.Context, id string) error
}
