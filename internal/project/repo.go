package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	myErr "feedback-main/internal/types/errors"
)

type ProjectDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewProjectDBRepository(db *sql.DB, logger *zap.SugaredLogger) *ProjectDBRepository {
	return &ProjectDBRepository{
		DB:     db,
		Logger: logger,
	}
}

// Create - создает проект и генерирует пару ключей.
// Секретный ключ возвращается в открытом виде единственный раз
func (projectRepository *ProjectDBRepository) Create(
	ctx context.Context,
	name string,
	allowedOrigins []string,
	themeConfig map[string]string,
) (*Project, string, error) {
	secretKey := "sk_" + uuid.New().String()
	secretHash, err := bcrypt.GenerateFromPassword([]byte(secretKey), bcrypt.DefaultCost)
	if err != nil {
		projectRepository.Logger.Error("Failed to hash secret key", zap.Error(err))

		return nil, "", err
	}

	project := &Project{
		ID:             uuid.New().String(),
		Name:           name,
		PublicKey:      "pk_" + uuid.New().String(),
		SecretKeyHash:  string(secretHash),
		AllowedOrigins: allowedOrigins,
		ThemeConfig:    themeConfig,
		CreatedAt:      time.Now().UnixMilli(),
	}

	originsJSON, err := json.Marshal(project.AllowedOrigins)
	if err != nil {
		return nil, "", err
	}
	themeJSON, err := json.Marshal(project.ThemeConfig)
	if err != nil {
		return nil, "", err
	}

	query :=
		`
		INSERT INTO projects (id, name, public_key, secret_key_hash, allowed_origins, theme_config, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

	_, err = projectRepository.DB.ExecContext(
		ctx,
		query,
		project.ID,
		project.Name,
		project.PublicKey,
		project.SecretKeyHash,
		originsJSON,
		themeJSON,
		project.CreatedAt,
	)

	if err != nil {
		projectRepository.Logger.Error(
			"Failed save project to DB",
			zap.Error(err),
			zap.String("projectID", project.ID),
		)

		return nil, "", myErr.ErrDBInternal
	}

	projectRepository.Logger.Info(
		fmt.Sprintf("Project with projectID %s created successfully", project.ID),
	)

	return project, secretKey, nil
}

// GetByID - получает проект по ID
func (projectRepository *ProjectDBRepository) GetByID(
	ctx context.Context,
	id string,
) (*Project, error) {
	query :=
		`
		SELECT id, name, public_key, secret_key_hash, allowed_origins, theme_config, created_at
		FROM projects
		WHERE id = $1
		`

	return projectRepository.scanProject(projectRepository.DB.QueryRowContext(ctx, query, id))
}

// GetByPublicKey - ищет проект по публичному ключу коллектора
func (projectRepository *ProjectDBRepository) GetByPublicKey(
	ctx context.Context,
	publicKey string,
) (*Project, error) {
	query :=
		`
		SELECT id, name, public_key, secret_key_hash, allowed_origins, theme_config, created_at
		FROM projects
		WHERE public_key = $1
		`

	return projectRepository.scanProject(projectRepository.DB.QueryRowContext(ctx, query, publicKey))
}

// Delete - удаляет проект; отзывы удаляются каскадом по внешнему ключу
func (projectRepository *ProjectDBRepository) Delete(
	ctx context.Context,
	id string,
) error {
	query :=
		`
		DELETE FROM projects
		WHERE id = $1
		`

	result, err := projectRepository.DB.ExecContext(ctx, query, id)
	if err != nil {
		projectRepository.Logger.Error(
			"Failed to delete project",
			zap.Error(err),
			zap.String("projectID", id),
		)

		return myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		projectRepository.Logger.Error(
			"Failed to get rows affected while deleting project",
			zap.Error(err),
			zap.String("projectID", id),
		)

		return myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		projectRepository.Logger.Info(
			fmt.Sprintf("No project with projectID %s found to delete", id),
		)

		return myErr.ErrNotFound
	}

	projectRepository.Logger.Info(
		fmt.Sprintf("Project with projectID %s deleted successfully", id),
	)

	return nil
}

func (projectRepository *ProjectDBRepository) scanProject(row *sql.Row) (*Project, error) {
	project := &Project{}
	var originsJSON, themeJSON []byte

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.PublicKey,
		&project.SecretKeyHash,
		&originsJSON,
		&themeJSON,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		projectRepository.Logger.Warnf("Error while load project info: %v", err)

		return nil, myErr.ErrDBInternal
	}

	if err := json.Unmarshal(originsJSON, &project.AllowedOrigins); err != nil {
		projectRepository.Logger.Error("Failed to decode allowed origins", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}
	if len(themeJSON) > 0 {
		if err := json.Unmarshal(themeJSON, &project.ThemeConfig); err != nil {
			projectRepository.Logger.Error("Failed to decode theme config", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
	}

	return project, nil
}
