package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	customErrors "feedback-main/internal/types/errors"
)

func setupTestRepo(t *testing.T) (*ProjectDBRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	logger := zaptest.NewLogger(t).Sugar()
	repo := NewProjectDBRepository(db, logger)

	return repo, mock, func() { db.Close() }
}

func TestProject_IsOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    bool
	}{
		{"exact match", []string{"https://example.com"}, "https://example.com", true},
		{"not listed", []string{"https://example.com"}, "https://evil.com", false},
		{"wildcard allows anything", []string{"*"}, "https://anything.dev", true},
		{"wildcard among others", []string{"https://example.com", "*"}, "https://other.dev", true},
		{"empty list denies", []string{}, "https://example.com", false},
		{"empty origin not allowed", []string{"https://example.com"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Project{AllowedOrigins: tt.origins}
			assert.Equal(t, tt.want, p.IsOriginAllowed(tt.origin))
		})
	}
}

func TestProject_CheckSecretKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sk_correct"), bcrypt.DefaultCost)
	require.NoError(t, err)

	p := &Project{SecretKeyHash: string(hash)}
	assert.True(t, p.CheckSecretKey("sk_correct"))
	assert.False(t, p.CheckSecretKey("sk_wrong"))
	assert.False(t, p.CheckSecretKey(""))
}

func TestProjectDBRepository_Create(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(
			sqlmock.AnyArg(), "Demo", sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, secretKey, err := repo.Create(
		context.Background(),
		"Demo",
		[]string{"*"},
		map[string]string{"primaryColor": "#fff"},
	)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.PublicKey, "pk_")
	assert.Contains(t, secretKey, "sk_")
	// в открытом виде ключ существует только в ответе, в базе хеш
	assert.NotEqual(t, secretKey, created.SecretKeyHash)
	assert.True(t, created.CheckSecretKey(secretKey))
}

func TestProjectDBRepository_CreateDBError(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	mock.ExpectExec("INSERT INTO projects").
		WillReturnError(errors.New("db error"))

	_, _, err := repo.Create(context.Background(), "Demo", []string{"*"}, nil)

	assert.Equal(t, customErrors.ErrDBInternal, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDBRepository_GetByPublicKey(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	origins, _ := json.Marshal([]string{"https://example.com"}) // nolint:errcheck
	theme, _ := json.Marshal(map[string]string{})               // nolint:errcheck

	tests := []struct {
		name     string
		mockFunc func()
		inputKey string
		wantErr  error
	}{
		{
			name:     "success",
			inputKey: "pk_known",
			mockFunc: func() {
				rows := sqlmock.NewRows([]string{
					"id", "name", "public_key", "secret_key_hash",
					"allowed_origins", "theme_config", "created_at",
				}).AddRow("id1", "Demo", "pk_known", "hash", origins, theme, int64(1700000000000))
				mock.ExpectQuery("SELECT id, name, public_key, secret_key_hash, allowed_origins, theme_config, created_at").
					WithArgs("pk_known").
					WillReturnRows(rows)
			},
			wantErr: nil,
		},
		{
			name:     "not found",
			inputKey: "pk_unknown",
			mockFunc: func() {
				mock.ExpectQuery("SELECT id, name, public_key, secret_key_hash, allowed_origins, theme_config, created_at").
					WithArgs("pk_unknown").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: customErrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockFunc()
			got, err := repo.GetByPublicKey(context.Background(), tt.inputKey)

			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr == nil {
				assert.Equal(t, "id1", got.ID)
				assert.Equal(t, []string{"https://example.com"}, got.AllowedOrigins)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectDBRepository_Delete(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("id1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "id1")
	assert.NoError(t, err)

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), "missing")
	assert.Equal(t, customErrors.ErrNotFound, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
