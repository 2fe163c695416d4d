package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"feedback-main/internal/project"
	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/project"
)

const bearerPrefix = "Bearer "

type ProjectHandler struct {
	Logger            *zap.SugaredLogger
	ProjectRepository project.ProjectRepo
}

func NewProjectHandler(l *zap.SugaredLogger, repo project.ProjectRepo) *ProjectHandler {
	return &ProjectHandler{
		Logger:            l,
		ProjectRepository: repo,
	}
}

// createProjectResponse - секретный ключ отдается единственный раз, при создании
type createProjectResponse struct {
	Project   *project.Project `json:"project"`
	SecretKey string           `json:"secret_key"`
}

// Create - POST /projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)

		return
	}

	if req.Name == "" {
		myErr.SendErrorTo(w, myErr.ErrMissingName, http.StatusBadRequest, h.Logger)

		return
	}

	if len(req.AllowedOrigins) == 0 {
		req.AllowedOrigins = []string{"*"}
	}

	createdProject, secretKey, err := h.ProjectRepository.Create(
		r.Context(),
		req.Name,
		req.AllowedOrigins,
		req.ThemeConfig,
	)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := createProjectResponse{Project: createdProject, SecretKey: secretKey}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Error(err)

		return
	}

	h.Logger.Infof("Created project with id: %s", createdProject.ID)
}

// GetByID - GET /projects/{id}; секретный ключ не возвращается
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	if projectID == "" {
		myErr.SendErrorTo(w, myErr.ErrMissingProjectID, http.StatusBadRequest, h.Logger)

		return
	}

	proj, err := h.ProjectRepository.GetByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, myErr.ErrNotFoundProject, http.StatusNotFound, h.Logger)
		} else {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(proj); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}
}

// Delete - DELETE /projects/{id}; требует секретный ключ проекта.
// Отзывы проекта удаляются каскадом
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	if projectID == "" {
		myErr.SendErrorTo(w, myErr.ErrMissingProjectID, http.StatusBadRequest, h.Logger)

		return
	}

	secretKey, err := bearerToken(r)
	if err != nil {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)

		return
	}

	proj, err := h.ProjectRepository.GetByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, myErr.ErrNotFoundProject, http.StatusNotFound, h.Logger)
		} else {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}

		return
	}

	if !proj.CheckSecretKey(secretKey) {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusForbidden, h.Logger)

		return
	}

	if err := h.ProjectRepository.Delete(r.Context(), projectID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	w.WriteHeader(http.StatusOK)
	h.Logger.Infof("Deleted project with id: %s", projectID)
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", myErr.ErrNoAuth
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == "" {
		return "", myErr.ErrNoAuth
	}

	return token, nil
}
