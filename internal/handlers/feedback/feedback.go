package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"feedback-main/internal/events"
	"feedback-main/internal/feedback"
	"feedback-main/internal/project"
	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/feedback"
)

const (
	minRating        = 1
	maxRating        = 5
	maxCommentLength = 1000

	bearerPrefix    = "Bearer "
	anonymousUserID = "anonymous"
)

type FeedbackHandler struct {
	Logger             *zap.SugaredLogger
	ProjectRepository  project.ProjectRepo
	FeedbackRepository feedback.FeedbackRepo
	Producer           events.EventProducer
}

func NewFeedbackHandler(
	l *zap.SugaredLogger,
	projectRepo project.ProjectRepo,
	feedbackRepo feedback.FeedbackRepo,
	producer events.EventProducer,
) *FeedbackHandler {
	return &FeedbackHandler{
		Logger:             l,
		ProjectRepository:  projectRepo,
		FeedbackRepository: feedbackRepo,
		Producer:           producer,
	}
}

// Submit - POST /v1/feedback (Collector API).
// Авторизация публичным ключом проекта, проверка origin по allow-list
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	publicKey, err := bearerToken(r)
	if err != nil {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)

		return
	}

	var req types.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)

		return
	}

	if issues := validateSubmit(req); len(issues) > 0 {
		sendValidationIssues(w, issues, h.Logger)

		return
	}

	proj, err := h.ProjectRepository.GetByPublicKey(r.Context(), publicKey)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, myErr.ErrNotFoundProject, http.StatusNotFound, h.Logger)
		} else {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}

		return
	}

	if !proj.IsOriginAllowed(r.Header.Get("Origin")) {
		// генерик без деталей, чтобы не раскрывать allow-list
		myErr.SendErrorTo(w, myErr.ErrOriginNotAllowed, http.StatusForbidden, h.Logger)

		return
	}

	createdAt := time.Now().UnixMilli()
	if req.Timestamp != "" {
		// формат проверен валидацией выше
		createdAt, _ = feedback.ParseClientTimestamp(req.Timestamp) // nolint:errcheck
	}

	userID := req.UserID
	if userID == "" {
		userID = anonymousUserID
	}

	deviceInfoJSON, err := json.Marshal(req.DeviceInfo)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	created, err := h.FeedbackRepository.Create(r.Context(), &feedback.Feedback{
		ProjectID:  proj.ID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		DeviceInfo: deviceInfoJSON,
		IPAddress:  clientIP(r),
		CreatedAt:  createdAt,
	})
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	// Событие наружу best-effort: сбой брокера не ломает прием отзыва
	if h.Producer != nil {
		event := events.Event{
			Type:       events.FeedbackCreated,
			ProjectID:  proj.ID,
			FeedbackID: created.ID,
			Rating:     created.Rating,
			Timestamp:  time.Now().UTC(),
		}
		if err := h.Producer.SendEvent(r.Context(), event); err != nil {
			h.Logger.Warnf("failed to publish feedback event: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]bool{"success": true}); err != nil {
		h.Logger.Error(err)

		return
	}

	h.Logger.Infof("Accepted feedback %s for project %s", created.ID, proj.ID)
}

// GetByProjectID - GET /projects/{projectId}/feedbacks (Management API).
// Требует секретный ключ проекта
func (h *FeedbackHandler) GetByProjectID(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
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

	feedbacks, err := h.FeedbackRepository.GetByProjectID(r.Context(), projectID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feedbacks); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	h.Logger.Infof("Retrieved feedbacks for project id: %s", projectID)
}

// Health - GET /health
func (h *FeedbackHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Error(err)
	}
}

// validateSubmit - собирает все нарушения сразу, без fail-fast
func validateSubmit(req types.SubmitFeedbackRequest) []types.Issue {
	var issues []types.Issue

	if req.Rating < minRating || req.Rating > maxRating {
		issues = append(issues, types.Issue{Field: "rating", Message: myErr.ErrRatingIsInvalid.Error()})
	}
	// лимит в символах, не в байтах
	if utf8.RuneCountInString(req.Comment) > maxCommentLength {
		issues = append(issues, types.Issue{Field: "comment", Message: myErr.ErrCommentIsTooLong.Error()})
	}
	if req.DeviceInfo.UserAgent == "" {
		issues = append(issues, types.Issue{Field: "deviceInfo.userAgent", Message: "user agent is required"})
	}
	if req.Timestamp != "" {
		if _, err := feedback.ParseClientTimestamp(req.Timestamp); err != nil {
			issues = append(issues, types.Issue{Field: "timestamp", Message: myErr.ErrInvalidTimestamp.Error()})
		}
	}

	return issues
}

func sendValidationIssues(w http.ResponseWriter, issues []types.Issue, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	resp := map[string]interface{}{
		"error":   "Validation Error",
		"details": issues,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error(err)
	}
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

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
