package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/content"
	"github.com/Naman-sys/QuizForge/internal/export"
	"github.com/Naman-sys/QuizForge/internal/logging"
	"github.com/Naman-sys/QuizForge/internal/metrics"
	"github.com/Naman-sys/QuizForge/internal/quiz"
	"github.com/Naman-sys/QuizForge/internal/session"
	httperrors "github.com/Naman-sys/QuizForge/pkg/http/errors"
)

// QuizGenerator is the generation entry point (implemented by quiz.Service).
type QuizGenerator interface {
	Generate(ctx context.Context, req quiz.GenerateRequest) (*quiz.Quiz, error)
}

// Handlers provides REST endpoints for the quiz lifecycle.
type Handlers struct {
	quizzes  QuizGenerator
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewHandlers creates HTTP handlers for quiz endpoints.
func NewHandlers(quizzes QuizGenerator, sessions *session.Manager, logger zerolog.Logger) *Handlers {
	return &Handlers{
		quizzes:  quizzes,
		sessions: sessions,
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

type createQuizRequest struct {
	Text       string      `json:"text"`
	Source     string      `json:"source"`
	Difficulty string      `json:"difficulty"`
	Counts     quiz.Counts `json:"counts"`
	Kinds      []quiz.Kind `json:"kinds"`
}

type saveAnswerRequest struct {
	Index  int    `json:"index"`
	Answer string `json:"answer"`
}

// questionView hides the correct answer and explanation until the quiz is
// completed.
type questionView struct {
	ID            string    `json:"id"`
	Kind          quiz.Kind `json:"kind"`
	Prompt        string    `json:"prompt"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"correct_answer,omitempty"`
	Explanation   string    `json:"explanation,omitempty"`
}

type sessionView struct {
	ID         string            `json:"id"`
	Difficulty string            `json:"difficulty"`
	Source     string            `json:"source"`
	Questions  []questionView    `json:"questions"`
	Answers    quiz.AnswerSet    `json:"answers"`
	Completed  bool              `json:"completed"`
	Score      *quiz.ScoreResult `json:"score,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

func viewOf(s *session.Session) sessionView {
	revealed := s.Completed()
	questions := make([]questionView, len(s.Quiz.Questions))
	for i, q := range s.Quiz.Questions {
		v := questionView{
			ID:      q.ID,
			Kind:    q.Kind,
			Prompt:  q.Prompt,
			Options: q.Options,
		}
		if revealed {
			v.CorrectAnswer = q.CorrectAnswer
			v.Explanation = q.Explanation
		}
		questions[i] = v
	}
	return sessionView{
		ID:         s.ID,
		Difficulty: s.Quiz.Difficulty,
		Source:     s.Quiz.Source,
		Questions:  questions,
		Answers:    s.Answers,
		Completed:  revealed,
		Score:      s.Score,
		CreatedAt:  s.CreatedAt,
	}
}

// CreateQuiz handles POST /v1/quizzes
func (h *Handlers) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if req.Text == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "Text is required", "text")
		return
	}
	for _, k := range req.Kinds {
		switch k {
		case quiz.KindMultipleChoice, quiz.KindTrueFalse, quiz.KindShortAnswer:
		default:
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed,
				fmt.Sprintf("Unknown question kind %q", k), "kinds")
			return
		}
	}

	source := content.SourceArticle
	if req.Source == string(content.SourceStructured) {
		source = content.SourceStructured
	}

	generated, err := h.quizzes.Generate(r.Context(), quiz.GenerateRequest{
		Text:       req.Text,
		Source:     source,
		Difficulty: req.Difficulty,
		Counts:     req.Counts,
		Kinds:      req.Kinds,
	})
	if err != nil {
		h.respondGenerateError(r.Context(), w, err)
		return
	}

	s := h.sessions.Create(generated)
	h.respondJSON(w, http.StatusCreated, viewOf(s))
}

func (h *Handlers) respondGenerateError(ctx context.Context, w http.ResponseWriter, err error) {
	var tooShort *content.ContentTooShortError
	switch {
	case errors.As(err, &tooShort):
		httperrors.RespondErrorWithDetails(w, http.StatusUnprocessableEntity,
			httperrors.ErrCodeContentTooShort, tooShort.Error(),
			map[string]interface{}{"length": tooShort.Length, "min": tooShort.Min})
	case errors.Is(err, quiz.ErrUnsupportedConfiguration):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeUnsupportedConfiguration,
			"At least one question kind with a positive count is required")
	default:
		logger := logging.FromContext(ctx)
		logger.Error().Err(err).Msg("quiz generation failed")
		httperrors.RespondError(w, http.StatusInternalServerError,
			httperrors.ErrCodeGenerationFailed, "Quiz generation failed")
	}
}

// GetQuiz handles GET /v1/quizzes/{id}
func (h *Handlers) GetQuiz(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "Quiz not found")
		return
	}
	h.respondJSON(w, http.StatusOK, viewOf(s))
}

// SaveAnswer handles PUT /v1/quizzes/{id}/answers
func (h *Handlers) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	var req saveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	err := h.sessions.SaveAnswer(r.PathValue("id"), req.Index, req.Answer)
	switch {
	case errors.Is(err, session.ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "Quiz not found")
	case errors.Is(err, session.ErrQuestionIndex):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeQuestionIndex, "Question index out of range")
	case errors.Is(err, session.ErrAlreadyCompleted):
		httperrors.RespondConflict(w, httperrors.ErrCodeAlreadyCompleted, "Quiz already completed")
	case err != nil:
		httperrors.RespondInternalError(w, "Failed to save answer")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Complete handles POST /v1/quizzes/{id}/complete
func (h *Handlers) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.sessions.Complete(r.Context(), id)
	switch {
	case errors.Is(err, session.ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "Quiz not found")
		return
	case errors.Is(err, quiz.ErrEmptyQuiz):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeEmptyQuiz, "Quiz has no questions to score")
		return
	case err != nil:
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Str("session_id", id).Msg("scoring failed")
		httperrors.RespondInternalError(w, "Scoring failed")
		return
	}
	metrics.QuizzesScored.Inc()

	s, err := h.sessions.Get(id)
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "Quiz not found")
		return
	}
	h.respondJSON(w, http.StatusOK, viewOf(s))
}

// Export handles GET /v1/quizzes/{id}/export?format=&key=
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuizNotFound, "Quiz not found")
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeUnsupportedFormat, err.Error())
		return
	}
	withKey := r.URL.Query().Get("key") == "true"

	data, err := export.Render(s.Quiz, format, export.Options{WithKey: withKey})
	if err != nil {
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Str("format", string(format)).Msg("export failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeExportFailed, "Export failed")
		return
	}
	metrics.Exports.WithLabelValues(string(format)).Inc()

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=quiz-%s.%s", s.ID, format.Extension()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
