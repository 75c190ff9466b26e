package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/quiz"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrQuestionIndex    = errors.New("question index out of range")
	ErrAlreadyCompleted = errors.New("quiz already completed")
)

// Scorer computes a score for a finished quiz (implemented by the scoring
// package).
type Scorer interface {
	Score(ctx context.Context, q *quiz.Quiz, answers quiz.AnswerSet) (*quiz.ScoreResult, error)
}

// Session is the per-quiz state: the generated quiz, the answers collected
// so far, and the score once completed. A session is exclusively owned by
// one quiz lifecycle; generating a new quiz creates a new session rather
// than mutating an old one.
type Session struct {
	ID        string            `json:"id"`
	Quiz      *quiz.Quiz        `json:"quiz"`
	Answers   quiz.AnswerSet    `json:"answers"`
	Score     *quiz.ScoreResult `json:"score,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Completed reports whether the session's score has been computed.
func (s *Session) Completed() bool { return s.Score != nil }

// Manager owns all live sessions, keyed by quiz ID. The mutex exists only
// because the HTTP server is concurrent; sessions themselves are never
// shared across quizzes.
type Manager struct {
	scorer   Scorer
	logger   zerolog.Logger
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(scorer Scorer, logger zerolog.Logger) *Manager {
	return &Manager{
		scorer:   scorer,
		logger:   logger.With().Str("component", "session_manager").Logger(),
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session for a newly generated quiz. Answers start
// empty and any previous session for the same quiz ID is discarded.
func (m *Manager) Create(q *quiz.Quiz) *Session {
	s := &Session{
		ID:        q.ID,
		Quiz:      q,
		Answers:   make(quiz.AnswerSet),
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug().Str("session_id", s.ID).Int("questions", len(q.Questions)).Msg("session created")
	return s
}

// Get returns the live session for a quiz ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// SaveAnswer records one submitted answer. Only the answer set mutates;
// saving again for the same index overwrites. Completed sessions reject
// further answers.
func (m *Manager) SaveAnswer(id string, index int, answer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if s.Completed() {
		return ErrAlreadyCompleted
	}
	if index < 0 || index >= len(s.Quiz.Questions) {
		return ErrQuestionIndex
	}

	if s.Quiz.Questions[index].Kind == quiz.KindTrueFalse {
		answer = canonicalTrueFalse(answer)
	}
	s.Answers[index] = answer
	return nil
}

// canonicalTrueFalse maps any casing of true/false onto the canonical
// strings the scorer compares against. Unrecognized input passes through
// and simply scores as incorrect.
func canonicalTrueFalse(answer string) string {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "true":
		return quiz.AnswerTrue
	case "false":
		return quiz.AnswerFalse
	}
	return answer
}

// Complete scores the session and stores the result. Completing twice
// returns the stored score without rescoring. Scoring may call the remote
// evaluator, so it runs against a snapshot with the lock released; other
// sessions keep saving answers while it is in flight.
func (m *Manager) Complete(ctx context.Context, id string) (*quiz.ScoreResult, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	if s.Completed() {
		score := s.Score
		m.mu.Unlock()
		return score, nil
	}
	q := s.Quiz
	answers := make(quiz.AnswerSet, len(s.Answers))
	for i, a := range s.Answers {
		answers[i] = a
	}
	m.mu.Unlock()

	score, err := m.scorer.Score(ctx, q, answers)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok = m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.Completed() {
		// A concurrent Complete won the race; its score stands.
		return s.Score, nil
	}
	s.Score = score

	m.logger.Info().
		Str("session_id", s.ID).
		Int("correct", score.Correct).
		Int("total", score.Total).
		Msg("quiz completed")
	return score, nil
}

// Delete discards a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
