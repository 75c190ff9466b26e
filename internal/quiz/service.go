package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/content"
	"github.com/Naman-sys/QuizForge/internal/metrics"
)

// Cache defines quiz cache behavior (implemented by the Redis-backed Cache).
type Cache interface {
	Get(ctx context.Context, req GenerateRequest) (*Quiz, error)
	Set(ctx context.Context, req GenerateRequest, q Quiz) error
}

// RemoteGenerator produces questions via an external generative service
// (implemented in the remote subpackage). Failures surface as
// *RemoteGenerationError and trigger local fallback.
type RemoteGenerator interface {
	Generate(ctx context.Context, req RemoteRequest) (RemoteResult, error)
}

// Synthesizer produces questions locally from extracted material
// (implemented in the synth subpackage).
type Synthesizer interface {
	Synthesize(req SynthRequest) []Question
}

// GenerateRequest carries the raw material and configuration for one quiz.
type GenerateRequest struct {
	Text       string
	Source     content.SourceKind
	Difficulty string
	Counts     Counts
	Kinds      []Kind
}

// RemoteRequest hands normalized text and generation parameters to the
// remote adapter.
type RemoteRequest struct {
	Text       string
	Difficulty string
	Counts     Counts
	Kinds      []Kind
}

// RemoteResult holds validated remote questions per kind, each already
// truncated to the requested count.
type RemoteResult struct {
	MultipleChoice []Question
	TrueFalse      []Question
	ShortAnswer    []Question
}

// Total counts all validated questions across kinds.
func (r RemoteResult) Total() int {
	return len(r.MultipleChoice) + len(r.TrueFalse) + len(r.ShortAnswer)
}

// OfKind returns the validated questions for one kind.
func (r RemoteResult) OfKind(k Kind) []Question {
	switch k {
	case KindMultipleChoice:
		return r.MultipleChoice
	case KindTrueFalse:
		return r.TrueFalse
	case KindShortAnswer:
		return r.ShortAnswer
	}
	return nil
}

// SynthRequest carries the extracted material and generation parameters for
// one local synthesis run.
type SynthRequest struct {
	Terms      []string
	Sentences  []string
	Difficulty string
	Counts     Counts
	Kinds      []Kind
}

// Question sources recorded on the quiz.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
	SourceMixed  = "mixed"
)

// kindOrder fixes the output order of a generated quiz.
var kindOrder = [3]Kind{KindMultipleChoice, KindTrueFalse, KindShortAnswer}

// Service orchestrates normalization, extraction, remote generation with
// local fallback, and caching.
type Service struct {
	normalizer *content.Normalizer
	extractor  *content.Extractor
	cache      Cache
	remote     RemoteGenerator
	synth      Synthesizer
	logger     zerolog.Logger
}

// NewService wires the generation pipeline. cache and remote may be nil;
// the service then skips caching and generates locally only.
func NewService(normalizer *content.Normalizer, extractor *content.Extractor, cache Cache, remote RemoteGenerator, synth Synthesizer, logger zerolog.Logger) *Service {
	return &Service{
		normalizer: normalizer,
		extractor:  extractor,
		cache:      cache,
		remote:     remote,
		synth:      synth,
		logger:     logger.With().Str("component", "quiz_service").Logger(),
	}
}

// Generate builds a quiz from raw text. Remote generation is attempted when
// an adapter is configured; any remote failure falls back to local synthesis
// for the unfilled slots and never surfaces to the caller.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Quiz, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	normalized, err := s.normalizer.Normalize(req.Text, req.Source)
	if err != nil {
		return nil, err
	}
	req.Text = normalized

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, req); err == nil && cached != nil {
			metrics.CacheHits.Inc()
			// The cache stores content, not identity. Each generation gets its
			// own ID so sessions keyed by quiz ID never collide.
			q := *cached
			q.ID = uuid.NewString()
			q.CreatedAt = time.Now().UTC()
			return &q, nil
		}
	}

	remoteQs := s.tryRemote(ctx, req)

	terms := s.extractor.KeyTerms(normalized)
	sentences := s.extractor.Sentences(normalized)

	missing := Counts{}
	for _, k := range req.Kinds {
		switch k {
		case KindMultipleChoice:
			missing.MultipleChoice = req.Counts.MultipleChoice - len(remoteQs.MultipleChoice)
		case KindTrueFalse:
			missing.TrueFalse = req.Counts.TrueFalse - len(remoteQs.TrueFalse)
		case KindShortAnswer:
			missing.ShortAnswer = req.Counts.ShortAnswer - len(remoteQs.ShortAnswer)
		}
	}

	var localQs []Question
	if missing.Total(req.Kinds) > 0 {
		localQs = s.synth.Synthesize(SynthRequest{
			Terms:      terms,
			Sentences:  sentences,
			Difficulty: req.Difficulty,
			Counts:     missing,
			Kinds:      req.Kinds,
		})
	}

	questions := assemble(req.Kinds, remoteQs, localQs)
	source := sourceFor(remoteQs.Total(), len(localQs))

	q := &Quiz{
		ID:         uuid.NewString(),
		Difficulty: req.Difficulty,
		Requested:  req.Counts,
		Questions:  questions,
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	}

	s.logger.Info().
		Str("quiz_id", q.ID).
		Str("source", source).
		Int("questions", len(questions)).
		Msg("quiz generated")
	metrics.QuizzesGenerated.WithLabelValues(source).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, req, *q); err != nil {
			s.logger.Warn().Err(err).Msg("quiz cache store failed")
		}
	}

	return q, nil
}

func validateRequest(req *GenerateRequest) error {
	if len(req.Kinds) == 0 {
		return ErrUnsupportedConfiguration
	}
	for _, k := range req.Kinds {
		if req.Counts.For(k) <= 0 {
			return ErrUnsupportedConfiguration
		}
	}
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}
	return nil
}

// tryRemote returns whatever validated questions the remote adapter
// produced, or an empty result when it is unconfigured or fails.
func (s *Service) tryRemote(ctx context.Context, req GenerateRequest) RemoteResult {
	if s.remote == nil {
		return RemoteResult{}
	}

	result, err := s.remote.Generate(ctx, RemoteRequest{
		Text:       req.Text,
		Difficulty: req.Difficulty,
		Counts:     req.Counts,
		Kinds:      req.Kinds,
	})
	if err != nil {
		var remoteErr *RemoteGenerationError
		if errors.As(err, &remoteErr) {
			s.logger.Warn().Str("reason", remoteErr.Reason).Err(remoteErr.Err).Msg("remote generation failed, falling back to local synthesis")
		} else {
			s.logger.Warn().Err(err).Msg("remote generation failed, falling back to local synthesis")
		}
		metrics.RemoteFailures.Inc()
		return RemoteResult{}
	}
	return result
}

// assemble interleaves remote and locally synthesized questions in
// multiple-choice, true/false, short-answer order, remote first within each
// kind.
func assemble(kinds []Kind, remote RemoteResult, local []Question) []Question {
	requested := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		requested[k] = true
	}

	localByKind := make(map[Kind][]Question)
	for _, q := range local {
		localByKind[q.Kind] = append(localByKind[q.Kind], q)
	}

	var out []Question
	for _, k := range kindOrder {
		if !requested[k] {
			continue
		}
		out = append(out, remote.OfKind(k)...)
		out = append(out, localByKind[k]...)
	}
	return out
}

func sourceFor(remoteCount, localCount int) string {
	switch {
	case remoteCount > 0 && localCount > 0:
		return SourceMixed
	case remoteCount > 0:
		return SourceRemote
	default:
		return SourceLocal
	}
}
