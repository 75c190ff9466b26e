package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Naman-sys/QuizForge/internal/config"
	"github.com/Naman-sys/QuizForge/internal/content"
	"github.com/Naman-sys/QuizForge/internal/logging"
	"github.com/Naman-sys/QuizForge/internal/quiz"
	"github.com/Naman-sys/QuizForge/internal/quiz/remote"
	"github.com/Naman-sys/QuizForge/internal/quiz/scoring"
	"github.com/Naman-sys/QuizForge/internal/quiz/synth"
	"github.com/Naman-sys/QuizForge/internal/server"
	"github.com/Naman-sys/QuizForge/internal/session"
)

// Application aggregates shared infrastructure (cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, optional Redis, the generation pipeline and
// the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
	} else {
		logger.Info().Msg("REDIS_ADDR not set; quiz caching disabled")
	}

	normalizer := content.NewNormalizer(cfg.Content.MinArticleChars, cfg.Content.MinStructuredChars)
	extractor := content.NewExtractor(content.DefaultStopWords, cfg.Content.MaxKeyTerms)
	synthesizer := synth.New(nil)

	var remoteGenerator *remote.Generator
	if cfg.Generation.RemoteURL != "" {
		remoteGenerator = remote.NewGenerator(remote.Config{
			BaseURL:        cfg.Generation.RemoteURL,
			APIKey:         cfg.Generation.RemoteKey,
			Timeout:        cfg.Generation.HTTPTimeout,
			MaxPromptChars: cfg.Generation.MaxPromptChars,
		}, logger)
	} else {
		logger.Info().Msg("GENERATOR_URL not set; generation is local-only")
	}

	var quizCache quiz.Cache
	if redisClient != nil {
		quizCache = quiz.NewRedisCache(redisClient, cfg.Cache.TTL)
	}

	// Interface-typed nils must stay nil when the concrete value is absent.
	var generator quiz.RemoteGenerator
	if remoteGenerator != nil {
		generator = remoteGenerator
	}

	quizSvc := quiz.NewService(normalizer, extractor, quizCache, generator, synthesizer, logger)

	// The evaluator gets its own client so scoring latency is bounded
	// independently of generation.
	var evaluator scoring.ShortAnswerEvaluator
	if cfg.Generation.EvaluateAnswers && remoteGenerator != nil {
		evaluator = remote.NewGenerator(remote.Config{
			BaseURL: cfg.Generation.RemoteURL,
			APIKey:  cfg.Generation.RemoteKey,
			Timeout: cfg.Generation.EvaluatorTimeout,
		}, logger)
	}
	scorer := scoring.NewScorer(evaluator, logger)
	sessions := session.NewManager(scorer, logger)

	handlers := server.NewHandlers(quizSvc, sessions, logger)
	apiServer := server.NewHTTPServer(cfg, logger, handlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
