package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration for the quiz service.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"quizforge"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Content    Content
	Generation Generation
	Redis      Redis
	Cache      Cache
}

// Content bounds what the normalizer accepts.
type Content struct {
	MinArticleChars    int `env:"MIN_ARTICLE_CHARS" envDefault:"100"`
	MinStructuredChars int `env:"MIN_STRUCTURED_CHARS" envDefault:"50"`
	MaxKeyTerms        int `env:"MAX_KEY_TERMS" envDefault:"15"`
}

// Generation configures the remote generative completion service. Leaving
// the URL empty disables the remote path entirely; generation then always
// uses the local synthesizer.
type Generation struct {
	RemoteURL        string        `env:"GENERATOR_URL" envDefault:""`
	RemoteKey        string        `env:"GENERATOR_API_KEY" envDefault:""`
	HTTPTimeout      time.Duration `env:"GENERATOR_HTTP_TIMEOUT" envDefault:"8s"`
	MaxPromptChars   int           `env:"GENERATOR_MAX_PROMPT_CHARS" envDefault:"1500"`
	EvaluateAnswers  bool          `env:"GENERATOR_EVALUATE_ANSWERS" envDefault:"false"`
	EvaluatorTimeout time.Duration `env:"GENERATOR_EVALUATOR_TIMEOUT" envDefault:"4s"`
}

// Redis holds cache connection info. An empty Addr disables caching.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Cache governs generated-quiz caching.
type Cache struct {
	TTL time.Duration `env:"QUIZ_CACHE_TTL" envDefault:"10m"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
