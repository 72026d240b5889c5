package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Review    ReviewConfig    `yaml:"review"`
	Identity  IdentityConfig  `yaml:"identity"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Search    SearchConfig    `yaml:"search"`
	Relevance RelevanceConfig `yaml:"relevance"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"0"` // requests per minute per caller, 0 disables
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`

	// StatementTimeout bounds every statement, including the publish transaction's row locks.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"minutes-backend"`
}

// RedisConfig holds Redis settings. An empty URL disables the embedding cache.
type RedisConfig struct {
	URL          string        `yaml:"url"           env:"REDIS_URL"`
	EmbeddingTTL time.Duration `yaml:"embedding_ttl" env:"REDIS_EMBEDDING_TTL" env-default:"24h"`
	KeyPrefix    string        `yaml:"key_prefix"    env:"REDIS_KEY_PREFIX"    env-default:"minutes:embed:"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the identity service; this service only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"minutes"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds change-set review and publish parameters.
type ReviewConfig struct {
	LockTimeout       time.Duration `yaml:"lock_timeout"        env:"REVIEW_LOCK_TIMEOUT"        env-default:"30m"`
	NarrativeQuoteMax int           `yaml:"narrative_quote_max" env:"REVIEW_NARRATIVE_QUOTE_MAX" env-default:"300"`
	NarratorName      string        `yaml:"narrator_name"       env:"REVIEW_NARRATOR_NAME"       env-default:"Meeting Processing"`
}

// IdentityConfig tunes person-name resolution.
type IdentityConfig struct {
	// Scorer is "levenshtein" or "token_set".
	Scorer                 string  `yaml:"scorer"                   env:"IDENTITY_SCORER"                   env-default:"levenshtein"`
	FuzzyMaxDistance       float64 `yaml:"fuzzy_max_distance"       env:"IDENTITY_FUZZY_MAX_DISTANCE"       env-default:"0.3"`
	ConfirmationConfidence float64 `yaml:"confirmation_confidence"  env:"IDENTITY_CONFIRMATION_CONFIDENCE"  env-default:"0.7"`
	MaxCandidates          int     `yaml:"max_candidates"           env:"IDENTITY_MAX_CANDIDATES"           env-default:"5"`
	RoomKeywordsRaw        string  `yaml:"conference_room_keywords" env:"IDENTITY_CONFERENCE_ROOM_KEYWORDS" env-default:"room,conference,boardroom"`

	// RoomKeywords is parsed from RoomKeywordsRaw during validation.
	RoomKeywords []string `yaml:"-" env:"-"`
}

// EmbeddingConfig configures the OpenAI-compatible embeddings endpoint.
// An empty BaseURL disables embeddings; publish then stores nil vectors.
type EmbeddingConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"EMBEDDING_BASE_URL"`
	APIKey        string        `yaml:"api_key"         env:"EMBEDDING_API_KEY"`
	Model         string        `yaml:"model"           env:"EMBEDDING_MODEL"           env-default:"text-embedding-3-small"`
	Timeout       time.Duration `yaml:"timeout"         env:"EMBEDDING_TIMEOUT"         env-default:"15s"`
	MaxInputChars int           `yaml:"max_input_chars" env:"EMBEDDING_MAX_INPUT_CHARS" env-default:"8000"`
}

// Enabled reports whether an embeddings endpoint is configured.
func (c EmbeddingConfig) Enabled() bool { return c.BaseURL != "" }

// SearchConfig configures Meilisearch indexing of published records.
// An empty URL disables indexing.
type SearchConfig struct {
	MeiliURL    string `yaml:"meili_url"     env:"SEARCH_MEILI_URL"`
	MeiliAPIKey string `yaml:"meili_api_key" env:"SEARCH_MEILI_API_KEY"`
	IndexPrefix string `yaml:"index_prefix"  env:"SEARCH_INDEX_PREFIX"  env-default:"minutes_"`
}

// Enabled reports whether search indexing is configured.
func (c SearchConfig) Enabled() bool { return c.MeiliURL != "" }

// RelevanceConfig tunes selection of existing items for extraction context.
type RelevanceConfig struct {
	Limit              int     `yaml:"limit"                env:"RELEVANCE_LIMIT"                env-default:"40"`
	MinSimilarity      float64 `yaml:"min_similarity"       env:"RELEVANCE_MIN_SIMILARITY"       env-default:"0.25"`
	MaxTranscriptChars int     `yaml:"max_transcript_chars" env:"RELEVANCE_MAX_TRANSCRIPT_CHARS" env-default:"8000"`
}
