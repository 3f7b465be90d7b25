// Package config loads and validates runtime configuration from the
// environment. Every tunable has a default; missing and unparsable values
// fall back to it, and Load fails only when a parsed value is out of range.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration object assembled at startup.
type Config struct {
	Env      string // "development" or "production"
	Agentic  AgenticConfig
	Mapping  MappingConfig
	Units    UnitsConfig
	Gmail    GmailConfig
	LLM      LLMConfig
	Schema   SchemaCacheConfig
	Jobs     JobsConfig
	Storage  StorageConfig
	HTTPPort string
}

// AgenticConfig bounds the conversational SQL loop.
type AgenticConfig struct {
	MaxIterations       int           // AGENTIC_MAX_ITERATIONS
	Timeout             time.Duration // AGENTIC_TIMEOUT_MS
	SimilarityThreshold float64       // AGENTIC_SIMILARITY_THRESHOLD, trigram floor for tools
	ExploreLimit        int           // SQL_VALIDATOR_EXPLORE_LIMIT
	TableLimit          int           // SQL_VALIDATOR_TABLE_LIMIT
	PlotLimit           int           // SQL_VALIDATOR_PLOT_LIMIT
}

// MappingConfig carries the analyte mapper thresholds.
type MappingConfig struct {
	FuzzyThreshold float64 // BACKFILL_SIMILARITY_THRESHOLD
	AutoAccept     float64 // MAPPING_AUTO_ACCEPT
	QueueLower     float64 // MAPPING_QUEUE_LOWER
	AmbiguityDelta float64 // MAPPING_AMBIGUITY_DELTA, gap below the runner-up
}

// UnitsConfig carries unit normalizer thresholds and concurrency caps.
type UnitsConfig struct {
	MaxConcurrency       int    // UNIT_NORMALIZATION_MAX_CONCURRENCY, per report
	GlobalConcurrency    int    // UNIT_NORMALIZATION_GLOBAL_CONCURRENCY, 0 = unbounded
	AutoLearnConfidence  string // LLM_AUTO_LEARN_CONFIDENCE: low|medium|high
	UCUMValidationEnable bool   // UCUM_VALIDATION_ENABLED
	UCUMValidationStrict bool   // UCUM_VALIDATION_STRICT
}

// GmailConfig bounds the ingestion pipeline.
type GmailConfig struct {
	MaxEmails           int           // GMAIL_MAX_EMAILS
	ConcurrencyLimit    int64         // GMAIL_CONCURRENCY_LIMIT
	RateLimitMaxRetries int           // GMAIL_RATE_LIMIT_MAX_RETRIES
	RateLimitBaseDelay  time.Duration // base backoff on 429/rateLimitExceeded
	MaxBodyChars        int           // GMAIL_MAX_BODY_CHARS
	ClientID            string        // GMAIL_CLIENT_ID
	ClientSecret        string        // GMAIL_CLIENT_SECRET
	RedirectURL         string        // GMAIL_REDIRECT_URL
}

// LLMConfig selects models and client timeouts.
type LLMConfig struct {
	APIKey          string        // GEMINI_API_KEY
	VisionModel     string        // LLM_VISION_MODEL
	ChatModel       string        // LLM_CHAT_MODEL
	SQLGenTimeout   time.Duration // per-call timeout for SQL generation
	ClassifyTimeout time.Duration // per-call timeout for body classification / unit retries
}

// SchemaCacheConfig controls the introspection snapshot.
type SchemaCacheConfig struct {
	TTL     time.Duration // SCHEMA_CACHE_TTL_MS; short in dev, longer in prod
	Schemas []string      // whitelisted schemas to introspect
}

// JobsConfig controls the job fabric and the periodic session sweep.
type JobsConfig struct {
	SweepInterval time.Duration // SESSION_SWEEP_INTERVAL
	JobRetention  time.Duration // completed job rows kept in memory
}

// StorageConfig locates raw uploaded payloads on disk.
type StorageConfig struct {
	BaseDir string // STORAGE_BASE_DIR
}

// Load assembles configuration from the environment.
func Load() (*Config, error) {
	env := getEnv("LABDEX_ENV", "development")

	schemaTTL := 10 * time.Minute
	if env == "development" {
		schemaTTL = 30 * time.Second
	}

	cfg := &Config{
		Env:      env,
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Agentic: AgenticConfig{
			MaxIterations:       getEnvInt("AGENTIC_MAX_ITERATIONS", 5),
			Timeout:             time.Duration(getEnvInt("AGENTIC_TIMEOUT_MS", 120000)) * time.Millisecond,
			SimilarityThreshold: getEnvFloat("AGENTIC_SIMILARITY_THRESHOLD", 0.3),
			ExploreLimit:        getEnvInt("SQL_VALIDATOR_EXPLORE_LIMIT", 20),
			TableLimit:          getEnvInt("SQL_VALIDATOR_TABLE_LIMIT", 50),
			PlotLimit:           getEnvInt("SQL_VALIDATOR_PLOT_LIMIT", 5000),
		},
		Mapping: MappingConfig{
			FuzzyThreshold: getEnvFloat("BACKFILL_SIMILARITY_THRESHOLD", 0.70),
			AutoAccept:     getEnvFloat("MAPPING_AUTO_ACCEPT", 0.80),
			QueueLower:     getEnvFloat("MAPPING_QUEUE_LOWER", 0.60),
			AmbiguityDelta: getEnvFloat("MAPPING_AMBIGUITY_DELTA", 0.05),
		},
		Units: UnitsConfig{
			MaxConcurrency:       getEnvInt("UNIT_NORMALIZATION_MAX_CONCURRENCY", 5),
			GlobalConcurrency:    getEnvInt("UNIT_NORMALIZATION_GLOBAL_CONCURRENCY", 0),
			AutoLearnConfidence:  getEnv("LLM_AUTO_LEARN_CONFIDENCE", "high"),
			UCUMValidationEnable: getEnvBool("UCUM_VALIDATION_ENABLED", true),
			UCUMValidationStrict: getEnvBool("UCUM_VALIDATION_STRICT", false),
		},
		Gmail: GmailConfig{
			MaxEmails:           getEnvInt("GMAIL_MAX_EMAILS", 200),
			ConcurrencyLimit:    int64(getEnvInt("GMAIL_CONCURRENCY_LIMIT", 50)),
			RateLimitMaxRetries: getEnvInt("GMAIL_RATE_LIMIT_MAX_RETRIES", 5),
			RateLimitBaseDelay:  time.Duration(getEnvInt("GMAIL_RATE_LIMIT_BASE_DELAY_MS", 60000)) * time.Millisecond,
			MaxBodyChars:        getEnvInt("GMAIL_MAX_BODY_CHARS", 8000),
			ClientID:            os.Getenv("GMAIL_CLIENT_ID"),
			ClientSecret:        os.Getenv("GMAIL_CLIENT_SECRET"),
			RedirectURL:         os.Getenv("GMAIL_REDIRECT_URL"),
		},
		LLM: LLMConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			VisionModel:     getEnv("LLM_VISION_MODEL", "gemini-2.5-pro"),
			ChatModel:       getEnv("LLM_CHAT_MODEL", "gemini-2.5-flash"),
			SQLGenTimeout:   time.Duration(getEnvInt("LLM_SQLGEN_TIMEOUT_MS", 30000)) * time.Millisecond,
			ClassifyTimeout: time.Duration(getEnvInt("LLM_CLASSIFY_TIMEOUT_MS", 120000)) * time.Millisecond,
		},
		Schema: SchemaCacheConfig{
			TTL:     time.Duration(getEnvInt("SCHEMA_CACHE_TTL_MS", int(schemaTTL/time.Millisecond))) * time.Millisecond,
			Schemas: []string{"public"},
		},
		Jobs: JobsConfig{
			SweepInterval: time.Duration(getEnvInt("SESSION_SWEEP_INTERVAL_MS", int(time.Hour/time.Millisecond))) * time.Millisecond,
			JobRetention:  time.Duration(getEnvInt("JOB_RETENTION_MS", int(24*time.Hour/time.Millisecond))) * time.Millisecond,
		},
		Storage: StorageConfig{
			BaseDir: getEnv("STORAGE_BASE_DIR", "./data/reports"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects out-of-range values.
func (c *Config) Validate() error {
	if c.Agentic.MaxIterations < 1 || c.Agentic.MaxIterations > 20 {
		return fmt.Errorf("AGENTIC_MAX_ITERATIONS must be between 1 and 20, got %d", c.Agentic.MaxIterations)
	}
	if c.Agentic.Timeout < time.Second {
		return fmt.Errorf("AGENTIC_TIMEOUT_MS must be at least 1000, got %s", c.Agentic.Timeout)
	}
	for name, v := range map[string]float64{
		"BACKFILL_SIMILARITY_THRESHOLD": c.Mapping.FuzzyThreshold,
		"MAPPING_AUTO_ACCEPT":           c.Mapping.AutoAccept,
		"MAPPING_QUEUE_LOWER":           c.Mapping.QueueLower,
		"AGENTIC_SIMILARITY_THRESHOLD":  c.Agentic.SimilarityThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, v)
		}
	}
	if c.Mapping.QueueLower > c.Mapping.AutoAccept {
		return fmt.Errorf("MAPPING_QUEUE_LOWER (%v) must not exceed MAPPING_AUTO_ACCEPT (%v)",
			c.Mapping.QueueLower, c.Mapping.AutoAccept)
	}
	if c.Mapping.AmbiguityDelta < 0 || c.Mapping.AmbiguityDelta > 0.5 {
		return fmt.Errorf("MAPPING_AMBIGUITY_DELTA must be in [0,0.5], got %v", c.Mapping.AmbiguityDelta)
	}
	if c.Units.MaxConcurrency < 1 {
		return fmt.Errorf("UNIT_NORMALIZATION_MAX_CONCURRENCY must be at least 1, got %d", c.Units.MaxConcurrency)
	}
	switch c.Units.AutoLearnConfidence {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("LLM_AUTO_LEARN_CONFIDENCE must be low, medium or high, got %q", c.Units.AutoLearnConfidence)
	}
	if c.Gmail.MaxEmails < 1 {
		return fmt.Errorf("GMAIL_MAX_EMAILS must be at least 1, got %d", c.Gmail.MaxEmails)
	}
	if c.Gmail.ConcurrencyLimit < 1 {
		return fmt.Errorf("GMAIL_CONCURRENCY_LIMIT must be at least 1, got %d", c.Gmail.ConcurrencyLimit)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
