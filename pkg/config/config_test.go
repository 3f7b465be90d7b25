package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)

	assert.Equal(t, 5, cfg.Agentic.MaxIterations)
	assert.Equal(t, 2*time.Minute, cfg.Agentic.Timeout)
	assert.Equal(t, 0.3, cfg.Agentic.SimilarityThreshold)
	assert.Equal(t, 20, cfg.Agentic.ExploreLimit)
	assert.Equal(t, 50, cfg.Agentic.TableLimit)
	assert.Equal(t, 5000, cfg.Agentic.PlotLimit)

	assert.Equal(t, 0.80, cfg.Mapping.AutoAccept)
	assert.Equal(t, 0.60, cfg.Mapping.QueueLower)
	assert.Equal(t, 0.05, cfg.Mapping.AmbiguityDelta)

	assert.Equal(t, "high", cfg.Units.AutoLearnConfidence)
	assert.True(t, cfg.Units.UCUMValidationEnable)

	assert.Equal(t, 200, cfg.Gmail.MaxEmails)
	assert.Equal(t, int64(50), cfg.Gmail.ConcurrencyLimit)
	assert.Equal(t, time.Minute, cfg.Gmail.RateLimitBaseDelay)

	// Development shortens the schema cache TTL.
	assert.Equal(t, 30*time.Second, cfg.Schema.TTL)

	assert.Equal(t, time.Hour, cfg.Jobs.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.Jobs.JobRetention)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LABDEX_ENV", "production")
	t.Setenv("AGENTIC_MAX_ITERATIONS", "8")
	t.Setenv("MAPPING_AUTO_ACCEPT", "0.9")
	t.Setenv("SCHEMA_CACHE_TTL_MS", "5000")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8, cfg.Agentic.MaxIterations)
	assert.Equal(t, 0.9, cfg.Mapping.AutoAccept)
	assert.Equal(t, 5*time.Second, cfg.Schema.TTL)
	assert.Equal(t, "9090", cfg.HTTPPort)
}

func TestLoadUnparsableValueFallsBack(t *testing.T) {
	t.Setenv("AGENTIC_MAX_ITERATIONS", "lots")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Agentic.MaxIterations)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "iterations out of range",
			env:     map[string]string{"AGENTIC_MAX_ITERATIONS": "0"},
			wantErr: "AGENTIC_MAX_ITERATIONS",
		},
		{
			name:    "iterations too high",
			env:     map[string]string{"AGENTIC_MAX_ITERATIONS": "21"},
			wantErr: "AGENTIC_MAX_ITERATIONS",
		},
		{
			name:    "timeout below a second",
			env:     map[string]string{"AGENTIC_TIMEOUT_MS": "500"},
			wantErr: "AGENTIC_TIMEOUT_MS",
		},
		{
			name:    "threshold above one",
			env:     map[string]string{"MAPPING_AUTO_ACCEPT": "1.5"},
			wantErr: "MAPPING_AUTO_ACCEPT",
		},
		{
			name: "queue floor above auto accept",
			env: map[string]string{
				"MAPPING_QUEUE_LOWER": "0.9",
				"MAPPING_AUTO_ACCEPT": "0.8",
			},
			wantErr: "MAPPING_QUEUE_LOWER",
		},
		{
			name:    "ambiguity delta out of range",
			env:     map[string]string{"MAPPING_AMBIGUITY_DELTA": "0.6"},
			wantErr: "MAPPING_AMBIGUITY_DELTA",
		},
		{
			name:    "bad confidence level",
			env:     map[string]string{"LLM_AUTO_LEARN_CONFIDENCE": "certain"},
			wantErr: "LLM_AUTO_LEARN_CONFIDENCE",
		},
		{
			name:    "unit concurrency below one",
			env:     map[string]string{"UNIT_NORMALIZATION_MAX_CONCURRENCY": "0"},
			wantErr: "UNIT_NORMALIZATION_MAX_CONCURRENCY",
		},
		{
			name:    "gmail max emails below one",
			env:     map[string]string{"GMAIL_MAX_EMAILS": "0"},
			wantErr: "GMAIL_MAX_EMAILS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
