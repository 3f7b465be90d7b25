package units

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
	"github.com/labdex/labdex/pkg/config"
	"github.com/labdex/labdex/pkg/llm"
)

type fakeStore struct {
	mu       sync.Mutex
	aliases  map[string]string
	bumps    map[string]int
	reviews  []Review
	normErr  error
	queueErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		aliases: map[string]string{},
		bumps:   map[string]int{},
	}
}

func (s *fakeStore) NormalizeText(_ context.Context, raw string) (string, error) {
	if s.normErr != nil {
		return "", s.normErr
	}
	return strings.ToLower(strings.Join(strings.Fields(raw), " ")), nil
}

func (s *fakeStore) LookupAlias(_ context.Context, normalized string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.aliases[normalized]
	return c, ok, nil
}

func (s *fakeStore) WithAliasLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *fakeStore) InsertAlias(_ context.Context, alias, canonical, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliases[alias] = canonical
	return nil
}

func (s *fakeStore) BumpAlias(_ context.Context, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumps[alias]++
	return nil
}

func (s *fakeStore) QueueReview(_ context.Context, review Review) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, review)
	return nil
}

type fakeLLM struct {
	mu        sync.Mutex
	responses []modelSuggestion
	calls     int
	err       error
}

func (f *fakeLLM) Complete(context.Context, llm.CompleteRequest) (*llm.Completion, error) {
	return nil, errors.New("not used")
}

func (f *fakeLLM) GenerateStructured(_ context.Context, _ llm.StructuredRequest) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	f.calls++
	return json.Marshal(resp)
}

func testConfig() config.UnitsConfig {
	return config.UnitsConfig{
		MaxConcurrency:       3,
		AutoLearnConfidence:  ConfidenceHigh,
		UCUMValidationEnable: true,
	}
}

func newTestNormalizer(store Store, model llm.Client) *Normalizer {
	return NewNormalizer(store, model, testConfig(), "gemini-test")
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := newTestNormalizer(newFakeStore(), &fakeLLM{})

	out, err := n.Normalize(context.Background(), "   ", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Outcome{Canonical: "", Tier: TierRaw}, out)
}

func TestNormalize_ExactTier(t *testing.T) {
	store := newFakeStore()
	store.aliases["u/l"] = "U/L"
	model := &fakeLLM{}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "  U/l ", uuid.New(), "ALT")
	require.NoError(t, err)
	assert.Equal(t, "U/L", out.Canonical)
	assert.Equal(t, TierExact, out.Tier)
	assert.Zero(t, model.calls)
}

func TestNormalize_LLMTierLearnsAlias(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mmol/L", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "ммоль/л", uuid.New(), "Glucose")
	require.NoError(t, err)
	assert.Equal(t, "mmol/L", out.Canonical)
	assert.Equal(t, TierLLM, out.Tier)
	require.NotNil(t, out.Confidence)
	assert.Equal(t, ConfidenceHigh, *out.Confidence)
	assert.Equal(t, "mmol/L", store.aliases["ммоль/л"])
}

func TestNormalize_ConcurrentSameCanonicalBumpsCount(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mmol/L", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)

	// Another worker learns the same canonical between the miss and the
	// locked re-check; learn_count increments instead of reinserting.
	firstLookup := true
	n.store = &lookupInterceptor{
		Store: store,
		onLookup: func(normalized string) {
			if firstLookup {
				firstLookup = false
				store.aliases[normalized] = "mmol/L"
			}
		},
	}

	out, err := n.Normalize(context.Background(), "ммоль/л", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierLLM, out.Tier)
	assert.Equal(t, "mmol/L", out.Canonical)
	assert.Equal(t, 1, store.bumps["ммоль/л"])
	assert.Empty(t, store.reviews)
}

func TestNormalize_ConflictQueuesReviewAndReturnsRaw(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mg/dL", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)

	// Another worker learns a different canonical between the miss and the
	// locked re-check.
	firstLookup := true
	n.store = &lookupInterceptor{
		Store: store,
		onLookup: func(normalized string) {
			if firstLookup {
				firstLookup = false
				return
			}
			store.aliases[normalized] = "g/L"
		},
	}

	out, err := n.Normalize(context.Background(), "mg%", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
	assert.Equal(t, "mg%", out.Canonical)

	require.Len(t, store.reviews, 1)
	assert.Equal(t, IssueAliasConflict, store.reviews[0].IssueType)
	// The existing canonical was not overwritten.
	assert.Equal(t, "g/L", store.aliases["mg%"])
}

// lookupInterceptor lets a test mutate the alias table between lookups.
type lookupInterceptor struct {
	Store
	onLookup func(normalized string)
}

func (l *lookupInterceptor) LookupAlias(ctx context.Context, normalized string) (string, bool, error) {
	c, ok, err := l.Store.LookupAlias(ctx, normalized)
	l.onLookup(normalized)
	return c, ok, err
}

func TestNormalize_LowConfidenceQueuesReview(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mmol/L", Confidence: ConfidenceMedium},
	}}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "weird unit", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
	assert.Equal(t, "weird unit", out.Canonical)

	require.Len(t, store.reviews, 1)
	assert.Equal(t, IssueLowConfidence, store.reviews[0].IssueType)
	require.NotNil(t, store.reviews[0].Suggestion)
	assert.Equal(t, "mmol/L", *store.reviews[0].Suggestion)
	assert.Empty(t, store.aliases)
}

func TestNormalize_UCUMCorrection(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "10^9/l", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "10^9/л", uuid.New(), "WBC")
	require.NoError(t, err)
	assert.Equal(t, "10*9/L", out.Canonical)
	assert.Equal(t, TierLLM, out.Tier)
}

func TestNormalize_InvalidUCUMRetriesThenQueues(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "grams per liter", Confidence: ConfidenceHigh},
		{Canonical: "bogus again", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "г/л?", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
	require.Len(t, store.reviews, 1)
	assert.Equal(t, IssueInvalidUCUM, store.reviews[0].IssueType)
}

func TestNormalize_LLMFailureFallsBackToRaw(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{err: errors.New("backend unavailable")}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "mg/dl", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
	assert.Equal(t, "mg/dl", out.Canonical)
}

func TestNormalize_SanitizationRejectedSkipsModel(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mmol/L", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)

	// Overlong input would be truncated for the prompt; it goes to review
	// instead of the model.
	long := strings.Repeat("a", 150)
	out, err := n.Normalize(context.Background(), long, uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
	assert.Equal(t, long, out.Canonical)
	assert.Zero(t, model.calls)

	require.Len(t, store.reviews, 1)
	assert.Equal(t, IssueSanitizationRejected, store.reviews[0].IssueType)
	assert.Nil(t, store.reviews[0].Suggestion)

	// Input that sanitization empties entirely is rejected the same way.
	out, err = n.Normalize(context.Background(), `";;!!"`, uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
	assert.Zero(t, model.calls)

	require.Len(t, store.reviews, 2)
	assert.Equal(t, IssueSanitizationRejected, store.reviews[1].IssueType)
}

func TestNormalize_QueueFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	store.queueErr = errors.New("insert failed")
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mmol/L", Confidence: ConfidenceLow},
	}}
	n := newTestNormalizer(store, model)

	out, err := n.Normalize(context.Background(), "something", uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, TierRaw, out.Tier)
}

func TestSanitizePromptInput(t *testing.T) {
	got, truncated := sanitizePromptInput("10^9/L; DROP TABLE--")
	assert.False(t, truncated)
	assert.Equal(t, "10^9/L DROP TABLE--", got)

	got, truncated = sanitizePromptInput(strings.Repeat("a", 150))
	assert.True(t, truncated)
	assert.Len(t, got, 100)

	// Cyrillic survives.
	got, _ = sanitizePromptInput("ммоль/л")
	assert.Equal(t, "ммоль/л", got)
}

func TestASCIIPreprocess(t *testing.T) {
	assert.Equal(t, "umol/L", asciiPreprocess("μmol/L"))
	assert.Equal(t, "umol/L", asciiPreprocess("µmol/L"))
	assert.Equal(t, "Ohm", asciiPreprocess("Ω"))
	assert.Equal(t, "degC", asciiPreprocess("°C"))
	assert.Equal(t, "", asciiPreprocess(strings.Repeat("x", 60)))
}

func TestNormalizeBatch_DeduplicatesByRawUnit(t *testing.T) {
	store := newFakeStore()
	model := &fakeLLM{responses: []modelSuggestion{
		{Canonical: "mmol/L", Confidence: ConfidenceHigh},
	}}
	n := newTestNormalizer(store, model)
	b := NewBatcher(n)

	var items []BatchItem
	ids := make([]uuid.UUID, 6)
	for i := range ids {
		ids[i] = uuid.New()
		items = append(items, BatchItem{
			ResultID:      ids[i],
			RawUnit:       "ммоль/л",
			ParameterName: fmt.Sprintf("P%d", i),
		})
	}

	outcomes := b.NormalizeBatch(context.Background(), items)
	require.Len(t, outcomes, 6)
	for _, id := range ids {
		assert.Equal(t, "mmol/L", outcomes[id].Canonical)
	}
	// One unit string, one model call.
	assert.Equal(t, 1, model.calls)
}

func TestNormalizeBatch_FailureIsolatesToUnit(t *testing.T) {
	store := newFakeStore()
	store.aliases["u/l"] = "U/L"
	model := &fakeLLM{err: errors.New("down")}
	n := newTestNormalizer(store, model)
	b := NewBatcher(n)

	idOK, idBad := uuid.New(), uuid.New()
	outcomes := b.NormalizeBatch(context.Background(), []BatchItem{
		{ResultID: idOK, RawUnit: "U/L"},
		{ResultID: idBad, RawUnit: "mystery"},
	})

	assert.Equal(t, TierExact, outcomes[idOK].Tier)
	assert.Equal(t, TierRaw, outcomes[idBad].Tier)
	assert.Equal(t, "mystery", outcomes[idBad].Canonical)
}
