package mapping

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdex/labdex/pkg/config"
	"github.com/labdex/labdex/pkg/llm"
)

type writtenMapping struct {
	ResultID   string
	AnalyteID  string
	Confidence float64
	Source     string
}

type insertedAlias struct {
	AnalyteID string
	Alias     string
	Source    string
}

type fakeMapStore struct {
	exact    map[string]Candidate   // labelNorm -> candidate
	fuzzy    map[string][]Candidate // labelNorm -> candidates
	approved map[string]Candidate   // code -> candidate
	pending  map[string]bool        // code -> pending exists

	writes    []writtenMapping
	aliases   []insertedAlias
	reviews   []MatchReview
	proposals []PendingProposal
}

func newFakeMapStore() *fakeMapStore {
	return &fakeMapStore{
		exact:    map[string]Candidate{},
		fuzzy:    map[string][]Candidate{},
		approved: map[string]Candidate{},
		pending:  map[string]bool{},
	}
}

func (s *fakeMapStore) ExactAlias(_ context.Context, labelNorm string) (*Candidate, error) {
	if c, ok := s.exact[labelNorm]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *fakeMapStore) FuzzyCandidates(_ context.Context, labelNorm string, _ float64, _ int) ([]Candidate, error) {
	return s.fuzzy[labelNorm], nil
}

func (s *fakeMapStore) AnalyteSchema(context.Context) ([]SchemaEntry, error) {
	return []SchemaEntry{{Code: "HDL", Name: "HDL cholesterol", Unit: "mmol/L"}}, nil
}

func (s *fakeMapStore) CategoriesForReport(context.Context, string) ([]string, error) {
	return nil, nil
}

func (s *fakeMapStore) AnalyteByCode(_ context.Context, code string) (*Candidate, bool, error) {
	if c, ok := s.approved[code]; ok {
		return &c, false, nil
	}
	return nil, s.pending[code], nil
}

func (s *fakeMapStore) WriteMapping(_ context.Context, resultID, analyteID string, confidence float64, source string) error {
	s.writes = append(s.writes, writtenMapping{resultID, analyteID, confidence, source})
	return nil
}

func (s *fakeMapStore) InsertAlias(_ context.Context, analyteID, alias, _, source string, _ float64) error {
	s.aliases = append(s.aliases, insertedAlias{analyteID, alias, source})
	return nil
}

func (s *fakeMapStore) QueueMatchReview(_ context.Context, review MatchReview) error {
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *fakeMapStore) UpsertPending(_ context.Context, p PendingProposal) error {
	s.proposals = append(s.proposals, p)
	return nil
}

type fakeAdjudicator struct {
	verdicts []verdict
	err      error
	called   bool
}

func (f *fakeAdjudicator) Complete(context.Context, llm.CompleteRequest) (*llm.Completion, error) {
	return nil, errors.New("not used")
}

func (f *fakeAdjudicator) GenerateStructured(_ context.Context, _ llm.StructuredRequest) (json.RawMessage, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return json.Marshal(map[string]any{"rows": f.verdicts})
}

func mapperConfig() config.MappingConfig {
	return config.MappingConfig{
		FuzzyThreshold: 0.70,
		AutoAccept:     0.80,
		QueueLower:     0.60,
		AmbiguityDelta: 0.05,
	}
}

func newTestMapper(store Store, adj llm.Client) *Mapper {
	return NewMapper(store, adj, mapperConfig(), "gemini-test")
}

func TestWetRun_ExactAliasHit(t *testing.T) {
	store := newFakeMapStore()
	store.exact["hdl c"] = Candidate{AnalyteID: "a1", Code: "HDL", Name: "HDL cholesterol"}
	adj := &fakeAdjudicator{}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "HDL-C"},
	})
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	assert.Equal(t, writtenMapping{"lr1", "a1", 1.0, SourceAutoExact}, store.writes[0])
	assert.False(t, adj.called)
	assert.Equal(t, 1, res.Counters[DecisionMatchExact])
}

func TestWetRun_FuzzyAutoAccept(t *testing.T) {
	store := newFakeMapStore()
	store.fuzzy["alt gpt"] = []Candidate{
		{AnalyteID: "a2", Code: "ALT", Similarity: 0.91},
		{AnalyteID: "a3", Code: "AST", Similarity: 0.55},
	}
	adj := &fakeAdjudicator{}
	m := newTestMapper(store, adj)

	_, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "ALT (GPT)"},
	})
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	assert.Equal(t, SourceAutoFuzzy, store.writes[0].Source)
	assert.InDelta(t, 0.91, store.writes[0].Confidence, 1e-9)
	assert.False(t, adj.called)
}

func TestWetRun_AmbiguousResolvedByLLM(t *testing.T) {
	store := newFakeMapStore()
	store.fuzzy["витамин д 25 oh"] = []Candidate{
		{AnalyteID: "a4", Code: "VIT_D", Similarity: 0.86},
		{AnalyteID: "a5", Code: "VIT_D_TOTAL", Similarity: 0.83},
	}
	store.approved["VIT_D_TOTAL"] = Candidate{AnalyteID: "a5", Code: "VIT_D_TOTAL"}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "MATCH", Code: "VIT_D_TOTAL", Confidence: 0.9, Comment: "total assay"},
	}}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "витамин д (25-OH)"},
	})
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	assert.Equal(t, "a5", store.writes[0].AnalyteID)
	assert.Equal(t, SourceAutoLLM, store.writes[0].Source)

	// The ambiguous bucket drained into the LLM-match bucket.
	assert.Equal(t, 0, res.Counters[DecisionAmbiguousFuzzy])
	assert.Equal(t, 1, res.Counters[DecisionMatchLLM])
	assert.Equal(t, 1, res.Counters.Total())
}

func TestWetRun_ProvisionalConfirmed(t *testing.T) {
	store := newFakeMapStore()
	store.fuzzy["crp"] = []Candidate{
		{AnalyteID: "a6", Code: "CRP", Similarity: 0.72},
	}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "MATCH", Code: "CRP", Confidence: 0.75, Comment: "same analyte"},
	}}
	m := newTestMapper(store, adj)

	_, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "CRP"},
	})
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	assert.Equal(t, SourceAutoFuzzyLLM, store.writes[0].Source)
	// Confirmed confidence floors at the auto-accept threshold.
	assert.InDelta(t, 0.80, store.writes[0].Confidence, 1e-9)
}

func TestWetRun_ProvisionalConflictQueues(t *testing.T) {
	store := newFakeMapStore()
	store.fuzzy["ферритин"] = []Candidate{
		{AnalyteID: "a7", Code: "FERRITIN", Similarity: 0.74},
	}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "MATCH", Code: "TRANSFERRIN", Confidence: 0.70, Comment: "maybe"},
	}}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "Ферритин"},
	})
	require.NoError(t, err)

	assert.Empty(t, store.writes)
	require.Len(t, store.reviews, 1)
	assert.Equal(t, "conflict", store.reviews[0].Source)
	// The LLM alternative rides along in the candidate list.
	codes := []string{}
	for _, c := range store.reviews[0].Candidates {
		codes = append(codes, c.Code)
	}
	assert.Contains(t, codes, "FERRITIN")
	assert.Contains(t, codes, "TRANSFERRIN")
	assert.Equal(t, 1, res.Counters[DecisionConflictFuzzyLLM])
}

func TestWetRun_ProvisionalAbstainFallsBackButQueues(t *testing.T) {
	store := newFakeMapStore()
	store.fuzzy["tsh"] = []Candidate{
		{AnalyteID: "a8", Code: "TSH", Similarity: 0.73},
	}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "ABSTAIN", Confidence: 0, Comment: "unsure"},
	}}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "TSH"},
	})
	require.NoError(t, err)

	// Fallback confidence 0.73 is below auto-accept, so the row queues
	// instead of writing.
	assert.Empty(t, store.writes)
	require.Len(t, store.reviews, 1)
	assert.Equal(t, 1, res.Counters[DecisionMatchFuzzy])
}

func TestWetRun_NewAnalyteProposal(t *testing.T) {
	store := newFakeMapStore()
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "NEW", Code: "NEW_MARKER_X", Name: "New Marker X", Confidence: 0.78, Comment: "not in catalog"},
	}}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "Marker X", Unit: "ng/mL"},
	})
	require.NoError(t, err)

	assert.Empty(t, store.writes)
	require.Len(t, store.proposals, 1)
	assert.Equal(t, "NEW_MARKER_X", store.proposals[0].Code)
	assert.Equal(t, "New Marker X", store.proposals[0].Name)
	assert.Equal(t, "r1", store.proposals[0].ReportID)
	assert.Equal(t, 1, res.Counters[DecisionNewLLM])
	assert.Equal(t, 1, res.Pending)
}

func TestWetRun_NewProposalCollidingWithApprovedIsSkipped(t *testing.T) {
	store := newFakeMapStore()
	store.approved["HDL"] = Candidate{AnalyteID: "a1", Code: "HDL"}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "NEW", Code: "HDL", Confidence: 0.9, Comment: "oops"},
	}}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "HDL something"},
	})
	require.NoError(t, err)
	assert.Empty(t, store.proposals)
	assert.Zero(t, res.Pending)
}

func TestWetRun_PendingCodeMatchQueuesReview(t *testing.T) {
	store := newFakeMapStore()
	store.pending["NEW_MARKER_X"] = true
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "MATCH", Code: "NEW_MARKER_X", Confidence: 0.92, Comment: "seen before"},
	}}
	m := newTestMapper(store, adj)

	_, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "Marker X"},
	})
	require.NoError(t, err)

	assert.Empty(t, store.writes)
	require.Len(t, store.reviews, 1)
	assert.Equal(t, "pending_analyte", store.reviews[0].Source)
	assert.Equal(t, "NEW_MARKER_X", store.reviews[0].PendingCode)
}

func TestWetRun_SemanticMatchLearnsAlias(t *testing.T) {
	store := newFakeMapStore()
	store.fuzzy["лпнп прямой"] = []Candidate{
		{AnalyteID: "a9", Code: "LDL", Similarity: 0.45},
	}
	store.approved["LDL"] = Candidate{AnalyteID: "a9", Code: "LDL"}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr1", Decision: "MATCH", Code: "LDL", Confidence: 0.88, Comment: "direct LDL"},
	}}
	m := newTestMapper(store, adj)

	_, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "ЛПНП (прямой)"},
	})
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	assert.Equal(t, SourceAutoLLM, store.writes[0].Source)
	require.Len(t, store.aliases, 1)
	assert.Equal(t, insertedAlias{"a9", "лпнп прямой", SourceLLMSemanticMatch}, store.aliases[0])
}

func TestWetRun_LLMFailureLeavesRowsQueued(t *testing.T) {
	store := newFakeMapStore()
	adj := &fakeAdjudicator{err: errors.New("backend down")}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "Mystery"},
	})
	require.NoError(t, err)

	assert.Empty(t, store.writes)
	require.Len(t, store.reviews, 1)
	assert.Equal(t, "abstain", store.reviews[0].Source)
	assert.Equal(t, 1, res.Counters[DecisionUnmapped])
}

func TestWetRun_CounterIdentity(t *testing.T) {
	store := newFakeMapStore()
	store.exact["hdl c"] = Candidate{AnalyteID: "a1", Code: "HDL"}
	store.fuzzy["alt"] = []Candidate{{AnalyteID: "a2", Code: "ALT", Similarity: 0.95}}
	store.fuzzy["crp"] = []Candidate{{AnalyteID: "a6", Code: "CRP", Similarity: 0.72}}
	store.approved["VIT_D_TOTAL"] = Candidate{AnalyteID: "a5", Code: "VIT_D_TOTAL"}
	store.fuzzy["витамин д"] = []Candidate{
		{AnalyteID: "a4", Code: "VIT_D", Similarity: 0.86},
		{AnalyteID: "a5", Code: "VIT_D_TOTAL", Similarity: 0.83},
	}
	adj := &fakeAdjudicator{verdicts: []verdict{
		{ResultID: "lr3", Decision: "MATCH", Code: "CRP", Confidence: 0.8, Comment: "ok"},
		{ResultID: "lr4", Decision: "MATCH", Code: "VIT_D_TOTAL", Confidence: 0.9, Comment: "ok"},
		{ResultID: "lr5", Decision: "NEW", Code: "NEW_X", Name: "X", Confidence: 0.7, Comment: "new"},
	}}
	m := newTestMapper(store, adj)

	res, err := m.WetRun(context.Background(), "r1", []Input{
		{ResultID: "lr1", ParameterName: "HDL-C"},
		{ResultID: "lr2", ParameterName: "ALT"},
		{ResultID: "lr3", ParameterName: "CRP"},
		{ResultID: "lr4", ParameterName: "витамин д"},
		{ResultID: "lr5", ParameterName: "Mystery"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Counters.Total())
	assert.Equal(t, 1, res.Counters[DecisionMatchExact])
	assert.Equal(t, 1, res.Counters[DecisionMatchFuzzy])
	assert.Equal(t, 1, res.Counters[DecisionMatchFuzzyConfirmed])
	assert.Equal(t, 1, res.Counters[DecisionMatchLLM])
	assert.Equal(t, 1, res.Counters[DecisionNewLLM])
	// Every pre-LLM bucket that transitioned drained to zero.
	assert.Equal(t, 0, res.Counters[DecisionNeedsLLMReview])
	assert.Equal(t, 0, res.Counters[DecisionAmbiguousFuzzy])
	assert.Equal(t, 0, res.Counters[DecisionUnmapped])
}
