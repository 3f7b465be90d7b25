package gmail

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"

	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/report"
)

func TestStateStore_IssueAndConsume(t *testing.T) {
	s := NewStateStore()

	state, err := s.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, state)

	userID, ok := s.Consume(state)
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestStateStore_OneTimeUse(t *testing.T) {
	s := NewStateStore()
	state, err := s.Issue("user-1")
	require.NoError(t, err)

	_, ok := s.Consume(state)
	require.True(t, ok)

	_, ok = s.Consume(state)
	assert.False(t, ok, "second consume must fail")
}

func TestStateStore_Expiry(t *testing.T) {
	s := NewStateStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	state, err := s.Issue("user-1")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(stateTTL + time.Second) }
	_, ok := s.Consume(state)
	assert.False(t, ok, "expired state must be rejected")
}

func TestStateStore_UnknownState(t *testing.T) {
	s := NewStateStore()
	_, ok := s.Consume("never-issued")
	assert.False(t, ok)
}

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plain subject", "Plain subject"},
		{"=?utf-8?B?TGFiIFJlc3VsdHM=?=", "Lab Results"},
		{"=?utf-8?q?Lab=20Results?=", "Lab Results"},
		{"=?bogus-charset?B?????=", "=?bogus-charset?B?????="},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeHeader(tt.in))
	}
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(&googleapi.Error{Code: 429}))
	assert.True(t, isRateLimited(&googleapi.Error{
		Code:   403,
		Errors: []googleapi.ErrorItem{{Reason: "rateLimitExceeded"}},
	}))
	assert.True(t, isRateLimited(&googleapi.Error{
		Code:   403,
		Errors: []googleapi.ErrorItem{{Reason: "userRateLimitExceeded"}},
	}))
	assert.False(t, isRateLimited(&googleapi.Error{
		Code:   403,
		Errors: []googleapi.ErrorItem{{Reason: "insufficientPermissions"}},
	}))
	assert.False(t, isRateLimited(&googleapi.Error{Code: 500}))
	assert.False(t, isRateLimited(errors.New("plain error")))
}

func b64url(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestExtractBody_PrefersPlainText(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmailapi.MessagePart{
			{MimeType: "text/html", Body: &gmailapi.MessagePartBody{Data: b64url("<p>html body</p>")}},
			{MimeType: "text/plain", Body: &gmailapi.MessagePartBody{Data: b64url("plain   body\n\nwith gaps")}},
		},
	}
	assert.Equal(t, "plain body with gaps", extractBody(payload, 8000))
}

func TestExtractBody_FallsBackToStrippedHTML(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "text/html",
		Body: &gmailapi.MessagePartBody{
			Data: b64url("<html><style>p{color:red}</style><p>Your &amp; results</p></html>"),
		},
	}
	assert.Equal(t, "Your & results", extractBody(payload, 8000))
}

func TestExtractBody_Truncates(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	payload := &gmailapi.MessagePart{
		MimeType: "text/plain",
		Body:     &gmailapi.MessagePartBody{Data: b64url(string(long))},
	}
	assert.Len(t, extractBody(payload, 10), 10)
}

func TestCollectAttachments_Validation(t *testing.T) {
	longName := make([]byte, 256)
	for i := range longName {
		longName[i] = 'a'
	}
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmailapi.MessagePart{
			{Filename: "report.pdf", MimeType: "application/pdf",
				Body: &gmailapi.MessagePartBody{AttachmentId: "att-1", Size: 1024}},
			{Filename: string(longName), MimeType: "application/pdf",
				Body: &gmailapi.MessagePartBody{AttachmentId: "att-2", Size: 10}},
			{Filename: "noid.png", MimeType: "image/png",
				Body: &gmailapi.MessagePartBody{Size: 10}},
			{Filename: "negative.pdf", MimeType: "application/pdf",
				Body: &gmailapi.MessagePartBody{AttachmentId: "att-4", Size: -1}},
		},
	}

	atts, issues := collectAttachments(payload)
	require.Len(t, atts, 1)
	assert.Equal(t, "report.pdf", atts[0].Filename)
	assert.Len(t, issues, 3)
}

func TestIsOCRAble(t *testing.T) {
	assert.True(t, isOCRAble(Attachment{MimeType: "application/pdf"}))
	assert.True(t, isOCRAble(Attachment{MimeType: "image/HEIC"}))
	assert.True(t, isOCRAble(Attachment{MimeType: "application/octet-stream", Filename: "scan.JPG"}))
	assert.True(t, isOCRAble(Attachment{Filename: "results.jpeg"}))
	assert.False(t, isOCRAble(Attachment{MimeType: "application/zip", Filename: "archive.zip"}))
	assert.False(t, isOCRAble(Attachment{MimeType: "text/csv", Filename: "data.csv"}))
}

func TestClassifyBodyless(t *testing.T) {
	ocr := Attachment{Filename: "report.pdf", MimeType: "application/pdf", AttachmentID: "a1"}
	zip := Attachment{Filename: "junk.zip", MimeType: "application/zip", AttachmentID: "a2"}

	v := classifyBodyless(candidate{
		meta:        MessageMeta{ID: "m1"},
		attachments: []Attachment{ocr, zip},
	})
	assert.True(t, v.Accepted)
	assert.InDelta(t, noBodyOCRConfidence, v.Confidence, 1e-9)
	require.Len(t, v.Attachments, 1)
	assert.Equal(t, "report.pdf", v.Attachments[0].Filename)
	require.Len(t, v.RejectedAttachments, 1)

	v = classifyBodyless(candidate{
		meta:        MessageMeta{ID: "m2"},
		attachments: []Attachment{zip},
	})
	assert.False(t, v.Accepted)
	assert.Empty(t, v.Attachments)
}

type fakeLLM struct {
	resp json.RawMessage
	err  error
}

func (f *fakeLLM) Complete(context.Context, llm.CompleteRequest) (*llm.Completion, error) {
	return nil, errors.New("not used")
}

func (f *fakeLLM) GenerateStructured(context.Context, llm.StructuredRequest) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestClassifyBodyBatch_FailureDemotesToUncertain(t *testing.T) {
	c := NewClassifier(&fakeLLM{err: errors.New("backend down")}, "gemini-test",
		semaphore.NewWeighted(4), 8000, 1, time.Millisecond)

	ocr := Attachment{Filename: "report.pdf", MimeType: "application/pdf", AttachmentID: "a1"}
	zip := Attachment{Filename: "junk.zip", MimeType: "application/zip", AttachmentID: "a2"}
	verdicts := c.classifyBodyBatch(context.Background(), []candidate{{
		meta:        MessageMeta{ID: "m1", Subject: "Your results"},
		body:        "results attached",
		attachments: []Attachment{ocr, zip},
		issues:      []string{"attachment skipped: no id"},
	}})

	require.Len(t, verdicts, 1)
	v := verdicts[0]
	assert.True(t, v.Accepted, "an unjudged message must stay visible to the user")
	assert.InDelta(t, 0.5, v.Confidence, 1e-9)
	assert.Equal(t, "classifier unavailable", v.Reason)
	require.Len(t, v.Attachments, 1)
	assert.Equal(t, "report.pdf", v.Attachments[0].Filename)
	require.Len(t, v.RejectedAttachments, 1)
	assert.Equal(t, "junk.zip", v.RejectedAttachments[0].Filename)
	assert.Equal(t, []string{"attachment skipped: no id"}, v.AttachmentIssues)
}

func TestClassifyBodyBatch_UnmatchedRowStaysUncertain(t *testing.T) {
	resp, err := json.Marshal(map[string]interface{}{"rows": []interface{}{}})
	require.NoError(t, err)
	c := NewClassifier(&fakeLLM{resp: resp}, "gemini-test",
		semaphore.NewWeighted(4), 8000, 1, time.Millisecond)

	verdicts := c.classifyBodyBatch(context.Background(), []candidate{{
		meta:        MessageMeta{ID: "m1"},
		body:        "results attached",
		attachments: []Attachment{{Filename: "report.pdf", MimeType: "application/pdf", AttachmentID: "a1"}},
	}})

	require.Len(t, verdicts, 1)
	assert.True(t, verdicts[0].Accepted)
	assert.InDelta(t, 0.5, verdicts[0].Confidence, 1e-9)
	assert.Equal(t, "not classified", verdicts[0].Reason)
	require.Len(t, verdicts[0].Attachments, 1)
}

func TestNormalizeMIME(t *testing.T) {
	tests := []struct {
		mime, filename, want string
	}{
		{"application/pdf", "x.pdf", "application/pdf"},
		{"image/jpg", "x.jpg", "image/jpeg"},
		{"application/octet-stream", "scan.pdf", "application/pdf"},
		{"application/octet-stream", "photo.JPEG", "image/jpeg"},
		{"", "pic.png", "image/png"},
		{"application/octet-stream", "data.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeMIME(tt.mime, tt.filename), "%s/%s", tt.mime, tt.filename)
	}
}

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	batches := chunk(items, 2)
	require.Len(t, batches, 3)
	assert.Equal(t, []int{1, 2}, batches[0])
	assert.Equal(t, []int{5}, batches[2])

	assert.Empty(t, chunk([]int{}, 2))
}

type fakeProvenance struct {
	mu        sync.Mutex
	seenAtt   map[string]string // messageID/attachmentID -> report id
	seenSum   map[string]string // userID/checksum -> report id
	recorded  []Provenance
	attErr    error
	recordErr error
}

func newFakeProvenance() *fakeProvenance {
	return &fakeProvenance{seenAtt: map[string]string{}, seenSum: map[string]string{}}
}

func (f *fakeProvenance) SeenAttachment(_ context.Context, messageID, attachmentID string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attErr != nil {
		return "", false, f.attErr
	}
	id, ok := f.seenAtt[messageID+"/"+attachmentID]
	return id, ok, nil
}

func (f *fakeProvenance) SeenChecksum(_ context.Context, userID, checksum string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.seenSum[userID+"/"+checksum]
	return id, ok, nil
}

func (f *fakeProvenance) Record(_ context.Context, p Provenance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, p)
	return nil
}

type fakeMailbox struct {
	payloads map[string][]byte // attachmentID -> bytes
	downErr  error
}

func (f *fakeMailbox) Download(_ context.Context, ref AttachmentRef) ([]byte, error) {
	if f.downErr != nil {
		return nil, f.downErr
	}
	return f.payloads[ref.AttachmentID], nil
}

func (f *fakeMailbox) EmailMeta(_ context.Context, messageID string, prov *Provenance) {
	prov.SenderEmail = "lab@example.com"
	prov.Subject = "Results for " + messageID
}

type fakeProcessor struct {
	mu       sync.Mutex
	outcomes map[string]*report.Outcome // checksum -> outcome
	err      error
	calls    int
}

func (f *fakeProcessor) Process(_ context.Context, _, _, _, _ string, payload []byte) (*report.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	sum := sha256.Sum256(payload)
	if out, ok := f.outcomes[hex.EncodeToString(sum[:])]; ok {
		return out, nil
	}
	return &report.Outcome{ReportID: "rep-default", Created: true}, nil
}

func newTestIngestor(store ProvenanceStore, proc ReportProcessor) *Ingestor {
	return &Ingestor{
		store:     store,
		processor: proc,
		limiter:   semaphore.NewWeighted(4),
		baseDelay: time.Millisecond,
	}
}

func checksumOf(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func TestIngest_AttachmentDedup(t *testing.T) {
	store := newFakeProvenance()
	store.seenAtt["m1/a1"] = "rep-earlier"
	proc := &fakeProcessor{}
	ing := newTestIngestor(store, proc)

	res, err := ing.run(context.Background(), &fakeMailbox{}, "u1", "p1",
		[]AttachmentRef{{MessageID: "m1", AttachmentID: "a1", Filename: "r.pdf"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, ItemDuplicate, res.Items[0].Status)
	assert.Equal(t, "rep-earlier", res.Items[0].ReportID,
		"duplicate must carry the report it duplicates")
	assert.Equal(t, 0, proc.calls, "duplicate must not be downloaded or processed")
	assert.Equal(t, BatchCompleted, res.Status)
}

func TestIngest_ChecksumDedup(t *testing.T) {
	payload := []byte("%PDF same bytes")
	store := newFakeProvenance()
	store.seenSum["u1/"+checksumOf(payload)] = "rep-earlier"
	proc := &fakeProcessor{}
	ing := newTestIngestor(store, proc)
	mbox := &fakeMailbox{payloads: map[string][]byte{"a1": payload}}

	res, err := ing.run(context.Background(), mbox, "u1", "p1",
		[]AttachmentRef{{MessageID: "m2", AttachmentID: "a1", Filename: "r.pdf", MimeType: "application/pdf"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, ItemDuplicate, res.Items[0].Status)
	assert.Equal(t, "rep-earlier", res.Items[0].ReportID)
	assert.Equal(t, 0, proc.calls)
}

func TestIngest_CreatedAndUpdated(t *testing.T) {
	created := []byte("%PDF new")
	updated := []byte("%PDF existing")
	proc := &fakeProcessor{outcomes: map[string]*report.Outcome{
		checksumOf(created): {ReportID: "rep-1", Created: true},
		checksumOf(updated): {ReportID: "rep-2", Created: false},
	}}
	store := newFakeProvenance()
	ing := newTestIngestor(store, proc)
	mbox := &fakeMailbox{payloads: map[string][]byte{"a1": created, "a2": updated}}

	res, err := ing.run(context.Background(), mbox, "u1", "p1", []AttachmentRef{
		{MessageID: "m1", AttachmentID: "a1", Filename: "new.pdf", MimeType: "application/pdf"},
		{MessageID: "m1", AttachmentID: "a2", Filename: "old.pdf", MimeType: "application/pdf"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, ItemCompleted, res.Items[0].Status)
	assert.Equal(t, "rep-1", res.Items[0].ReportID)
	assert.Equal(t, ItemUpdated, res.Items[1].Status)
	assert.Equal(t, BatchCompleted, res.Status)

	require.Len(t, store.recorded, 2)
	for _, p := range store.recorded {
		assert.Equal(t, "lab@example.com", p.SenderEmail)
		assert.NotEmpty(t, p.SHA256)
	}
}

func TestIngest_FailureMarksPartialBatch(t *testing.T) {
	ok := []byte("%PDF fine")
	proc := &fakeProcessor{outcomes: map[string]*report.Outcome{
		checksumOf(ok): {ReportID: "rep-1", Created: true},
	}}
	store := newFakeProvenance()
	ing := newTestIngestor(store, proc)
	mbox := &fakeMailbox{payloads: map[string][]byte{"a1": ok}}

	// a2 has no payload; the processor rejects empty input via its error.
	procFail := &fakeProcessor{err: errors.New("unsupported payload")}
	ingFail := newTestIngestor(store, procFail)

	res, err := ing.run(context.Background(), mbox, "u1", "p1",
		[]AttachmentRef{{MessageID: "m1", AttachmentID: "a1", Filename: "r.pdf", MimeType: "application/pdf"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, BatchCompleted, res.Status)

	res, err = ingFail.run(context.Background(), mbox, "u1", "p1", []AttachmentRef{
		{MessageID: "m1", AttachmentID: "a1", Filename: "r.pdf", MimeType: "application/pdf"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, ItemFailed, res.Items[0].Status)
	assert.Contains(t, res.Items[0].Error, "unsupported payload")
	assert.Equal(t, BatchPartialFailure, res.Status)
}

func TestIngest_ProgressCallback(t *testing.T) {
	store := newFakeProvenance()
	proc := &fakeProcessor{}
	ing := newTestIngestor(store, proc)
	mbox := &fakeMailbox{payloads: map[string][]byte{"a1": []byte("x"), "a2": []byte("y")}}

	var mu sync.Mutex
	var seen []int
	_, err := ing.run(context.Background(), mbox, "u1", "p1", []AttachmentRef{
		{MessageID: "m1", AttachmentID: "a1", Filename: "a.pdf", MimeType: "application/pdf"},
		{MessageID: "m1", AttachmentID: "a2", Filename: "b.pdf", MimeType: "application/pdf"},
	}, func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, done)
		assert.Equal(t, 2, total)
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, seen)
}

func TestParseFrom(t *testing.T) {
	name, email := parseFrom(`"City Lab" <no-reply@citylab.example>`)
	assert.Equal(t, "City Lab", name)
	assert.Equal(t, "no-reply@citylab.example", email)

	name, email = parseFrom("not-an-address")
	assert.Equal(t, "", name)
	assert.Equal(t, "not-an-address", email)
}
