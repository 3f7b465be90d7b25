package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"google.golang.org/genai"
	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/labdex/labdex/pkg/llm"
)

// Classification batching: 25 messages per model call, 3 calls in flight.
const (
	classifyBatchSize   = 25
	classifyConcurrency = 3
)

// noBodyOCRConfidence is assigned by the deterministic rule for messages
// with no readable body but at least one OCR-able attachment.
const noBodyOCRConfidence = 0.75

// ocrMIMEs and ocrExtensions define which attachments the vision extractor
// can read.
var ocrMIMEs = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/heic":      true,
}

var ocrExtensions = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true, ".heic": true,
}

// SubjectVerdict is the cheap first-pass classification of one envelope.
type SubjectVerdict struct {
	MessageID  string
	LabLikely  bool
	Confidence float64
	Reason     string
}

// Attachment is one attachment's metadata as reported by Gmail.
type Attachment struct {
	Filename     string
	MimeType     string
	AttachmentID string
	Size         int64
}

// BodyVerdict is the final per-message classification with attachment
// routing.
type BodyVerdict struct {
	MessageID           string
	Accepted            bool
	Confidence          float64
	Reason              string
	Attachments         []Attachment
	RejectedAttachments []Attachment
	AttachmentIssues    []string
}

// Classifier runs both classification stages.
type Classifier struct {
	llm          llm.Client
	model        string
	limiter      *semaphore.Weighted
	maxBodyChars int
	maxRetries   int
	baseDelay    time.Duration
}

// NewClassifier wires a classifier sharing the Gmail limiter.
func NewClassifier(client llm.Client, model string, limiter *semaphore.Weighted, maxBodyChars, maxRetries int, baseDelay time.Duration) *Classifier {
	return &Classifier{
		llm:          client,
		model:        model,
		limiter:      limiter,
		maxBodyChars: maxBodyChars,
		maxRetries:   maxRetries,
		baseDelay:    baseDelay,
	}
}

var subjectSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"rows": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":            {Type: genai.TypeString},
					"is_lab_likely": {Type: genai.TypeBoolean},
					"confidence":    {Type: genai.TypeNumber},
					"reason":        {Type: genai.TypeString},
				},
				Required: []string{"id", "is_lab_likely", "confidence"},
			},
		},
	},
	Required: []string{"rows"},
}

// ClassifySubjects screens envelopes in batches. A batch whose model call
// fails (after the client's own retries) is demoted to uncertain rather
// than dropped, so downstream stages still see every message.
func (c *Classifier) ClassifySubjects(ctx context.Context, metas []MessageMeta) []SubjectVerdict {
	batches := chunk(metas, classifyBatchSize)
	verdicts := make([][]SubjectVerdict, len(batches))

	sem := semaphore.NewWeighted(classifyConcurrency)
	var wg sync.WaitGroup
	for i, batch := range batches {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(idx int, batch []MessageMeta) {
			defer wg.Done()
			defer sem.Release(1)
			verdicts[idx] = c.classifySubjectBatch(ctx, batch)
		}(i, batch)
	}
	wg.Wait()

	var out []SubjectVerdict
	for _, vs := range verdicts {
		out = append(out, vs...)
	}
	return out
}

func (c *Classifier) classifySubjectBatch(ctx context.Context, batch []MessageMeta) []SubjectVerdict {
	var b strings.Builder
	b.WriteString("Decide for each email whether it likely carries a laboratory " +
		"test report (blood work, urinalysis, biochemistry panels and similar). " +
		"Newsletters, invoices and appointment reminders are not lab reports.\n\n")
	for _, m := range batch {
		fmt.Fprintf(&b, "id=%s subject=%q from=%q\n", m.ID, m.Subject, m.From)
	}

	raw, err := c.llm.GenerateStructured(ctx, llm.StructuredRequest{
		Model:  c.model,
		Prompt: b.String(),
		Schema: subjectSchema,
	})
	if err != nil {
		slog.Warn("Subject classification batch failed, demoting to uncertain",
			"batch_size", len(batch), "error", err)
		return uncertainVerdicts(batch)
	}

	var parsed struct {
		Rows []struct {
			ID         string  `json:"id"`
			LabLikely  bool    `json:"is_lab_likely"`
			Confidence float64 `json:"confidence"`
			Reason     string  `json:"reason"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		slog.Warn("Subject classification output malformed", "error", err)
		return uncertainVerdicts(batch)
	}

	byID := map[string]SubjectVerdict{}
	for _, r := range parsed.Rows {
		byID[r.ID] = SubjectVerdict{
			MessageID: r.ID, LabLikely: r.LabLikely,
			Confidence: r.Confidence, Reason: r.Reason,
		}
	}
	out := make([]SubjectVerdict, 0, len(batch))
	for _, m := range batch {
		if v, ok := byID[m.ID]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, SubjectVerdict{MessageID: m.ID, LabLikely: true, Confidence: 0.5, Reason: "not classified"})
	}
	return out
}

func uncertainVerdicts(batch []MessageMeta) []SubjectVerdict {
	out := make([]SubjectVerdict, 0, len(batch))
	for _, m := range batch {
		out = append(out, SubjectVerdict{
			MessageID: m.ID, LabLikely: true, Confidence: 0.5,
			Reason: "classifier unavailable",
		})
	}
	return out
}

// candidate is one fetched message ready for body classification.
type candidate struct {
	meta        MessageMeta
	body        string
	attachments []Attachment
	issues      []string
}

// ClassifyBodies fetches each candidate message in full and produces the
// final verdicts. Deterministic rules handle body-less messages; the rest
// go to the model in batches.
func (c *Classifier) ClassifyBodies(ctx context.Context, svc *gmailapi.Service, metas []MessageMeta) []BodyVerdict {
	candidates := make([]candidate, len(metas))
	var wg sync.WaitGroup
	for i, m := range metas {
		if err := c.limiter.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(idx int, meta MessageMeta) {
			defer wg.Done()
			defer c.limiter.Release(1)
			candidates[idx] = c.fetchCandidate(ctx, svc, meta)
		}(i, m)
	}
	wg.Wait()

	var verdicts []BodyVerdict
	var llmInput []candidate
	for _, cand := range candidates {
		if cand.meta.ID == "" {
			continue
		}
		if cand.body == "" {
			verdicts = append(verdicts, classifyBodyless(cand))
			continue
		}
		llmInput = append(llmInput, cand)
	}

	verdicts = append(verdicts, c.classifyWithModel(ctx, llmInput)...)
	return verdicts
}

func (c *Classifier) fetchCandidate(ctx context.Context, svc *gmailapi.Service, meta MessageMeta) candidate {
	var msg *gmailapi.Message
	err := retryRateLimited(ctx, c.baseDelay, c.maxRetries, func() error {
		var err error
		msg, err = svc.Users.Messages.Get("me", meta.ID).Format("full").Context(ctx).Do()
		return err
	})
	if err != nil {
		slog.Warn("Full message fetch failed", "message_id", meta.ID, "error", err)
		return candidate{meta: meta}
	}

	cand := candidate{meta: meta}
	if msg.Payload != nil {
		cand.body = extractBody(msg.Payload, c.maxBodyChars)
		atts, issues := collectAttachments(msg.Payload)
		cand.attachments = atts
		cand.issues = issues
	}
	return cand
}

// classifyBodyless applies the deterministic rule: no body + OCR-able
// attachment accepts at fixed confidence, otherwise reject.
func classifyBodyless(cand candidate) BodyVerdict {
	v := BodyVerdict{MessageID: cand.meta.ID, AttachmentIssues: cand.issues}
	for _, att := range cand.attachments {
		if isOCRAble(att) {
			v.Attachments = append(v.Attachments, att)
		} else {
			v.RejectedAttachments = append(v.RejectedAttachments, att)
		}
	}
	if len(v.Attachments) > 0 {
		v.Accepted = true
		v.Confidence = noBodyOCRConfidence
		v.Reason = "no body, OCR-able attachment present"
	} else {
		v.Reason = "no body and no readable attachment"
	}
	return v
}

var bodySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"rows": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":            {Type: genai.TypeString},
					"is_lab_report": {Type: genai.TypeBoolean},
					"confidence":    {Type: genai.TypeNumber},
					"reason":        {Type: genai.TypeString},
					"attachments": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"filename":             {Type: genai.TypeString},
								"is_likely_lab_report": {Type: genai.TypeBoolean},
							},
							Required: []string{"filename", "is_likely_lab_report"},
						},
					},
				},
				Required: []string{"id", "is_lab_report", "confidence"},
			},
		},
	},
	Required: []string{"rows"},
}

func (c *Classifier) classifyWithModel(ctx context.Context, cands []candidate) []BodyVerdict {
	batches := chunk(cands, classifyBatchSize)
	verdicts := make([][]BodyVerdict, len(batches))

	sem := semaphore.NewWeighted(classifyConcurrency)
	var wg sync.WaitGroup
	for i, batch := range batches {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(idx int, batch []candidate) {
			defer wg.Done()
			defer sem.Release(1)
			verdicts[idx] = c.classifyBodyBatch(ctx, batch)
		}(i, batch)
	}
	wg.Wait()

	var out []BodyVerdict
	for _, vs := range verdicts {
		out = append(out, vs...)
	}
	return out
}

func (c *Classifier) classifyBodyBatch(ctx context.Context, batch []candidate) []BodyVerdict {
	var b strings.Builder
	b.WriteString("For each email decide whether it carries a laboratory test " +
		"report, and for each attachment whether that file is likely the report " +
		"itself.\n\n")
	for _, cand := range batch {
		fmt.Fprintf(&b, "--- id=%s subject=%q\nbody: %s\nattachments:\n",
			cand.meta.ID, cand.meta.Subject, cand.body)
		for _, att := range cand.attachments {
			fmt.Fprintf(&b, "  - %s (%s, %d bytes)\n", att.Filename, att.MimeType, att.Size)
		}
	}

	raw, err := c.llm.GenerateStructured(ctx, llm.StructuredRequest{
		Model:  c.model,
		Prompt: b.String(),
		Schema: bodySchema,
	})
	if err != nil {
		slog.Warn("Body classification batch failed", "batch_size", len(batch), "error", err)
		return uncertainBodyVerdicts(batch)
	}

	var parsed struct {
		Rows []struct {
			ID          string  `json:"id"`
			LabReport   bool    `json:"is_lab_report"`
			Confidence  float64 `json:"confidence"`
			Reason      string  `json:"reason"`
			Attachments []struct {
				Filename  string `json:"filename"`
				LabReport bool   `json:"is_likely_lab_report"`
			} `json:"attachments"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		slog.Warn("Body classification output malformed", "error", err)
		parsed.Rows = nil
	}

	type rowVerdict struct {
		accepted   bool
		confidence float64
		reason     string
		attAccept  map[string]bool
	}
	byID := map[string]rowVerdict{}
	for _, r := range parsed.Rows {
		rv := rowVerdict{
			accepted: r.LabReport, confidence: r.Confidence, reason: r.Reason,
			attAccept: map[string]bool{},
		}
		for _, a := range r.Attachments {
			rv.attAccept[a.Filename] = a.LabReport
		}
		byID[r.ID] = rv
	}

	out := make([]BodyVerdict, 0, len(batch))
	for _, cand := range batch {
		rv, ok := byID[cand.meta.ID]
		if !ok {
			out = append(out, uncertainBodyVerdict(cand, "not classified"))
			continue
		}
		v := BodyVerdict{
			MessageID: cand.meta.ID, Accepted: rv.accepted,
			Confidence: rv.confidence, Reason: rv.reason,
			AttachmentIssues: cand.issues,
		}
		for _, att := range cand.attachments {
			accept, decided := rv.attAccept[att.Filename]
			if !decided {
				accept = isOCRAble(att)
			}
			if v.Accepted && accept {
				v.Attachments = append(v.Attachments, att)
			} else {
				v.RejectedAttachments = append(v.RejectedAttachments, att)
			}
		}
		out = append(out, v)
	}
	return out
}

// uncertainBodyVerdicts is the body-stage counterpart of uncertainVerdicts:
// a batch the classifier could not judge stays visible to the user at low
// confidence instead of being silently dropped.
func uncertainBodyVerdicts(batch []candidate) []BodyVerdict {
	out := make([]BodyVerdict, 0, len(batch))
	for _, cand := range batch {
		out = append(out, uncertainBodyVerdict(cand, "classifier unavailable"))
	}
	return out
}

func uncertainBodyVerdict(cand candidate, reason string) BodyVerdict {
	v := BodyVerdict{
		MessageID: cand.meta.ID, Accepted: true, Confidence: 0.5,
		Reason: reason, AttachmentIssues: cand.issues,
	}
	for _, att := range cand.attachments {
		if isOCRAble(att) {
			v.Attachments = append(v.Attachments, att)
		} else {
			v.RejectedAttachments = append(v.RejectedAttachments, att)
		}
	}
	return v
}

// extractBody walks the MIME tree, preferring text/plain over stripped
// text/html, decodes the base64url payload and collapses whitespace.
func extractBody(payload *gmailapi.MessagePart, maxChars int) string {
	plain := findPartData(payload, "text/plain")
	if plain != "" {
		return truncate(collapseWhitespace(plain), maxChars)
	}
	htmlBody := findPartData(payload, "text/html")
	if htmlBody != "" {
		return truncate(collapseWhitespace(stripHTML(htmlBody)), maxChars)
	}
	return ""
}

func findPartData(part *gmailapi.MessagePart, mimeType string) string {
	if part == nil {
		return ""
	}
	if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(part.Body.Data, "="))
		if err != nil {
			return ""
		}
		return string(decoded)
	}
	for _, child := range part.Parts {
		if s := findPartData(child, mimeType); s != "" {
			return s
		}
	}
	return ""
}

var (
	htmlTagPattern    = regexp.MustCompile(`(?s)<(script|style)[^>]*>.*?</(script|style)>`)
	htmlMarkupPattern = regexp.MustCompile(`<[^>]*>`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = htmlMarkupPattern.ReplaceAllString(s, " ")
	return html.UnescapeString(s)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func truncate(s string, maxChars int) string {
	if maxChars > 0 && len(s) > maxChars {
		return s[:maxChars]
	}
	return s
}

// collectAttachments walks the MIME tree for attachment parts, validating
// each one's metadata. Invalid attachments are skipped with an issue entry.
func collectAttachments(part *gmailapi.MessagePart) (atts []Attachment, issues []string) {
	if part == nil {
		return nil, nil
	}
	if part.Filename != "" && part.Body != nil {
		att := Attachment{
			Filename:     part.Filename,
			MimeType:     part.MimeType,
			AttachmentID: part.Body.AttachmentId,
			Size:         part.Body.Size,
		}
		if issue := validateAttachment(att); issue != "" {
			issues = append(issues, fmt.Sprintf("%s: %s", att.Filename, issue))
		} else {
			atts = append(atts, att)
		}
	}
	for _, child := range part.Parts {
		childAtts, childIssues := collectAttachments(child)
		atts = append(atts, childAtts...)
		issues = append(issues, childIssues...)
	}
	return atts, issues
}

// validateAttachment returns a non-empty reason when the metadata is
// unusable.
func validateAttachment(att Attachment) string {
	switch {
	case att.Filename == "":
		return "empty filename"
	case len(att.Filename) > 255:
		return "filename exceeds 255 characters"
	case strings.ContainsRune(att.Filename, 0):
		return "filename contains null byte"
	case att.Size < 0:
		return "negative size"
	case att.AttachmentID == "":
		return "missing attachment id"
	case att.MimeType == "":
		return "missing mime type"
	}
	return ""
}

// isOCRAble reports whether the vision extractor can read the attachment,
// by MIME type or by filename extension.
func isOCRAble(att Attachment) bool {
	if ocrMIMEs[strings.ToLower(att.MimeType)] {
		return true
	}
	return ocrExtensions[strings.ToLower(filepath.Ext(att.Filename))]
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for len(items) > size {
		out = append(out, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
