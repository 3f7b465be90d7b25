package gmail

import (
	"context"
	"crypto/sha256"
	stdsql "database/sql"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/mail"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/labdex/labdex/pkg/report"
)

// Per-attachment terminal states.
const (
	ItemCompleted = "completed"
	ItemUpdated   = "updated"
	ItemDuplicate = "duplicate"
	ItemFailed    = "failed"
)

// Batch terminal states.
const (
	BatchCompleted      = "completed"
	BatchPartialFailure = "partial_failure"
)

// downloadMaxRetries bounds per-attachment download retries on rate limits.
const downloadMaxRetries = 3

// AttachmentRef identifies one attachment the user selected for ingestion.
type AttachmentRef struct {
	MessageID    string
	AttachmentID string
	Filename     string
	MimeType     string
}

// ItemResult is the outcome for one attachment.
type ItemResult struct {
	Ref      AttachmentRef
	Status   string
	ReportID string
	Error    string
}

// BatchResult aggregates one ingestion batch.
type BatchResult struct {
	Status string
	Items  []ItemResult
}

// Provenance links an ingested report back to its email of origin.
type Provenance struct {
	ReportID     string
	UserID       string
	MessageID    string
	AttachmentID string
	SenderEmail  string
	SenderName   string
	Subject      string
	EmailDate    *time.Time
	SHA256       string
}

// ProvenanceStore answers dedup questions and records provenance rows.
// The Seen lookups return the report the earlier ingestion produced, so
// duplicate items can point the caller at the existing report.
type ProvenanceStore interface {
	SeenAttachment(ctx context.Context, messageID, attachmentID string) (reportID string, seen bool, err error)
	SeenChecksum(ctx context.Context, userID, checksum string) (reportID string, seen bool, err error)
	Record(ctx context.Context, p Provenance) error
}

// ReportProcessor is the slice of the report pipeline ingestion needs.
type ReportProcessor interface {
	Process(ctx context.Context, userID, patientID, filename, mimeType string, payload []byte) (*report.Outcome, error)
}

// mailbox is the slice of the Gmail API the ingestor touches, split out so
// the per-attachment pipeline is testable without a live service.
type mailbox interface {
	Download(ctx context.Context, ref AttachmentRef) ([]byte, error)
	EmailMeta(ctx context.Context, messageID string, prov *Provenance)
}

// Ingestor downloads selected attachments and pushes them through the
// report pipeline, with two dedup layers in front.
type Ingestor struct {
	connector *Connector
	store     ProvenanceStore
	processor ReportProcessor
	limiter   *semaphore.Weighted
	baseDelay time.Duration
}

// NewIngestor wires an ingestor sharing the Gmail limiter.
func NewIngestor(connector *Connector, store ProvenanceStore, processor ReportProcessor, limiter *semaphore.Weighted, baseDelay time.Duration) *Ingestor {
	return &Ingestor{
		connector: connector,
		store:     store,
		processor: processor,
		limiter:   limiter,
		baseDelay: baseDelay,
	}
}

// IngestBatch processes the selected attachments for one patient.
// Attachments run concurrently under the shared limiter; each item reaches
// exactly one terminal state. onProgress, when non-nil, is called after
// every item.
func (g *Ingestor) IngestBatch(ctx context.Context, userID, patientID string, refs []AttachmentRef, onProgress func(done, total int)) (*BatchResult, error) {
	svc, err := g.connector.Service(ctx, userID)
	if err != nil {
		return nil, err
	}
	return g.run(ctx, &apiMailbox{svc: svc, baseDelay: g.baseDelay}, userID, patientID, refs, onProgress)
}

func (g *Ingestor) run(ctx context.Context, mbox mailbox, userID, patientID string, refs []AttachmentRef, onProgress func(done, total int)) (*BatchResult, error) {
	res := &BatchResult{Items: make([]ItemResult, len(refs))}
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for i, ref := range refs {
		if err := g.limiter.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(idx int, ref AttachmentRef) {
			defer wg.Done()
			defer g.limiter.Release(1)
			res.Items[idx] = g.ingestOne(ctx, mbox, userID, patientID, ref)

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if onProgress != nil {
				onProgress(n, len(refs))
			}
		}(i, ref)
	}
	wg.Wait()

	res.Status = BatchCompleted
	for _, item := range res.Items {
		if item.Status == ItemFailed {
			res.Status = BatchPartialFailure
			break
		}
	}

	slog.Info("Gmail ingestion batch finished",
		"total", len(refs), "status", res.Status)
	return res, nil
}

func (g *Ingestor) ingestOne(ctx context.Context, mbox mailbox, userID, patientID string, ref AttachmentRef) ItemResult {
	item := ItemResult{Ref: ref}

	reportID, seen, err := g.store.SeenAttachment(ctx, ref.MessageID, ref.AttachmentID)
	if err != nil {
		return failItem(item, fmt.Errorf("attachment dedup: %w", err))
	}
	if seen {
		item.Status = ItemDuplicate
		item.ReportID = reportID
		return item
	}

	payload, err := mbox.Download(ctx, ref)
	if err != nil {
		return failItem(item, fmt.Errorf("download: %w", err))
	}

	sum := sha256.Sum256(payload)
	checksum := hex.EncodeToString(sum[:])
	reportID, seen, err = g.store.SeenChecksum(ctx, userID, checksum)
	if err != nil {
		return failItem(item, fmt.Errorf("checksum dedup: %w", err))
	}
	if seen {
		item.Status = ItemDuplicate
		item.ReportID = reportID
		return item
	}

	mimeType := normalizeMIME(ref.MimeType, ref.Filename)
	outcome, err := g.processor.Process(ctx, userID, patientID, ref.Filename, mimeType, payload)
	if err != nil {
		return failItem(item, fmt.Errorf("process report: %w", err))
	}
	item.ReportID = outcome.ReportID
	if outcome.Created {
		item.Status = ItemCompleted
	} else {
		item.Status = ItemUpdated
	}

	prov := Provenance{
		ReportID:     outcome.ReportID,
		UserID:       userID,
		MessageID:    ref.MessageID,
		AttachmentID: ref.AttachmentID,
		SHA256:       checksum,
	}
	mbox.EmailMeta(ctx, ref.MessageID, &prov)
	if err := g.store.Record(ctx, prov); err != nil {
		// The report is already persisted; provenance is best-effort.
		slog.Warn("Provenance record failed",
			"message_id", ref.MessageID, "report_id", outcome.ReportID, "error", err)
	}
	return item
}

func failItem(item ItemResult, err error) ItemResult {
	item.Status = ItemFailed
	item.Error = err.Error()
	slog.Warn("Attachment ingestion failed",
		"message_id", item.Ref.MessageID, "filename", item.Ref.Filename, "error", err)
	return item
}

// apiMailbox is the production mailbox over the Gmail API.
type apiMailbox struct {
	svc       *gmailapi.Service
	baseDelay time.Duration
}

// Download implements mailbox, with rate-limit backoff.
func (m *apiMailbox) Download(ctx context.Context, ref AttachmentRef) ([]byte, error) {
	var body *gmailapi.MessagePartBody
	err := retryRateLimited(ctx, m.baseDelay, downloadMaxRetries, func() error {
		var err error
		body, err = m.svc.Users.Messages.Attachments.
			Get("me", ref.MessageID, ref.AttachmentID).
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(body.Data, "="))
	if err != nil {
		return nil, fmt.Errorf("decode attachment data: %w", err)
	}
	return payload, nil
}

// EmailMeta resolves From/Subject/Date for the provenance row.
// Best-effort: missing metadata never fails the item.
func (m *apiMailbox) EmailMeta(ctx context.Context, messageID string, prov *Provenance) {
	msg, err := m.svc.Users.Messages.Get("me", messageID).
		Format("metadata").
		MetadataHeaders("Subject", "From", "Date").
		Context(ctx).Do()
	if err != nil || msg.Payload == nil {
		return
	}
	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "Subject":
			prov.Subject = decodeHeader(h.Value)
		case "From":
			prov.SenderName, prov.SenderEmail = parseFrom(h.Value)
		case "Date":
			if t, err := mail.ParseDate(h.Value); err == nil {
				prov.EmailDate = &t
			}
		}
	}
}

// parseFrom splits a From header into display name and address.
func parseFrom(v string) (name, email string) {
	addr, err := mail.ParseAddress(decodeHeader(v))
	if err != nil {
		return "", strings.TrimSpace(v)
	}
	return addr.Name, addr.Address
}

// normalizeMIME resolves generic octet-stream types from the filename
// extension so the report processor's whitelist can judge them.
func normalizeMIME(mimeType, filename string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if mt != "" && mt != "application/octet-stream" {
		if mt == "image/jpg" {
			return "image/jpeg"
		}
		return mt
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	default:
		return mt
	}
}

// PGProvenance is the ProvenanceStore over the admin pool.
type PGProvenance struct {
	db *stdsql.DB
}

// NewPGProvenance creates the store.
func NewPGProvenance(db *stdsql.DB) *PGProvenance {
	return &PGProvenance{db: db}
}

// SeenAttachment implements ProvenanceStore.
func (s *PGProvenance) SeenAttachment(ctx context.Context, messageID, attachmentID string) (string, bool, error) {
	var reportID string
	err := s.db.QueryRowContext(ctx, `
		SELECT report_id FROM gmail_report_provenance
		WHERE message_id = $1 AND attachment_id = $2
		LIMIT 1`, messageID, attachmentID).Scan(&reportID)
	if err == stdsql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return reportID, true, nil
}

// SeenChecksum implements ProvenanceStore.
func (s *PGProvenance) SeenChecksum(ctx context.Context, userID, checksum string) (string, bool, error) {
	var reportID string
	err := s.db.QueryRowContext(ctx, `
		SELECT report_id FROM gmail_report_provenance
		WHERE user_id = $1 AND attachment_sha256 = $2
		ORDER BY created_at LIMIT 1`, userID, checksum).Scan(&reportID)
	if err == stdsql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return reportID, true, nil
}

// Record implements ProvenanceStore.
func (s *PGProvenance) Record(ctx context.Context, p Provenance) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gmail_report_provenance
			(id, report_id, user_id, message_id, attachment_id,
			 sender_email, sender_name, subject, email_date, attachment_sha256)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (message_id, attachment_id) DO NOTHING`,
		uuid.NewString(), p.ReportID, p.UserID, p.MessageID, p.AttachmentID,
		p.SenderEmail, p.SenderName, p.Subject, p.EmailDate, p.SHA256)
	return err
}
