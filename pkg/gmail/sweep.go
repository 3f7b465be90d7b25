package gmail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

// listPageSize is Gmail's maximum page size for message listing.
const listPageSize = 500

// metaBatchSize is how many swept messages are streamed to onBatchReady at
// a time.
const metaBatchSize = 100

// MessageMeta is one inbox message's envelope after the metadata sweep.
type MessageMeta struct {
	ID      string
	Subject string
	From    string
	Date    string
}

// Sweeper lists the inbox and fetches message envelopes concurrently. One
// Sweeper's limiter is shared by every Gmail call the system makes, so
// sweeps, classification fetches and downloads respect one global cap.
type Sweeper struct {
	limiter    *semaphore.Weighted
	maxEmails  int
	maxRetries int
	baseDelay  time.Duration
}

// NewSweeper creates a sweeper with a shared concurrency limiter.
func NewSweeper(limiter *semaphore.Weighted, maxEmails, maxRetries int, baseDelay time.Duration) *Sweeper {
	return &Sweeper{
		limiter:    limiter,
		maxEmails:  maxEmails,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// Sweep pages through the inbox up to the configured cap and resolves each
// message's Subject/From/Date headers. Results keep inbox order. When
// onBatchReady is non-nil it receives successive batches of 100 as they
// complete.
func (s *Sweeper) Sweep(ctx context.Context, svc *gmailapi.Service, onBatchReady func([]MessageMeta)) ([]MessageMeta, error) {
	ids, err := s.listMessageIDs(ctx, svc)
	if err != nil {
		return nil, err
	}

	type fetched struct {
		meta MessageMeta
		err  error
	}
	results := make([]fetched, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		if err := s.limiter.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(idx int, messageID string) {
			defer wg.Done()
			defer s.limiter.Release(1)
			meta, err := s.fetchMeta(ctx, svc, messageID)
			results[idx] = fetched{meta: meta, err: err}
		}(i, id)
	}
	wg.Wait()

	out := make([]MessageMeta, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			slog.Warn("Message metadata fetch failed", "message_id", r.meta.ID, "error", r.err)
			continue
		}
		out = append(out, r.meta)
		if onBatchReady != nil && len(out)%metaBatchSize == 0 {
			onBatchReady(out[len(out)-metaBatchSize:])
		}
	}
	if onBatchReady != nil {
		if tail := len(out) % metaBatchSize; tail > 0 {
			onBatchReady(out[len(out)-tail:])
		}
	}

	slog.Info("Inbox sweep finished", "listed", len(ids), "fetched", len(out), "failed", failed)
	return out, nil
}

func (s *Sweeper) listMessageIDs(ctx context.Context, svc *gmailapi.Service) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		pageSize := int64(listPageSize)
		if remaining := s.maxEmails - len(ids); remaining < listPageSize {
			pageSize = int64(remaining)
		}

		var resp *gmailapi.ListMessagesResponse
		err := s.withRateLimitRetry(ctx, func() error {
			call := svc.Users.Messages.List("me").
				LabelIds("INBOX").
				MaxResults(pageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var err error
			resp, err = call.Do()
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list inbox: %w", err)
		}

		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
		}
		if resp.NextPageToken == "" || len(ids) >= s.maxEmails {
			break
		}
		pageToken = resp.NextPageToken
	}

	if len(ids) > s.maxEmails {
		ids = ids[:s.maxEmails]
	}
	return ids, nil
}

func (s *Sweeper) fetchMeta(ctx context.Context, svc *gmailapi.Service, messageID string) (MessageMeta, error) {
	var msg *gmailapi.Message
	err := s.withRateLimitRetry(ctx, func() error {
		var err error
		msg, err = svc.Users.Messages.Get("me", messageID).
			Format("metadata").
			MetadataHeaders("Subject", "From", "Date").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return MessageMeta{ID: messageID}, err
	}

	meta := MessageMeta{ID: messageID}
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "Subject":
				meta.Subject = decodeHeader(h.Value)
			case "From":
				meta.From = decodeHeader(h.Value)
			case "Date":
				meta.Date = h.Value
			}
		}
	}
	return meta, nil
}

func (s *Sweeper) withRateLimitRetry(ctx context.Context, fn func() error) error {
	return retryRateLimited(ctx, s.baseDelay, s.maxRetries, fn)
}

// retryRateLimited retries fn on Gmail rate-limit responses with
// exponential backoff from base. Other errors surface immediately.
func retryRateLimited(ctx context.Context, base time.Duration, maxRetries int, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = base
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	attempt := 0
	wrapped := func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if attempt > maxRetries || !isRateLimited(err) {
			return backoff.Permanent(err)
		}
		slog.Warn("Gmail rate limited, backing off", "attempt", attempt)
		return err
	}
	return backoff.Retry(wrapped, backoff.WithContext(b, ctx))
}

// isRateLimited reports whether err is an HTTP 429 or a 403 with the
// rateLimitExceeded reason.
func isRateLimited(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == 429 {
		return true
	}
	if apiErr.Code == 403 {
		for _, e := range apiErr.Errors {
			if e.Reason == "rateLimitExceeded" || e.Reason == "userRateLimitExceeded" {
				return true
			}
		}
	}
	return false
}

var mimeDecoder = new(mime.WordDecoder)

// decodeHeader decodes RFC 2047 encoded words (=?charset?B|Q?...?=),
// returning the raw value when decoding fails.
func decodeHeader(v string) string {
	decoded, err := mimeDecoder.DecodeHeader(v)
	if err != nil {
		return v
	}
	return decoded
}
