package units

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/google/uuid"
)

// BatchItem is one unit occurrence in a report.
type BatchItem struct {
	ResultID      uuid.UUID
	RawUnit       string
	ParameterName string
}

// Batcher runs normalization over all units of a report. globalSem is nil
// when UNIT_NORMALIZATION_GLOBAL_CONCURRENCY is zero.
type Batcher struct {
	normalizer *Normalizer
	perReport  int64
	globalSem  *semaphore.Weighted
}

// NewBatcher wires batch normalization with per-report and optional global
// concurrency caps.
func NewBatcher(n *Normalizer) *Batcher {
	b := &Batcher{
		normalizer: n,
		perReport:  int64(n.cfg.MaxConcurrency),
	}
	if b.perReport <= 0 {
		b.perReport = 1
	}
	if g := n.cfg.GlobalConcurrency; g > 0 {
		b.globalSem = semaphore.NewWeighted(int64(g))
	}
	return b
}

// NormalizeBatch resolves every unit of a report. Raw strings are
// deduplicated so one LLM call covers all rows sharing a unit. A failure on
// one unit isolates to that unit; its rows keep the raw value.
func (b *Batcher) NormalizeBatch(ctx context.Context, items []BatchItem) map[uuid.UUID]Outcome {
	// Group rows by raw unit; the first occurrence supplies the prompt
	// context and the representative result id.
	groups := map[string][]BatchItem{}
	var order []string
	for _, it := range items {
		if _, ok := groups[it.RawUnit]; !ok {
			order = append(order, it.RawUnit)
		}
		groups[it.RawUnit] = append(groups[it.RawUnit], it)
	}

	sem := semaphore.NewWeighted(b.perReport)
	var mu sync.Mutex
	var wg sync.WaitGroup
	outcomes := make(map[uuid.UUID]Outcome, len(items))

	for _, raw := range order {
		rows := groups[raw]
		if err := sem.Acquire(ctx, 1); err != nil {
			b.storeRaw(&mu, outcomes, rows)
			continue
		}
		if b.globalSem != nil {
			if err := b.globalSem.Acquire(ctx, 1); err != nil {
				sem.Release(1)
				b.storeRaw(&mu, outcomes, rows)
				continue
			}
		}

		wg.Add(1)
		go func(raw string, rows []BatchItem) {
			defer wg.Done()
			defer sem.Release(1)
			if b.globalSem != nil {
				defer b.globalSem.Release(1)
			}

			rep := rows[0]
			outcome, err := b.normalizer.Normalize(ctx, raw, rep.ResultID, rep.ParameterName)
			if err != nil {
				slog.Warn("Unit normalization failed, storing raw",
					"unit", raw, "error", err)
				outcome = rawOutcome(raw)
			}

			mu.Lock()
			for _, row := range rows {
				outcomes[row.ResultID] = outcome
			}
			mu.Unlock()
		}(raw, rows)
	}

	wg.Wait()
	return outcomes
}

func (b *Batcher) storeRaw(mu *sync.Mutex, outcomes map[uuid.UUID]Outcome, rows []BatchItem) {
	mu.Lock()
	defer mu.Unlock()
	for _, row := range rows {
		outcomes[row.ResultID] = rawOutcome(row.RawUnit)
	}
}
