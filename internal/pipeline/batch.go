package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/richeeta/r3c0nkthx/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor runs the scan pipeline over many domains with a fixed-size
// worker pool. One domain's full pipeline runs to completion on one worker
// before the worker takes the next domain.
//
// Design decision: errgroup.SetLimit instead of a hand-rolled worker pool.
// Each domain gets its own goroutine but only `concurrency` of them run
// simultaneously, which bounds the number of live subprocesses at
// concurrency x 2 (lookup + probe).
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline per domain so no state
	// leaks between scans.
	pipelineFactory func() *Pipeline

	// concurrency is the worker pool size.
	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the worker pool size. Default is 10.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     10,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch scans all domains and returns one report per input domain,
// in input order, regardless of per-domain failures. The error return is
// non-nil only when the batch was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, domains []string) ([]*model.DomainReport, error) {
	results := make([]*model.DomainReport, len(domains))
	err := bp.run(ctx, domains, func(report *model.DomainReport, index int) {
		results[index] = report
	})
	return results, err
}

// ProcessBatchWithCallback scans all domains and calls the callback for each
// completed report, from the worker goroutine that finished it. Callbacks
// that touch shared state (console, progress display) must synchronize.
// All reports are also returned in input order once the batch completes.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	domains []string,
	callback func(report *model.DomainReport, index int),
) ([]*model.DomainReport, error) {
	results := make([]*model.DomainReport, len(domains))
	err := bp.run(ctx, domains, func(report *model.DomainReport, index int) {
		results[index] = report
		callback(report, index)
	})
	return results, err
}

// run dispatches the domains over the worker pool.
// Each worker writes only its own index of the results slice (via the
// collect function), so no mutex is needed around collection; the errgroup
// Wait provides the happens-before edge for the caller.
func (bp *BatchProcessor) run(
	ctx context.Context,
	domains []string,
	collect func(report *model.DomainReport, index int),
) error {
	bp.logger.Debug("starting batch processing",
		"totalDomains", len(domains),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, domain := range domains {
		i, domain := i, domain
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewDomainReport(domain)
			p := bp.pipelineFactory()

			// Per-domain problems are recorded on the report; only
			// cancellation may abort the batch.
			if err := p.Execute(ctx, report); err != nil && ctx.Err() != nil {
				collect(report, i)
				return ctx.Err()
			}

			collect(report, i)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch processing complete",
		"totalDomains", len(domains),
		"elapsed", time.Since(startTime),
	)

	return err
}
