// Package worker drains the delivery queue with a fixed number of goroutines.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"
	"webhook-dispatcher/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options configures a Pool.
type Options struct {
	Concurrency    int
	PollInterval   time.Duration
	LockRetryDelay time.Duration
}

// Pool leases jobs from the queue, runs them through the processor and
// settles each job according to the result.
type Pool struct {
	queue     ports.JobQueue
	processor ports.CallProcessor
	opts      Options
	log       zerolog.Logger
}

// NewPool creates a worker pool.
func NewPool(queue ports.JobQueue, processor ports.CallProcessor, opts Options, log zerolog.Logger) *Pool {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Pool{
		queue:     queue,
		processor: processor,
		opts:      opts,
		log:       logger.Component(log, "worker_pool"),
	}
}

// Run blocks until ctx is cancelled. A job already leased when that happens
// is processed and settled before Run returns.
func (p *Pool) Run(ctx context.Context) error {
	p.log.Info().Int("concurrency", p.opts.Concurrency).Msg("Worker pool started")

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.opts.Concurrency; i++ {
		g.Go(func() error {
			p.loop(gctx, i)
			return nil
		})
	}
	err := g.Wait()

	p.log.Info().Msg("Worker pool stopped")
	return err
}

func (p *Pool) loop(ctx context.Context, id int) {
	log := p.log.With().Int("worker", id).Logger()
	for {
		if ctx.Err() != nil {
			return
		}

		job, err := p.queue.Dequeue(ctx)
		if err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("Dequeue failed")
		}
		if job == nil {
			if !p.sleep(ctx) {
				return
			}
			continue
		}

		p.handle(context.WithoutCancel(ctx), job, log)
	}
}

func (p *Pool) sleep(ctx context.Context) bool {
	t := time.NewTimer(p.opts.PollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// handle settles job: success acks, lock contention requeues without
// consuming an attempt, anything else counts as a failed attempt.
func (p *Pool) handle(ctx context.Context, job *ports.Job, log zerolog.Logger) {
	log = log.With().Str("call_id", job.ID).Int("attempts_made", job.AttemptsMade).Logger()

	err := p.processor.Process(ctx, *job)
	switch {
	case err == nil:
		if err := p.queue.Ack(ctx, job); err != nil {
			log.Error().Err(err).Msg("Ack failed")
		}

	case errors.Is(err, apperror.ErrLockNotAcquired):
		log.Debug().Err(err).Dur("delay", p.opts.LockRetryDelay).Msg("Webhook busy, requeueing")
		if err := p.queue.Requeue(ctx, job, p.opts.LockRetryDelay); err != nil {
			log.Error().Err(err).Msg("Requeue failed")
		}

	default:
		dead, ferr := p.queue.Fail(ctx, job, err.Error())
		if ferr != nil {
			log.Error().Err(fmt.Errorf("settle failed job: %w", ferr)).AnErr("cause", err).Msg("Fail failed")
			return
		}
		if dead {
			log.Warn().Err(err).Msg("Job exhausted its attempts")
			return
		}
		log.Info().Err(err).Msg("Delivery attempt failed, retry scheduled")
	}
}
