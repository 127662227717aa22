package services

import (
	"context"
	"sync"
	"time"
)

// MailDispatcher runs email jobs off the request path and tracks them so
// shutdown can wait for the ones in flight.
type MailDispatcher struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewMailDispatcher returns a dispatcher whose jobs each get at most timeout to finish.
func NewMailDispatcher(timeout time.Duration) *MailDispatcher {
	return &MailDispatcher{timeout: timeout}
}

// Go runs job in the background. The job context keeps ctx's values but not its
// cancellation, and is bounded by the dispatcher timeout.
func (d *MailDispatcher) Go(ctx context.Context, job func(ctx context.Context)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		job(jobCtx)
	}()
}

// Wait blocks until every started job has returned or ctx is done.
func (d *MailDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
