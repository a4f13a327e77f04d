package services

import (
	"context"
	"sync"
)

// pendingNotices runs notifier calls off the request path and lets shutdown
// wait for the ones still in flight.
type pendingNotices struct {
	wg sync.WaitGroup
}

func (p *pendingNotices) send(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn()
	}()
}

// wait blocks until every notice has been handed off or ctx is done.
func (p *pendingNotices) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
