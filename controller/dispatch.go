package controller

import (
	"context"
	"sync"
)

// Dispatcher runs functions on the goroutine that owns the graph engine.
// Post must not block and must not run fn re-entrantly from a goroutine
// other than the owner.
type Dispatcher interface {
	Post(fn func())
}

// Inline runs posted functions immediately. Use it only when every caller
// is already on the UI goroutine, such as a single-threaded wasm host.
type Inline struct{}

// Post runs fn.
func (Inline) Post(fn func()) { fn() }

// Loop is a run loop fed by Post from any goroutine. Functions run in post
// order on the goroutine that called Run.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// NewLoop returns an idle loop. Functions posted before Run are kept.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn. It never blocks.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes posted functions until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.drain(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) drain(ctx context.Context) {
	for ctx.Err() == nil {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for i, fn := range batch {
			if ctx.Err() != nil {
				l.requeue(batch[i:])
				return
			}
			fn()
		}
	}
}

// requeue puts unrun functions back in front of anything posted since.
func (l *Loop) requeue(fns []func()) {
	l.mu.Lock()
	l.queue = append(fns[:len(fns):len(fns)], l.queue...)
	l.mu.Unlock()
}

// Do runs fn on the loop and waits for it to finish. It returns ctx.Err()
// if ctx ends first; fn may still run later in that case.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Post(func() {
		fn()
		close(done)
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
