package async

import (
	"context"
	"sync"
	"time"
)

// Future is the eventual result of a function running in its own goroutine.
type Future[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	val    T
	err    error
}

// Go starts fn in a new goroutine with a child of ctx. Cancelling ctx or
// calling Cancel on the future cancels the context passed to fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(f.done)
		defer cancel()
		f.val, f.err = fn(ctx)
	}()
	return f
}

// After resolves to fn() once d has elapsed. fn is not called when the
// future is cancelled first; Await then reports the context error.
func After[T any](ctx context.Context, d time.Duration, fn func() T) *Future[T] {
	return Go(ctx, func(ctx context.Context) (T, error) {
		if err := Sleep(ctx, d); err != nil {
			var zero T
			return zero, err
		}
		return fn(), nil
	})
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Await blocks until the future resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel cancels the future's context. It is safe to call more than once and
// after the future has resolved.
func (f *Future[T]) Cancel() {
	f.cancel()
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Scope groups goroutines under one cancellable context.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewScope returns a scope whose context is derived from parent.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context returns the scope context. It is cancelled by Close.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go runs fn in a new goroutine bound to the scope context.
func (s *Scope) Go(fn func(context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Closed reports whether the scope has been closed.
func (s *Scope) Closed() bool {
	return s.ctx.Err() != nil
}

// Close cancels the scope context. It does not wait for running goroutines;
// use Wait for that.
func (s *Scope) Close() {
	s.once.Do(s.cancel)
}

// Wait blocks until every goroutine started with Go has returned.
func (s *Scope) Wait() {
	s.wg.Wait()
}

// Start runs fn on a Future bound to the scope context.
func Start[T any](s *Scope, fn func(context.Context) (T, error)) *Future[T] {
	s.wg.Add(1)
	return Go(s.ctx, func(ctx context.Context) (T, error) {
		defer s.wg.Done()
		return fn(ctx)
	})
}
