// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned by Add and TryAdd once Stop has been called.
	ErrStopped = errors.New("batcher stopped")
	// ErrFull is returned by TryAdd when the buffer has no room left.
	ErrFull = errors.New("batcher buffer full")
)

// FlushObserver is notified after every flush attempt.
type FlushObserver func(size int, err error, started time.Time)

// Batcher buffers items and flushes them either by size or interval.
// Flush failures are logged and reported to the observer; the items of a
// failed flush are dropped.
type Batcher[T any] struct {
	name          string
	flushCallback func(context.Context, []T) error
	observe       FlushObserver
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// Option customizes a Batcher.
type Option[T any] func(*Batcher[T])

// WithObserver registers a flush observer.
func WithObserver[T any](observe FlushObserver) Option[T] {
	return func(b *Batcher[T]) {
		b.observe = observe
	}
}

// WithRate limits flushes to rps per second. Zero or negative disables the limit.
func WithRate[T any](rps int) Option[T] {
	return func(b *Batcher[T]) {
		if rps <= 0 {
			b.rl = ratelimit.NewUnlimited()
			return
		}
		b.rl = ratelimit.New(rps)
	}
}

// New constructs a Batcher.
func New[T any](
	name string,
	logger *zap.Logger,
	flushCallback func(context.Context, []T) error,
	flushSize int,
	flushInterval time.Duration,
	opts ...Option[T],
) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	b := &Batcher[T]{
		name:          name,
		logger:        logger.With(zap.String("batcher", name)),
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.NewUnlimited(),
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and stops the background loop. It is safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without waiting. It returns ErrFull while a slow
// flush keeps the buffer occupied.
func (b *Batcher[T]) TryAdd(item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case b.itemsCh <- item:
		return nil
	default:
		return ErrFull
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		started := time.Now()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		if b.observe != nil {
			b.observe(len(buf), err, started)
		}
		buf = buf[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(context.WithoutCancel(ctx))
				}
			default:
				flush(context.WithoutCancel(ctx))
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
