package handlers

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

func NewFireAndForgetEffectHandler[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	return FireAndForgetHandler[T]{
		fireAndForgetEffectScope: newFireAndForgetEffectScope(ctx, bufferSize, handleFn, teardown),
	}
}

type FireAndForgetHandler[T any] struct {
	*fireAndForgetEffectScope[T]
}

// FireAndForgetEffect queues payload for the handler goroutine. It returns
// false when the payload was dropped because ctx is done or the handler is
// closed. A payload it returns true for is handled before Close returns.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) bool {
	ffh.closeMu.RLock()
	defer ffh.closeMu.RUnlock()
	if ffh.closed {
		return false
	}

	select {
	case <-ctx.Done():
		return false
	default:
	}

	select {
	case <-ctx.Done():
		return false
	case ffh.effectCh <- payload:
		return true
	}
}

// fireAndForgetEffectScope owns one goroutine that handles payloads in
// arrival order. Close stops accepting payloads, drains what is already
// buffered, then runs the teardown. Close is idempotent.
//
// Senders hold closeMu for reading, so stopCh is only closed once no send is
// in flight.
type fireAndForgetEffectScope[T any] struct {
	EffectId  string
	effectCh  chan T
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeMu   sync.RWMutex
	closed    bool
	closeOnce sync.Once
	teardown  func()
}

func (ffs *fireAndForgetEffectScope[T]) Close() {
	ffs.closeOnce.Do(func() {
		ffs.closeMu.Lock()
		ffs.closed = true
		close(ffs.stopCh)
		ffs.closeMu.Unlock()

		<-ffs.doneCh
		ffs.teardown()
	})
}

func newFireAndForgetEffectScope[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) *fireAndForgetEffectScope[T] {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	ffs := &fireAndForgetEffectScope[T]{
		EffectId: uuid.New().String(),
		effectCh: make(chan T, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		teardown: teardown,
	}

	// handler context is detached from cancellation so that buffered
	// payloads are still handled after the caller's context ends
	handlerCtx := context.WithoutCancel(ctx)

	go func() {
		defer close(ffs.doneCh)
		for {
			select {
			case payload := <-ffs.effectCh:
				handleFn(handlerCtx, payload)
			case <-ffs.stopCh:
				for {
					select {
					case payload := <-ffs.effectCh:
						handleFn(handlerCtx, payload)
					default:
						return
					}
				}
			}
		}
	}()

	return ffs
}
