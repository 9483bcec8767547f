// Package navigation delivers navigation requests to the component that shows
// folders and workspaces.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// ErrBusClosed is returned for requests sent to, or pending on, a closed bus.
var ErrBusClosed = errors.New("navigation bus closed")

// Handler performs a navigation request.
type Handler interface {
	Handle(ctx context.Context, req entity.NavigationRequest) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req entity.NavigationRequest) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, req entity.NavigationRequest) error {
	return f(ctx, req)
}

type envelope struct {
	ctx   context.Context
	req   entity.NavigationRequest
	reply chan error
}

// Bus is a port.Navigator that sends each request over a channel to a single
// consumer goroutine and waits for its reply. Requests are handled one at a time in
// arrival order, so concurrent callers never race on the handler.
type Bus struct {
	handler  Handler
	requests chan envelope
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

var _ port.Navigator = (*Bus)(nil)

// NewBus creates a bus delivering to handler. buffer is the number of requests that
// may be queued before Navigate blocks.
func NewBus(handler Handler, buffer int) *Bus {
	if buffer < 0 {
		buffer = 0
	}
	return &Bus{
		handler:  handler,
		requests: make(chan envelope, buffer),
		done:     make(chan struct{}),
	}
}

// Start runs the consumer until ctx is cancelled or Close is called.
func (b *Bus) Start(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer b.stop()

		log := logging.FromContext(ctx)
		log.Debug().Msg("navigation bus started")

		for {
			select {
			case <-ctx.Done():
				log.Debug().Msg("navigation bus stopped (context done)")
				return
			case <-b.done:
				log.Debug().Msg("navigation bus stopped")
				return
			case env := <-b.requests:
				env.reply <- b.dispatch(env)
			}
		}
	}()
}

// Navigate sends req to the consumer and waits for the handler's result.
func (b *Bus) Navigate(ctx context.Context, req entity.NavigationRequest) error {
	reply := make(chan error, 1)

	select {
	case b.requests <- envelope{ctx: ctx, req: req, reply: reply}:
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrBusClosed
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		// The consumer may still have answered before stopping.
		select {
		case err := <-reply:
			return err
		default:
			return ErrBusClosed
		}
	}
}

// Close stops the consumer and waits for it to exit.
func (b *Bus) Close() {
	b.stop()
	b.wg.Wait()
}

func (b *Bus) stop() {
	b.stopOnce.Do(func() { close(b.done) })
}

func (b *Bus) dispatch(env envelope) (err error) {
	if env.ctx.Err() != nil {
		return env.ctx.Err()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("navigation handler panicked: %v", r)
		}
	}()

	return b.handler.Handle(env.ctx, env.req)
}
