package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Recorder receives the outcome of each delivery attempt.
type Recorder interface {
	ObserveNotification(err error)
}

// Dispatcher sends confirmations in the background so a slow or failing
// email function never delays the checkout response.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	recorder Recorder
	logger   zerolog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher wraps notifier. recorder may be nil.
func NewDispatcher(notifier Notifier, timeout time.Duration, recorder Recorder, logger zerolog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		recorder: recorder,
		logger:   logger.With().Str("component", "notify-dispatcher").Logger(),
	}
}

// Dispatch starts delivery of c and returns immediately. The delivery keeps
// ctx values but not its cancellation.
func (d *Dispatcher) Dispatch(ctx context.Context, c Confirmation) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		err := d.notifier.SendOrderConfirmation(sendCtx, c)
		if d.recorder != nil {
			d.recorder.ObserveNotification(err)
		}
		if err != nil {
			d.logger.Error().
				Err(err).
				Str("order_number", c.OrderNumber).
				Msg("failed to send order confirmation")
		}
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
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
