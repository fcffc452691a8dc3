package device

import (
	"alarmclock/internal/models"
	"alarmclock/internal/providers"
	"context"
	"errors"
	"sync"
	"time"
)

var ErrPermissionDenied = errors.New("vibration permission denied")

type TriggerInterface interface {
	Fire(alarm models.Alarm)
	Close()
}

// Trigger runs the vibration side effect of a fired alarm in the background.
// The permission is resolved first: Granted vibrates, anything else is
// requested once and vibrates only if the request is granted.
type Trigger struct {
	permission PermissionInterface
	vibrator   VibratorInterface
	pattern    []time.Duration
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewTrigger(permission PermissionInterface, vibrator VibratorInterface, pattern []time.Duration, logger providers.Logger, metrics providers.MetricsProviderInterface) *Trigger {
	if len(pattern) == 0 {
		pattern = DefaultPattern
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Trigger{
		permission: permission,
		vibrator:   vibrator,
		pattern:    pattern,
		logger:     logger,
		metrics:    metrics,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Fire starts the vibration for alarm. After Close it only logs.
func (t *Trigger) Fire(alarm models.Alarm) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		t.logger.Warnf(providers.TypeDevice, "Alarm %s fired after shutdown, not vibrating", alarm.Time)
		return
	}
	t.logger.Infof(providers.TypeDevice, "Alarm %s (%s) fired, tone %q", alarm.Time, alarm.ID, alarm.Tone)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		err := t.vibrate(t.ctx)
		switch {
		case err == nil:
			t.metrics.IncTriggers("vibrated")
		case errors.Is(err, ErrPermissionDenied):
			t.metrics.IncTriggers("denied")
			t.logger.Warnf(providers.TypeDevice, "Skipping vibration for %s: %s", alarm.Time, err)
		case errors.Is(err, context.Canceled):
			t.metrics.IncTriggers("cancelled")
		default:
			t.metrics.IncTriggers("failed")
			t.logger.Errorf(providers.TypeDevice, "Vibration failed for %s: %s", alarm.Time, err)
		}
	}()
}

func (t *Trigger) vibrate(ctx context.Context) error {
	status, err := t.permission.Check(ctx)
	if err != nil {
		return err
	}
	if status != Granted {
		status, err = t.permission.Request(ctx)
		if err != nil {
			return err
		}
		if status != Granted {
			return ErrPermissionDenied
		}
	}
	return t.vibrator.Vibrate(ctx, t.pattern)
}

// Wait blocks until every started vibration has finished.
func (t *Trigger) Wait() {
	t.wg.Wait()
}

// Close cancels running vibrations and waits for them to return.
func (t *Trigger) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.cancel()
	t.wg.Wait()
}
