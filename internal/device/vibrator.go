package device

import (
	"alarmclock/internal/providers"
	"context"
	"io"
	"sync"
	"time"
)

// DefaultPattern alternates on and off segments, starting with on.
var DefaultPattern = []time.Duration{1000 * time.Millisecond, 1000 * time.Millisecond, 1000 * time.Millisecond}

type VibratorInterface interface {
	Vibrate(ctx context.Context, pattern []time.Duration) error
}

// BellVibrator rings the terminal bell at the start of every "on" segment
// and waits out the whole pattern.
type BellVibrator struct {
	mu  sync.Mutex
	out io.Writer
}

func NewBellVibrator(out io.Writer) *BellVibrator {
	return &BellVibrator{out: out}
}

func (b *BellVibrator) Vibrate(ctx context.Context, pattern []time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, d := range pattern {
		if i%2 == 0 {
			if _, err := io.WriteString(b.out, "\a"); err != nil {
				return err
			}
		}
		if err := sleep(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type LogVibrator struct {
	logger providers.Logger
}

func NewLogVibrator(logger providers.Logger) *LogVibrator {
	return &LogVibrator{logger: logger}
}

func (l *LogVibrator) Vibrate(_ context.Context, pattern []time.Duration) error {
	l.logger.Infof(providers.TypeDevice, "Vibrate %v", pattern)
	return nil
}

type noopVibrator struct{}

func (noopVibrator) Vibrate(_ context.Context, _ []time.Duration) error { return nil }
