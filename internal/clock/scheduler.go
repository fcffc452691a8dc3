package clock

import (
	"alarmclock/internal/clock/interfaces"
	"alarmclock/internal/providers"
	"alarmclock/internal/services"
	"alarmclock/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

// Scheduler drives the alarm check from a single periodic job.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.AlarmServiceInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	now     func() time.Time
	opsMu   sync.Mutex
	stopped bool
	started atomic.Bool
	ticking atomic.Bool
	skipped atomic.Uint64
}

func (s *Scheduler) Init() {
	if !s.started.CompareAndSwap(false, true) {
		s.logger.Warnf(providers.TypeClock, "Scheduler already started")
		return
	}
	s.opsMu.Lock()
	s.stopped = false
	s.opsMu.Unlock()

	s.cron = gron.New()
	interval := s.config.Clock.TickInterval
	if interval <= 0 {
		interval = time.Second
	}

	s.cron.AddFunc(gron.Every(interval), s.Tick)
	s.cron.Start()
	s.logger.Infof(providers.TypeClock, "Alarm check every %s", interval)
}

// Tick runs one alarm check against the current wall clock. A tick that
// arrives while the previous one is still running is dropped, and so is any
// tick that lands after Stop.
func (s *Scheduler) Tick() {
	if !s.ticking.CompareAndSwap(false, true) {
		n := s.skipped.Inc()
		s.logger.Debugf(providers.TypeClock, "Tick skipped, previous check still running (%d skipped)", n)
		return
	}
	defer s.ticking.Store(false)

	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	if s.stopped {
		return
	}

	now := s.now()
	for _, alarm := range s.service.CheckAndTrigger(now) {
		s.logger.Infof(providers.TypeClock, "Alarm %s fired at %s", alarm.Time, now.Format(time.TimeOnly))
	}
	s.publish()
}

func (s *Scheduler) publish() {
	alarms := s.service.Alarms()
	s.metrics.SetAlarms(len(alarms), alarms.ActiveCount())
}

// Stop halts the periodic job. gron does not wait for a running job, so Stop
// takes opsMu to let an in-flight tick finish before returning.
func (s *Scheduler) Stop() {
	if s.started.CompareAndSwap(true, false) {
		s.cron.Stop()
	}
	s.opsMu.Lock()
	s.stopped = true
	s.opsMu.Unlock()
}

func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	alarms := s.service.Restore()
	s.logger.Infof(providers.TypeClock, "Restored %d alarms (%d active)", len(alarms), alarms.ActiveCount())
	s.publish()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeClock, "Persisting alarms...")
	s.service.Persist()
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.AlarmServiceInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		metrics: metrics,
		now:     time.Now,
	}
}
