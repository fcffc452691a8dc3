package services

import (
	"alarmclock/internal/device"
	"alarmclock/internal/models"
	"alarmclock/internal/providers"
	"alarmclock/internal/storage/interfaces"
	"alarmclock/internal/structures"
	"fmt"
	"sync"
	"time"
)

const DefaultSnoozeMinutes = 5

type AlarmServiceInterface interface {
	Restore() models.AlarmList
	Persist()
	Alarms() models.AlarmList
	Revision() uint64
	SnoozeMinutes() int
	AddAlarm(clock, tone string) models.AlarmList
	DeleteAlarm(index int) models.AlarmList
	ToggleAlarm(index int) models.AlarmList
	SnoozeAlarm(alarm models.Alarm) models.AlarmList
	DismissAlarm(alarm models.Alarm) models.AlarmList
	CheckAndTrigger(now time.Time) []models.Alarm
}

// AlarmService owns the alarm list. Every method returns a copy of the list
// as it is after the call; every change is handed to the store.
type AlarmService struct {
	mu          sync.Mutex
	alarms      models.AlarmList
	revision    uint64
	store       interfaces.AlarmStoreInterface
	trigger     device.TriggerInterface
	logger      providers.Logger
	snooze      time.Duration
	defaultTone string
	now         func() time.Time
}

func NewAlarmService(conf *structures.Config, store interfaces.AlarmStoreInterface, trigger device.TriggerInterface, logger providers.Logger) AlarmServiceInterface {
	snoozeMinutes := conf.Clock.SnoozeMinutes
	if snoozeMinutes <= 0 {
		snoozeMinutes = DefaultSnoozeMinutes
	}
	tone := conf.Clock.DefaultTone
	if tone == "" {
		tone = models.DefaultTone
	}
	return &AlarmService{
		alarms:      models.AlarmList{},
		store:       store,
		trigger:     trigger,
		logger:      logger,
		snooze:      time.Duration(snoozeMinutes) * time.Minute,
		defaultTone: tone,
		now:         time.Now,
	}
}

// commit must be called with mu held.
func (s *AlarmService) commit() models.AlarmList {
	s.revision++
	s.store.Save(s.alarms.Clone())
	return s.alarms.Clone()
}

func (s *AlarmService) Restore() models.AlarmList {
	loaded := s.store.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.alarms = loaded
	s.revision++
	return s.alarms.Clone()
}

func (s *AlarmService) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Save(s.alarms.Clone())
}

func (s *AlarmService) Alarms() models.AlarmList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alarms.Clone()
}

func (s *AlarmService) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *AlarmService) SnoozeMinutes() int {
	return int(s.snooze / time.Minute)
}

func (s *AlarmService) AddAlarm(clock, tone string) models.AlarmList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clock == "" {
		s.logger.Debugf(providers.TypeApp, "Add ignored: %s", ErrMissingTime)
		return s.alarms.Clone()
	}
	normalized, err := models.NormalizeClock(clock)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Add ignored: %s", err)
		return s.alarms.Clone()
	}
	if tone == "" {
		tone = s.defaultTone
	}

	alarm := models.NewAlarm(normalized, tone)
	s.alarms = append(s.alarms, alarm)
	s.logger.Infof(providers.TypeApp, "Alarm %s added at %s", alarm.ID, alarm.Time)
	return s.commit()
}

func (s *AlarmService) checkIndex(op string, index int) bool {
	if index < 0 || index >= len(s.alarms) {
		s.logger.Warnf(providers.TypeApp, "%s ignored: %s", op, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, len(s.alarms)))
		return false
	}
	return true
}

func (s *AlarmService) DeleteAlarm(index int) models.AlarmList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.checkIndex("Delete", index) {
		return s.alarms.Clone()
	}
	removed := s.alarms[index]
	s.alarms = append(s.alarms[:index], s.alarms[index+1:]...)
	s.logger.Infof(providers.TypeApp, "Alarm %s at %s deleted", removed.ID, removed.Time)
	return s.commit()
}

func (s *AlarmService) ToggleAlarm(index int) models.AlarmList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.checkIndex("Toggle", index) {
		return s.alarms.Clone()
	}
	s.alarms[index].IsActive = !s.alarms[index].IsActive
	s.logger.Infof(providers.TypeApp, "Alarm %s at %s active=%t", s.alarms[index].ID, s.alarms[index].Time, s.alarms[index].IsActive)
	return s.commit()
}

// SnoozeAlarm moves the first alarm set to alarm.Time to now plus the snooze
// interval and re-arms it.
func (s *AlarmService) SnoozeAlarm(alarm models.Alarm) models.AlarmList {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.alarms.IndexOfTime(alarm.Time)
	if idx == -1 {
		s.logger.Debugf(providers.TypeApp, "Snooze ignored: no alarm at %s", alarm.Time)
		return s.alarms.Clone()
	}

	until := s.now().Add(s.snooze)
	s.alarms[idx].Time = models.FormatClock(until)
	s.alarms[idx].SnoozedUntil = &until
	s.alarms[idx].IsActive = true
	s.logger.Infof(providers.TypeApp, "Alarm %s snoozed from %s to %s", s.alarms[idx].ID, alarm.Time, s.alarms[idx].Time)
	return s.commit()
}

// DismissAlarm removes every alarm set to alarm.Time.
func (s *AlarmService) DismissAlarm(alarm models.Alarm) models.AlarmList {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make(models.AlarmList, 0, len(s.alarms))
	for _, a := range s.alarms {
		if a.Time != alarm.Time {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.alarms) {
		return s.alarms.Clone()
	}
	s.logger.Infof(providers.TypeApp, "Dismissed %d alarm(s) at %s", len(s.alarms)-len(kept), alarm.Time)
	s.alarms = kept
	return s.commit()
}

// CheckAndTrigger fires every active alarm due in the minute of now and
// deactivates it so it does not fire again on the next tick.
func (s *AlarmService) CheckAndTrigger(now time.Time) []models.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fired []models.Alarm
	for i := range s.alarms {
		if !s.alarms[i].Matches(now) {
			continue
		}
		s.trigger.Fire(s.alarms[i])
		s.alarms[i].IsActive = false
		s.alarms[i].SnoozedUntil = nil
		fired = append(fired, s.alarms[i])
	}
	if len(fired) > 0 {
		s.commit()
	}
	return fired
}
