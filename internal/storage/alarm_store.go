package storage

import (
	"alarmclock/internal/models"
	"alarmclock/internal/providers"
	"alarmclock/internal/storage/interfaces"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

var (
	ErrPersistenceRead  = errors.New("persistence read error")
	ErrPersistenceWrite = errors.New("persistence write error")
)

// AlarmStore keeps the whole alarm list as one JSON array under a single key.
// Failures are logged and never returned: the in-memory list stays
// authoritative.
type AlarmStore struct {
	backend interfaces.KeyValueInterface
	key     string
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	loc     *time.Location
}

func NewAlarmStore(backend interfaces.KeyValueInterface, key string, logger providers.Logger, metrics providers.MetricsProviderInterface) *AlarmStore {
	return &AlarmStore{
		backend: backend,
		key:     key,
		logger:  logger,
		metrics: metrics,
		loc:     time.Local,
	}
}

func (s *AlarmStore) readError(err error) models.AlarmList {
	s.metrics.IncPersistenceErrors("load")
	s.logger.Errorf(providers.TypeStore, "Error loading alarms: %s", fmt.Errorf("%w: %w", ErrPersistenceRead, err))
	return models.AlarmList{}
}

func (s *AlarmStore) Load() models.AlarmList {
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("load", time.Since(start)) }()

	data, err := s.backend.Get(s.key)
	if err != nil {
		return s.readError(err)
	}
	if len(data) == 0 {
		s.logger.Infof(providers.TypeStore, "No saved alarms under key %q", s.key)
		return models.AlarmList{}
	}

	var stored models.AlarmList
	if err := json.Unmarshal(data, &stored); err != nil {
		return s.readError(err)
	}

	list := make(models.AlarmList, 0, len(stored))
	for _, a := range stored {
		if err := a.Normalize(s.loc); err != nil {
			s.logger.Warnf(providers.TypeStore, "Skipping stored alarm: %s", err)
			continue
		}
		list = append(list, a)
	}

	s.logger.Infof(providers.TypeStore, "Loaded %d alarms", len(list))
	return list
}

func (s *AlarmStore) Save(list models.AlarmList) {
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("save", time.Since(start)) }()

	if list == nil {
		list = models.AlarmList{}
	}
	data, err := json.Marshal(list)
	if err == nil {
		err = s.backend.Set(s.key, data)
	}
	if err != nil {
		s.metrics.IncPersistenceErrors("save")
		s.logger.Errorf(providers.TypeStore, "Error saving alarms: %s", fmt.Errorf("%w: %w", ErrPersistenceWrite, err))
		return
	}
	s.logger.Debugf(providers.TypeStore, "Saved %d alarms", len(list))
}

func (s *AlarmStore) Close() error {
	return s.backend.Close()
}
