package storage

import (
	"alarmclock/internal/providers"
	"alarmclock/internal/storage/interfaces"
	"alarmclock/internal/structures"
	"fmt"
)

func NewBackendProvider(conf *structures.Config, compressor interfaces.CompressorInterface) (interfaces.KeyValueInterface, error) {
	switch conf.Storage.Driver {
	case "bolt":
		backend, err := NewBoltBackend(conf.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("unable to open alarm database %s: %w", conf.Storage.Path, err)
		}
		return backend, nil
	case "file":
		return NewFileBackend(conf.Storage.Path, compressor), nil
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}

func NewAlarmStoreProvider(conf *structures.Config, backend interfaces.KeyValueInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.AlarmStoreInterface {
	store := NewAlarmStore(backend, conf.Storage.Key, logger, metrics)
	logger.Infof(providers.TypeStore, "Alarm store: driver=%s key=%s async=%t", conf.Storage.Driver, conf.Storage.Key, conf.Storage.Async)
	if conf.Storage.Async {
		return NewAsyncAlarmStore(store)
	}
	return store
}
