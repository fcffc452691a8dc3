package testutil

import (
	"alarmclock/internal/models"
	"alarmclock/internal/providers"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level whose format contains substr.
func (m *MockLogger) Count(level, substr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Format, substr) {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                sync.Mutex
	Triggers          map[string]int
	PersistenceErrors map[string]int
	PersistenceOps    map[string]int
	AlarmsTotal       int
	AlarmsActive      int
	CacheHits         int
	CacheMisses       int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(op string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PersistenceOps == nil {
		m.PersistenceOps = make(map[string]int)
	}
	m.PersistenceOps[op]++
}
func (m *MockMetrics) IncPersistenceErrors(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PersistenceErrors == nil {
		m.PersistenceErrors = make(map[string]int)
	}
	m.PersistenceErrors[op]++
}
func (m *MockMetrics) IncTriggers(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Triggers == nil {
		m.Triggers = make(map[string]int)
	}
	m.Triggers[outcome]++
}
func (m *MockMetrics) SetAlarms(total, active int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AlarmsTotal = total
	m.AlarmsActive = active
}

func (m *MockMetrics) TriggerCount(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Triggers[outcome]
}

func (m *MockMetrics) PersistenceErrorCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PersistenceErrors[op]
}

// MockAlarmStore implements storage interfaces.AlarmStoreInterface in memory.
type MockAlarmStore struct {
	mu        sync.Mutex
	Stored    models.AlarmList
	SaveCalls int
	LoadCalls int
	Closed    bool
}

func (m *MockAlarmStore) Load() models.AlarmList {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.Stored == nil {
		return models.AlarmList{}
	}
	return m.Stored.Clone()
}

func (m *MockAlarmStore) Save(list models.AlarmList) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	m.Stored = list.Clone()
}

func (m *MockAlarmStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockAlarmStore) Saved() (models.AlarmList, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Stored.Clone(), m.SaveCalls
}

// MockTrigger implements device.TriggerInterface and records fired alarms.
type MockTrigger struct {
	mu     sync.Mutex
	Fired  []models.Alarm
	Closed bool
}

func (m *MockTrigger) Fire(alarm models.Alarm) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fired = append(m.Fired, alarm)
}

func (m *MockTrigger) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

func (m *MockTrigger) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Fired)
}

// MockKeyValue implements storage interfaces.KeyValueInterface with injectable failures.
type MockKeyValue struct {
	mu     sync.Mutex
	Data   map[string][]byte
	GetErr error
	SetErr error
}

func NewMockKeyValue() *MockKeyValue {
	return &MockKeyValue{Data: make(map[string][]byte)}
}

func (m *MockKeyValue) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Data[key], nil
}

func (m *MockKeyValue) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockKeyValue) Close() error { return nil }

// MockCache implements providers.SnapshotCacheInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[uint64][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[uint64][]byte)}
}

func (m *MockCache) Get(revision uint64) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[revision]
	return val, ok
}

func (m *MockCache) Set(revision uint64, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[revision] = body
}

// MockCompressor implements storage interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
