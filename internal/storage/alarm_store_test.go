package storage

import (
	"alarmclock/internal/models"
	"alarmclock/internal/structures"
	"alarmclock/internal/testutil"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(kv *testutil.MockKeyValue) (*AlarmStore, *testutil.MockLogger, *testutil.MockMetrics) {
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	s := NewAlarmStore(kv, "alarms", logger, metrics)
	s.loc = time.UTC
	return s, logger, metrics
}

func sampleList() models.AlarmList {
	until := time.Date(2026, 10, 19, 7, 35, 0, 0, time.UTC)
	return models.AlarmList{
		{ID: "a", Time: "07:30", IsActive: true, Tone: "Default"},
		{ID: "b", Time: "07:35", IsActive: true, Tone: "Chime", SnoozedUntil: &until},
		{ID: "c", Time: "22:00", IsActive: false, Tone: "Default"},
	}
}

func TestAlarmStore_SaveThenLoadRoundTrip(t *testing.T) {
	s, _, _ := newTestStore(testutil.NewMockKeyValue())

	s.Save(sampleList())
	loaded := s.Load()

	require.Len(t, loaded, 3)
	assert.Equal(t, "a", loaded[0].ID)
	assert.Equal(t, "07:30", loaded[0].Time)
	assert.True(t, loaded[0].IsActive)
	assert.Equal(t, "Chime", loaded[1].Tone)
	require.NotNil(t, loaded[1].SnoozedUntil)
	assert.True(t, loaded[1].SnoozedUntil.Equal(*sampleList()[1].SnoozedUntil))
	assert.False(t, loaded[2].IsActive)
}

func TestAlarmStore_RoundTripWithoutIDs(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	s, _, _ := newTestStore(kv)
	in := models.AlarmList{
		{Time: "07:30", IsActive: true, Tone: "Default"},
		{Time: "22:00", IsActive: false, Tone: "Chime"},
	}

	s.Save(in)
	first := s.Load()
	second := s.Load()

	assert.Equal(t, in, first)
	assert.Equal(t, first, second)
	assert.JSONEq(t, `[{"time":"07:30","isActive":true,"tone":"Default"},{"time":"22:00","isActive":false,"tone":"Chime"}]`, string(kv.Data["alarms"]))
}

func TestAlarmStore_RoundTripOnBolt(t *testing.T) {
	bolt, err := NewBoltBackend(filepath.Join(t.TempDir(), "alarms.db"))
	require.NoError(t, err)
	s := NewAlarmStore(bolt, "alarms", &testutil.MockLogger{}, &testutil.MockMetrics{})
	defer s.Close()

	s.Save(sampleList())
	loaded := s.Load()
	assert.Len(t, loaded, 3)
	assert.Equal(t, "22:00", loaded[2].Time)
}

func TestAlarmStore_WritesCompatibleSchema(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	s, _, _ := newTestStore(kv)

	s.Save(models.AlarmList{{Time: "07:30", IsActive: true, Tone: "Default"}})
	assert.JSONEq(t, `[{"time":"07:30","isActive":true,"tone":"Default"}]`, string(kv.Data["alarms"]))
}

func TestAlarmStore_SaveNilWritesEmptyArray(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	s, _, _ := newTestStore(kv)

	s.Save(nil)
	assert.Equal(t, "[]", string(kv.Data["alarms"]))
}

func TestAlarmStore_LoadMissingKeyIsEmpty(t *testing.T) {
	s, logger, metrics := newTestStore(testutil.NewMockKeyValue())

	loaded := s.Load()
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
	assert.Equal(t, 0, logger.Count("error", ""))
	assert.Equal(t, 0, metrics.PersistenceErrorCount("load"))
}

func TestAlarmStore_LoadLegacyRecords(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	kv.Data["alarms"] = []byte(`[
		{"time":"07:30","isActive":true,"tone":"Default"},
		{"time":"2026-10-19T07:35:00.000Z","isActive":true,"tone":"Default"}
	]`)
	s, _, _ := newTestStore(kv)

	loaded := s.Load()
	require.Len(t, loaded, 2)
	assert.Empty(t, loaded[0].ID)
	assert.Nil(t, loaded[0].SnoozedUntil)
	assert.Equal(t, "07:35", loaded[1].Time)
	require.NotNil(t, loaded[1].SnoozedUntil)
}

func TestAlarmStore_LoadSkipsUnparsableRecords(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	kv.Data["alarms"] = []byte(`[{"time":"later","isActive":true,"tone":"x"},{"time":"06:00","isActive":false,"tone":"x"}]`)
	s, logger, _ := newTestStore(kv)

	loaded := s.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, "06:00", loaded[0].Time)
	assert.Equal(t, 1, logger.Count("warn", "Skipping stored alarm"))
}

func TestAlarmStore_LoadMalformedIsEmptyAndLogged(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	kv.Data["alarms"] = []byte(`{not json`)
	s, logger, metrics := newTestStore(kv)

	loaded := s.Load()
	assert.Empty(t, loaded)
	assert.Equal(t, 1, logger.Count("error", "Error loading alarms"))
	assert.Equal(t, 1, metrics.PersistenceErrorCount("load"))
}

func TestAlarmStore_LoadBackendErrorIsEmptyAndLogged(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	kv.GetErr = errors.New("disk on fire")
	s, logger, _ := newTestStore(kv)

	assert.Empty(t, s.Load())
	assert.Equal(t, 1, logger.Count("error", "Error loading alarms"))
}

func TestAlarmStore_SaveErrorIsLoggedOnly(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	kv.SetErr = errors.New("read-only")
	s, logger, metrics := newTestStore(kv)

	s.Save(sampleList())
	assert.Equal(t, 1, logger.Count("error", "Error saving alarms"))
	assert.Equal(t, 1, metrics.PersistenceErrorCount("save"))
}

func TestAsyncAlarmStore_CloseFlushesLastWrite(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	inner, _, _ := newTestStore(kv)
	s := NewAsyncAlarmStore(inner)

	for i := 0; i < 50; i++ {
		list := models.AlarmList{}
		for j := 0; j <= i; j++ {
			list = append(list, models.Alarm{Time: "07:30", IsActive: true, Tone: "Default"})
		}
		s.Save(list)
	}
	require.NoError(t, s.Close())

	loaded := inner.Load()
	assert.Len(t, loaded, 50)
}

func TestAsyncAlarmStore_SaveAfterCloseIsIgnored(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	inner, _, _ := newTestStore(kv)
	s := NewAsyncAlarmStore(inner)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	s.Save(sampleList())
	_, ok := kv.Data["alarms"]
	assert.False(t, ok)
}

func TestAsyncAlarmStore_LoadDelegates(t *testing.T) {
	kv := testutil.NewMockKeyValue()
	inner, _, _ := newTestStore(kv)
	inner.Save(sampleList())

	s := NewAsyncAlarmStore(inner)
	defer s.Close()
	assert.Len(t, s.Load(), 3)
}

func TestNewAlarmStoreProvider_AsyncWrapping(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{Key: "alarms", Async: true}}
	s := NewAlarmStoreProvider(conf, NewMemoryBackend(), &testutil.MockLogger{}, &testutil.MockMetrics{})
	assert.IsType(t, &AsyncAlarmStore{}, s)
	require.NoError(t, s.Close())

	conf.Storage.Async = false
	s = NewAlarmStoreProvider(conf, NewMemoryBackend(), &testutil.MockLogger{}, &testutil.MockMetrics{})
	assert.IsType(t, &AlarmStore{}, s)
}
