package storage

import (
	"alarmclock/internal/models"
	"alarmclock/internal/storage/interfaces"
	"sync"
)

// AsyncAlarmStore hands snapshots to a single writer goroutine so Save never
// blocks the caller. Snapshots not yet written are replaced by newer ones.
type AsyncAlarmStore struct {
	inner   interfaces.AlarmStoreInterface
	pending chan models.AlarmList
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
}

func NewAsyncAlarmStore(inner interfaces.AlarmStoreInterface) *AsyncAlarmStore {
	s := &AsyncAlarmStore{
		inner:   inner,
		pending: make(chan models.AlarmList, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *AsyncAlarmStore) run() {
	defer close(s.done)
	for list := range s.pending {
		s.inner.Save(list)
	}
}

func (s *AsyncAlarmStore) Load() models.AlarmList {
	return s.inner.Load()
}

func (s *AsyncAlarmStore) Save(list models.AlarmList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for {
		select {
		case s.pending <- list:
			return
		default:
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

// Close waits for the last queued snapshot to be written.
func (s *AsyncAlarmStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.pending)
	s.mu.Unlock()

	<-s.done
	return s.inner.Close()
}
