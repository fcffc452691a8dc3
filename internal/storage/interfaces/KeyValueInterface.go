package interfaces

// KeyValueInterface is a durable byte store. Get returns nil, nil for a key
// that was never written.
type KeyValueInterface interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
