package storage

import (
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketAlarms = "alarmclock"

type BoltBackend struct {
	db     *bbolt.DB
	bucket []byte
}

func NewBoltBackend(path string) (*BoltBackend, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketAlarms))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &BoltBackend{db: db, bucket: []byte(boltBucketAlarms)}, nil
}

func (b *BoltBackend) Get(key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(b.bucket).Get([]byte(key))
		if v != nil {
			// bbolt values are only valid inside the transaction
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (b *BoltBackend) Set(key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(key), value)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
