package store

import (
	"log/slog"
	"time"

	"github.com/inovacc/stitchr/internal/application"
	"github.com/inovacc/stitchr/internal/encoding"
	"github.com/inovacc/stitchr/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketCounter = "counter" // key: StorageKey -> CounterState JSON
)

// Bolt stores the counter record in a BoltDB file.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens or creates the Bolt database at path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketCounter))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Name implements Store.
func (b *Bolt) Name() string { return model.BackendBolt }

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

// Ping implements Store.
func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// Load implements counter.Persistence.
func (b *Bolt) Load() (model.CounterState, bool) {
	var data []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketCounter))
		if bucket == nil {
			return nil
		}

		// values are only valid inside the transaction
		if v := bucket.Get([]byte(application.StorageKey)); v != nil {
			data = append([]byte(nil), v...)
		}

		return nil
	})
	if err != nil {
		slog.Warn("failed to read counter record", "backend", model.BackendBolt, "error", err)
		return model.CounterState{}, false
	}

	return decodeState(data)
}

// Save implements counter.Persistence.
func (b *Bolt) Save(state model.CounterState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(boltBucketCounter))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(application.StorageKey), data)
	})
}
