package locale

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("locales")

// BoltStore serves bundles from a bbolt file, one JSON-encoded bundle
// per locale code. It lets a server run without Postgres while still
// keeping the dataset out of the binary; cmd/localedb writes the files.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if necessary) a bbolt-backed store at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("locale: failed to open bolt database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("locale: failed to create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// SaveBundle validates and stores a bundle under its locale code,
// replacing any previous dataset for that code.
func (s *BoltStore) SaveBundle(b *Bundle) error {
	if err := Validate(b); err != nil {
		return err
	}
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("locale: failed to encode %s: %w", b.Code, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(b.Code), data)
	})
}

// Locales lists the stored locales. bbolt iterates keys in byte order,
// which matches the ordered-by-code contract.
func (s *BoltStore) Locales() ([]Info, error) {
	var infos []Info
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).ForEach(func(k, v []byte) error {
			var b Bundle
			if err := json.Unmarshal(v, &b); err != nil {
				return fmt.Errorf("locale: failed to decode %s: %w", k, err)
			}
			infos = append(infos, Info{Code: b.Code, Name: b.Name})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Bundle loads and validates the dataset for a locale code.
func (s *BoltStore) Bundle(code string) (*Bundle, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(code))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("locale: failed to decode %s: %w", code, err)
	}
	if err := Validate(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Ping verifies the file is still readable.
func (s *BoltStore) Ping() error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(boltBucket) == nil {
			return fmt.Errorf("locale: bucket missing")
		}
		return nil
	})
}

// Close closes the underlying file.
func (s *BoltStore) Close() error { return s.db.Close() }
