package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketRecs = []byte("recommendations")

// BoltLog persists the recommendation log in a single bbolt file. IDs come
// from the bucket sequence, so they are monotonic across restarts.
type BoltLog struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the log database at path; parent directories
// are created automatically.
func OpenBolt(path string) (*BoltLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRecs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &BoltLog{db: db}, nil
}

func (l *BoltLog) Close() error { return l.db.Close() }

func (l *BoltLog) Record(accountID, recommendation string) (string, error) {
	var id string
	err := l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRecs)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = strconv.FormatUint(seq, 10)
		e := Entry{
			ID:             id,
			AccountID:      accountID,
			Recommendation: recommendation,
			CreatedAt:      time.Now().UTC(),
		}
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return "", fmt.Errorf("recording recommendation: %w", err)
	}
	return id, nil
}

func (l *BoltLog) RecordOutcome(id, outcome string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRecs)
		data := b.Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("decoding entry %s: %w", id, err)
		}
		now := time.Now().UTC()
		e.Outcome = outcome
		e.OutcomeAt = &now
		out, err := json.Marshal(e)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), out)
	})
}

// Get reads one entry; used by tests and diagnostics.
func (l *BoltLog) Get(id string) (Entry, bool, error) {
	var e Entry
	found := false
	err := l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRecs).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &e)
	})
	return e, found, err
}
