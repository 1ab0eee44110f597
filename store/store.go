// Package store persists the per-day work summary.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/osutil"
)

const daysBucket = "days"

// Client is a BoltDB database client. Each day is stored under its ISO date
// key in the days bucket.
type Client struct {
	*bolt.DB
}

// Load reads every day in the bucket.
func (c *Client) Load() (models.Summary, error) {
	s := models.Summary{}

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(daysBucket)).ForEach(func(k, v []byte) error {
			d := models.NewDay()
			if err := json.Unmarshal(v, d); err != nil {
				return err
			}

			s[string(k)] = d

			return nil
		})
	})
	if err != nil {
		return nil, errReadSummary.Fmt(c.Path()).Wrap(err)
	}

	if s == nil {
		s = models.Summary{}
	}

	s.Normalise()

	return s, nil
}

// Save writes every day of s and removes days that are no longer present.
func (c *Client) Save(s models.Summary) error {
	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(daysBucket))

		var stale [][]byte

		err := b.ForEach(func(k, _ []byte) error {
			if _, ok := s[string(k)]; !ok {
				stale = append(stale, append([]byte(nil), k...))
			}

			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		for key, day := range s {
			if day == nil {
				continue
			}

			value, err := json.Marshal(day)
			if err != nil {
				return err
			}

			if err := b.Put([]byte(key), value); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errWriteSummary.Fmt(c.Path()).Wrap(err)
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = osutil.DBPermission

	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errSithRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(daysBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
