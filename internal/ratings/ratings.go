// Package ratings stores star ratings for named items in a BoltDB database.
// Each item keeps its latest rating together with the number of stars it was
// rated out of.
package ratings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"starbar/internal/logging"
)

const (
	dbFileName    = "starbar_ratings.db"
	RatingsBucket = "Ratings" // Bucket name for item to rating record mapping.
)

// ErrEmptyItem is returned when an operation is given an empty item name.
var ErrEmptyItem = errors.New("item name cannot be empty")

// Record is the stored rating of one item.
type Record struct {
	Item    string    `json:"item"`
	Rating  float32   `json:"rating"`
	Max     int       `json:"max"`
	Updated time.Time `json:"updated"`
}

// Summary describes every stored rating. Stars[n] counts the items whose
// rating rounds to n stars.
type Summary struct {
	Count   int
	Average float32
	Stars   map[int]int
}

// RatingDB manages the ratings database.
type RatingDB struct {
	db     *bolt.DB
	logger logging.LoggerFunc
	now    func() time.Time
}

// NewRatingDB creates or opens the ratings database file in dbDir. An empty
// dbDir uses the user's config directory. A nil logger logs through the
// default logger.
func NewRatingDB(dbDir string, logger logging.LoggerFunc) (*RatingDB, error) {
	if logger == nil {
		logger = logging.Default("ratings")
	}
	if dbDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			logger(fmt.Sprintf("Warning: could not get user config dir: %v. Using current dir.", err))
			dbDir = "."
		} else {
			dbDir = filepath.Join(configDir, "starbar")
		}
	}
	if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
	}

	dbPath := filepath.Join(dbDir, dbFileName)
	logger(fmt.Sprintf("Using ratings database at: %s", dbPath))

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open ratings database %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(RatingsBucket)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", RatingsBucket, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &RatingDB{db: db, logger: logger, now: time.Now}, nil
}

// Close closes the database connection.
func (rdb *RatingDB) Close() error {
	if rdb.db != nil {
		return rdb.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (rdb *RatingDB) Path() string {
	return rdb.db.Path()
}

// SetRating stores rating out of max stars for item, replacing any earlier rating.
func (rdb *RatingDB) SetRating(item string, rating float32, max int) error {
	if item == "" {
		return ErrEmptyItem
	}
	rec := Record{Item: item, Rating: rating, Max: max, Updated: rdb.now().UTC()}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode rating for '%s': %w", item, err)
	}
	return rdb.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(RatingsBucket)).Put([]byte(item), data); err != nil {
			return fmt.Errorf("failed to store rating for '%s': %w", item, err)
		}
		return nil
	})
}

// GetRating returns the rating of item and whether one is stored.
func (rdb *RatingDB) GetRating(item string) (Record, bool, error) {
	var rec Record
	var found bool
	err := rdb.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(RatingsBucket)).Get([]byte(item))
		if data == nil {
			return nil
		}
		found = true
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("failed to decode rating for '%s': %w", item, err)
		}
		return nil
	})
	return rec, found, err
}

// RemoveRating deletes the rating of item. Removing a missing item is not an error.
func (rdb *RatingDB) RemoveRating(item string) error {
	if item == "" {
		return ErrEmptyItem
	}
	return rdb.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(RatingsBucket)).Delete([]byte(item)); err != nil {
			return fmt.Errorf("failed to delete rating for '%s': %w", item, err)
		}
		return nil
	})
}

// ListRatings returns every stored rating sorted by item name. Records that
// cannot be decoded are logged and skipped.
func (rdb *RatingDB) ListRatings() ([]Record, error) {
	var records []Record
	err := rdb.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(RatingsBucket)).ForEach(func(k, v []byte) error {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				rdb.logger(fmt.Sprintf("Error decoding rating for '%s', skipping: %v", string(k), err))
				return nil
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Item < records[j].Item
	})
	return records, nil
}

// Summary counts the stored ratings by whole stars and averages them.
func (rdb *RatingDB) Summary() (Summary, error) {
	records, err := rdb.ListRatings()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records), nil
}

// Summarize builds a Summary from records.
func Summarize(records []Record) Summary {
	s := Summary{Stars: make(map[int]int)}
	var total float64
	for _, rec := range records {
		s.Stars[int(math.Round(float64(rec.Rating)))]++
		total += float64(rec.Rating)
	}
	s.Count = len(records)
	if s.Count > 0 {
		s.Average = float32(total / float64(s.Count))
	}
	return s
}
