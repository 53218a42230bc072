package ratings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) (*RatingDB, *[]string) {
	t.Helper()
	messages := &[]string{}
	rdb, err := NewRatingDB(t.TempDir(), func(m string) { *messages = append(*messages, m) })
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return rdb, messages
}

func TestNewRatingDB(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	var messages []string
	rdb, err := NewRatingDB(dir, func(m string) { messages = append(messages, m) })
	require.NoError(t, err)
	defer rdb.Close()

	assert.Equal(t, filepath.Join(dir, dbFileName), rdb.Path())
	_, err = os.Stat(rdb.Path())
	assert.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], rdb.Path())
}

func TestSetAndGetRating(t *testing.T) {
	rdb, _ := openTestDB(t)
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	rdb.now = func() time.Time { return fixed }

	require.NoError(t, rdb.SetRating("coffee", 4, 5))

	rec, found, err := rdb.GetRating("coffee")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Record{Item: "coffee", Rating: 4, Max: 5, Updated: fixed}, rec)

	require.NoError(t, rdb.SetRating("coffee", 2.5, 10))
	rec, _, err = rdb.GetRating("coffee")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), rec.Rating)
	assert.Equal(t, 10, rec.Max)
}

func TestGetMissingRating(t *testing.T) {
	rdb, _ := openTestDB(t)

	rec, found, err := rdb.GetRating("nothing")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Record{}, rec)
}

func TestEmptyItemRejected(t *testing.T) {
	rdb, _ := openTestDB(t)

	assert.ErrorIs(t, rdb.SetRating("", 3, 5), ErrEmptyItem)
	assert.ErrorIs(t, rdb.RemoveRating(""), ErrEmptyItem)
}

func TestRemoveRating(t *testing.T) {
	rdb, _ := openTestDB(t)
	require.NoError(t, rdb.SetRating("tea", 3, 5))

	require.NoError(t, rdb.RemoveRating("tea"))
	require.NoError(t, rdb.RemoveRating("tea"), "removing twice is fine")

	_, found, err := rdb.GetRating("tea")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListRatingsSortedAndSkipsCorrupt(t *testing.T) {
	rdb, messages := openTestDB(t)
	require.NoError(t, rdb.SetRating("pear", 2, 5))
	require.NoError(t, rdb.SetRating("apple", 5, 5))
	require.NoError(t, rdb.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(RatingsBucket)).Put([]byte("broken"), []byte("{not json"))
	}))

	records, err := rdb.ListRatings()

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "apple", records[0].Item)
	assert.Equal(t, "pear", records[1].Item)
	assert.Contains(t, (*messages)[len(*messages)-1], "broken")
}

func TestSummary(t *testing.T) {
	rdb, _ := openTestDB(t)

	empty, err := rdb.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, float32(0), empty.Average)

	require.NoError(t, rdb.SetRating("a", 5, 5))
	require.NoError(t, rdb.SetRating("b", 4, 5))
	require.NoError(t, rdb.SetRating("c", 4.5, 5))
	require.NoError(t, rdb.SetRating("d", 0, 5))

	s, err := rdb.Summary()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 3.375, s.Average, 1e-6)
	assert.Equal(t, map[int]int{5: 2, 4: 1, 0: 1}, s.Stars)
}

func TestReopenKeepsRatings(t *testing.T) {
	dir := t.TempDir()
	rdb, err := NewRatingDB(dir, func(string) {})
	require.NoError(t, err)
	require.NoError(t, rdb.SetRating("book", 3, 5))
	require.NoError(t, rdb.Close())

	rdb, err = NewRatingDB(dir, func(string) {})
	require.NoError(t, err)
	defer rdb.Close()

	rec, found, err := rdb.GetRating("book")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, float32(3), rec.Rating)
}
