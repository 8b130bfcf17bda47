package score

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Entry is one persisted result, date in unix milliseconds
type Entry struct {
	Score int   `json:"score"`
	Date  int64 `json:"date"`
}

// Time returns the entry date
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Date)
}

// Board is a top-N score list stored as a JSON array under one key
type Board struct {
	kv   KV
	key  string
	size int
}

// NewBoard creates a board over kv
func NewBoard(kv KV, key string, size int) *Board {
	if size < 1 {
		size = 1
	}
	return &Board{kv: kv, key: key, size: size}
}

// Load returns the stored list, sorted descending
// Any read or decode failure yields an empty list alongside the error
func (b *Board) Load() ([]Entry, error) {
	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return b.normalize(entries), nil
}

// Record inserts a result, keeps the best entries and writes the list back
// The returned list is valid even when err reports a load or save failure
func (b *Board) Record(points int, at time.Time) ([]Entry, error) {
	entries, loadErr := b.Load()

	entries = append(entries, Entry{Score: points, Date: at.UnixMilli()})
	entries = b.normalize(entries)

	data, err := json.Marshal(entries)
	if err != nil {
		return entries, fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := b.kv.Set(b.key, string(data)); err != nil {
		return entries, fmt.Errorf("save leaderboard: %w", err)
	}
	if loadErr != nil {
		return entries, fmt.Errorf("previous leaderboard discarded: %w", loadErr)
	}
	return entries, nil
}

// normalize sorts descending by score, earlier entries first among equals, and truncates
func (b *Board) normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > b.size {
		entries = entries[:b.size]
	}
	return entries
}
