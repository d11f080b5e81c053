package scheduler

import (
	"sync"
	"time"

	"IntradayScope/internal/model"
)

// Board keeps the results of the most recent universe scan. Earlier scans
// are discarded.
type Board struct {
	mu      sync.RWMutex
	results []model.ScanResult
	at      time.Time
}

// NewBoard creates an empty Board.
func NewBoard() *Board { return &Board{} }

// Replace swaps in a new scan.
func (b *Board) Replace(results []model.ScanResult, at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results = results
	b.at = at
}

// Latest returns a copy of the last scan and its completion time. The time
// is zero when no scan has run yet.
func (b *Board) Latest() ([]model.ScanResult, time.Time) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.ScanResult, len(b.results))
	copy(out, b.results)
	return out, b.at
}
