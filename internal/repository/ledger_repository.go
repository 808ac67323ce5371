package repository

import (
	"sync"

	"github.com/William-datamaster/table-tennis/internal/models"
)

// LedgerRepository owns the session's lesson records. Storage is
// in-memory by design; nothing persists beyond the process lifetime.
// Insertion order is preserved and is the only ordering exposed.
type LedgerRepository struct {
	mu      sync.RWMutex
	records []models.LessonRecord
	index   map[string]int
}

// NewLedgerRepository constructs an empty ledger.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{index: make(map[string]int)}
}

// Append adds a record to the end of the ledger.
func (r *LedgerRepository) Append(record models.LessonRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[record.ID] = len(r.records)
	r.records = append(r.records, record)
}

// Remove deletes the record with the given id. The second return value
// reports whether the id was present; a miss leaves the ledger unchanged.
func (r *LedgerRepository) Remove(id string) (models.LessonRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return models.LessonRecord{}, false
	}
	removed := r.records[pos]
	r.records = append(r.records[:pos], r.records[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.records); i++ {
		r.index[r.records[i].ID] = i
	}
	return removed, true
}

// Snapshot returns a copy of the ledger in insertion order.
func (r *LedgerRepository) Snapshot() []models.LessonRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.LessonRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len reports the number of records.
func (r *LedgerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
