package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nyskytigers/stocktagger/internal/keywords"
	"github.com/nyskytigers/stocktagger/internal/models"
)

var (
	// ErrNotFound is returned when an image id is not in the store.
	// Callers must create a record before updating it.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when a record with the same image id
	// already exists. This is a caller bug, not a recoverable condition.
	ErrDuplicateID = errors.New("duplicate image id")
)

// RecordStore holds the metadata records for one editing session, keyed by
// image id, in insertion order. Each session owns its own instance; the
// store is never shared across sessions.
type RecordStore struct {
	records map[string]*models.MetadataRecord
	order   []string
	mu      sync.RWMutex
}

// RecordUpdate is a partial update of a record. Nil fields are left
// untouched. Keywords is a full replacement list, normalized on write.
type RecordUpdate struct {
	Caption      *string
	Keywords     *[]string
	Categories   *[]string
	Editorial    *bool
	Mature       *bool
	Illustration *bool
}

func New() *RecordStore {
	return &RecordStore{
		records: make(map[string]*models.MetadataRecord),
	}
}

// Create adds a new record. The record's keyword list is normalized
// (trimmed, deduplicated case-insensitively, first-seen casing kept).
func (s *RecordStore) Create(rec *models.MetadataRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ImageID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ImageID)
	}

	rec.Keywords = keywords.Normalize(rec.Keywords)
	s.records[rec.ImageID] = rec
	s.order = append(s.order, rec.ImageID)
	return nil
}

func (s *RecordStore) Get(imageID string) (*models.MetadataRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[imageID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, imageID)
	}
	return rec, nil
}

// Update merges upd into the record for imageID and returns the updated
// record. Unspecified fields keep their current values.
func (s *RecordStore) Update(imageID string, upd RecordUpdate) (*models.MetadataRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[imageID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, imageID)
	}

	if upd.Caption != nil {
		rec.Caption = *upd.Caption
	}
	if upd.Keywords != nil {
		rec.Keywords = keywords.Normalize(*upd.Keywords)
	}
	if upd.Categories != nil {
		rec.Categories = *upd.Categories
	}
	if upd.Editorial != nil {
		rec.Editorial = *upd.Editorial
	}
	if upd.Mature != nil {
		rec.Mature = *upd.Mature
	}
	if upd.Illustration != nil {
		rec.Illustration = *upd.Illustration
	}

	return rec, nil
}

// All returns the records in insertion order.
func (s *RecordStore) All() []*models.MetadataRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.MetadataRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result
}

func (s *RecordStore) Delete(imageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[imageID]; !exists {
		return
	}
	delete(s.records, imageID)
	for i, id := range s.order {
		if id == imageID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
