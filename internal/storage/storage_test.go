package storage

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nyskytigers/stocktagger/internal/models"
)

func newRecord(id string) *models.MetadataRecord {
	return &models.MetadataRecord{
		ImageID:  id,
		Filename: id + ".jpg",
		Caption:  "caption for " + id,
		Keywords: []string{"cat", "pet"},
	}
}

func TestCreateAndGet(t *testing.T) {
	store := New()

	if err := store.Create(newRecord("img1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rec, err := store.Get("img1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.Caption != "caption for img1" {
		t.Errorf("Caption = %q, want %q", rec.Caption, "caption for img1")
	}
}

func TestCreateDuplicateID(t *testing.T) {
	store := New()

	if err := store.Create(newRecord("img1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := store.Create(newRecord("img1"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("second Create error = %v, want ErrDuplicateID", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestCreateNormalizesKeywords(t *testing.T) {
	store := New()

	rec := newRecord("img1")
	rec.Keywords = []string{"Cat", "cat", " dog "}
	if err := store.Create(rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, _ := store.Get("img1")
	want := []string{"Cat", "dog"}
	if !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", got.Keywords, want)
	}
}

func TestGetNotFound(t *testing.T) {
	store := New()

	_, err := store.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	store := New()
	if err := store.Create(newRecord("img1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	caption := "edited caption"
	rec, err := store.Update("img1", RecordUpdate{Caption: &caption})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if rec.Caption != "edited caption" {
		t.Errorf("Caption = %q, want %q", rec.Caption, "edited caption")
	}
	// Unspecified fields stay put.
	if !reflect.DeepEqual(rec.Keywords, []string{"cat", "pet"}) {
		t.Errorf("Keywords changed by caption-only update: %v", rec.Keywords)
	}
}

func TestUpdateReplacesKeywordsNormalized(t *testing.T) {
	store := New()
	if err := store.Create(newRecord("img1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	kws := []string{" Sunset ", "sunset", "beach"}
	rec, err := store.Update("img1", RecordUpdate{Keywords: &kws})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := []string{"Sunset", "beach"}
	if !reflect.DeepEqual(rec.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", rec.Keywords, want)
	}
}

func TestUpdateNotFound(t *testing.T) {
	store := New()

	caption := "x"
	_, err := store.Update("missing", RecordUpdate{Caption: &caption})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update error = %v, want ErrNotFound", err)
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	store := New()

	ids := []string{"zebra", "apple", "mango"}
	for _, id := range ids {
		if err := store.Create(newRecord(id)); err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
	}

	all := store.All()
	if len(all) != len(ids) {
		t.Fatalf("All returned %d records, want %d", len(all), len(ids))
	}
	for i, rec := range all {
		if rec.ImageID != ids[i] {
			t.Errorf("All()[%d].ImageID = %s, want %s", i, rec.ImageID, ids[i])
		}
	}
}

func TestDelete(t *testing.T) {
	store := New()
	if err := store.Create(newRecord("img1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Create(newRecord("img2")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	store.Delete("img1")
	// Deleting a missing id is a no-op.
	store.Delete("img1")

	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
	all := store.All()
	if len(all) != 1 || all[0].ImageID != "img2" {
		t.Errorf("All = %v, want just img2", all)
	}
}

func TestLastWriteWins(t *testing.T) {
	store := New()
	if err := store.Create(newRecord("img1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first := "first edit"
	second := "second edit"
	if _, err := store.Update("img1", RecordUpdate{Caption: &first}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := store.Update("img1", RecordUpdate{Caption: &second}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	rec, _ := store.Get("img1")
	if rec.Caption != second {
		t.Errorf("Caption = %q, want most recent write %q", rec.Caption, second)
	}
}
