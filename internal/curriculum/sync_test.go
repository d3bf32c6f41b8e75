package curriculum

import (
	"context"
	"errors"
	"testing"

	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/store"
)

type fakeRepo struct {
	row *store.CurriculumData
}

func (f *fakeRepo) Get(_ context.Context, id string) (*store.CurriculumData, error) {
	if f.row == nil || f.row.ID != id {
		return nil, store.ErrNotFound
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, c store.CurriculumData) error {
	f.row = &c
	return nil
}

func (f *fakeRepo) SaveProgress(_ context.Context, id string, completedIDs []string, cursor int, status string) error {
	if f.row == nil || f.row.ID != id {
		return store.ErrNotFound
	}
	f.row.CompletedIDs = completedIDs
	f.row.Cursor = cursor
	f.row.Status = status
	return nil
}

func newSyncFixture(conceptIDs []string) (*Sync, *fakeRepo) {
	repo := &fakeRepo{row: &store.CurriculumData{
		ID:         "curr-1",
		LearnerID:  "learner-1",
		ConceptIDs: conceptIDs,
		Status:     StatusActive,
	}}
	return NewSync(repo, logger.NewNop()), repo
}

func TestOnConceptCompleteAdvancesCursor(t *testing.T) {
	sync, repo := newSyncFixture([]string{"a", "b", "c"})
	ctx := context.Background()

	if err := sync.OnConceptComplete(ctx, "curr-1", "a"); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	if repo.row.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", repo.row.Cursor)
	}
	if repo.row.Status != StatusActive {
		t.Errorf("status = %s, want active", repo.row.Status)
	}
}

func TestOnConceptCompleteOutOfOrder(t *testing.T) {
	sync, repo := newSyncFixture([]string{"a", "b", "c"})
	ctx := context.Background()

	// Completing "c" first leaves the cursor on "a".
	if err := sync.OnConceptComplete(ctx, "curr-1", "c"); err != nil {
		t.Fatalf("complete c: %v", err)
	}
	if repo.row.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", repo.row.Cursor)
	}

	// Completing "a" skips over it to "b".
	if err := sync.OnConceptComplete(ctx, "curr-1", "a"); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	if repo.row.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", repo.row.Cursor)
	}
}

func TestOnConceptCompleteIsIdempotent(t *testing.T) {
	sync, repo := newSyncFixture([]string{"a", "b"})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := sync.OnConceptComplete(ctx, "curr-1", "a"); err != nil {
			t.Fatalf("complete a (%d): %v", i, err)
		}
	}
	if len(repo.row.CompletedIDs) != 1 {
		t.Errorf("completed list = %v, want one entry", repo.row.CompletedIDs)
	}
}

func TestOnConceptCompleteFinishesCurriculum(t *testing.T) {
	sync, repo := newSyncFixture([]string{"a", "b"})
	ctx := context.Background()

	if err := sync.OnConceptComplete(ctx, "curr-1", "a"); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	if err := sync.OnConceptComplete(ctx, "curr-1", "b"); err != nil {
		t.Fatalf("complete b: %v", err)
	}
	if repo.row.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", repo.row.Status)
	}
	if repo.row.Cursor != 2 {
		t.Errorf("cursor = %d, want past the end", repo.row.Cursor)
	}
}

func TestOnConceptCompleteUnknownCurriculum(t *testing.T) {
	sync, _ := newSyncFixture([]string{"a"})
	err := sync.OnConceptComplete(context.Background(), "nope", "a")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
