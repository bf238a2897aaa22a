package entry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/domain/entity"
)

func seedEntry(store *fakeStore, userID uuid.UUID, date, title string) *entity.Entry {
	entry := entity.NewEntry(userID, mustDate(date), title, "", "", nil, nil)
	store.entries = append(store.entries, entry)
	return entry
}

func TestListEntries_NewestFirstWithPagination(t *testing.T) {
	store := &fakeStore{}
	userID := uuid.New()
	seedEntry(store, userID, "2026-01-01", "first")
	seedEntry(store, userID, "2026-01-03", "third")
	seedEntry(store, userID, "2026-01-02", "second")
	seedEntry(store, uuid.New(), "2026-01-02", "someone else")

	uc := NewListEntriesUseCase(store)

	output, err := uc.Execute(context.Background(), ListEntriesInput{UserID: userID, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Total != 3 {
		t.Errorf("Total = %d, want 3", output.Total)
	}
	if len(output.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(output.Entries))
	}
	if output.Entries[0].Title != "third" || output.Entries[1].Title != "second" {
		t.Errorf("page 1 = [%s, %s], want [third, second]", output.Entries[0].Title, output.Entries[1].Title)
	}

	output, err = uc.Execute(context.Background(), ListEntriesInput{UserID: userID, Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Entries) != 1 || output.Entries[0].Title != "first" {
		t.Errorf("page 2 should contain only the oldest entry")
	}
}

func TestListEntries_DateRangeFilter(t *testing.T) {
	store := &fakeStore{}
	userID := uuid.New()
	seedEntry(store, userID, "2026-01-01", "in range")
	seedEntry(store, userID, "2026-02-01", "out of range")

	uc := NewListEntriesUseCase(store)

	start := mustDate("2026-01-01")
	end := mustDate("2026-01-31")
	output, err := uc.Execute(context.Background(), ListEntriesInput{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Total != 1 {
		t.Errorf("Total = %d, want 1", output.Total)
	}
}

func TestListEntries_PaginationDefaults(t *testing.T) {
	store := &fakeStore{}
	userID := uuid.New()
	seedEntry(store, userID, "2026-01-01", "only")

	uc := NewListEntriesUseCase(store)

	output, err := uc.Execute(context.Background(), ListEntriesInput{UserID: userID, Page: 0, PageSize: 0})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Page != 1 {
		t.Errorf("Page = %d, want 1", output.Page)
	}
	if output.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", output.PageSize, DefaultPageSize)
	}

	output, err = uc.Execute(context.Background(), ListEntriesInput{UserID: userID, PageSize: 1000})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.PageSize != MaxPageSize {
		t.Errorf("PageSize = %d, want %d", output.PageSize, MaxPageSize)
	}
}

func TestListEntries_RepositoryError(t *testing.T) {
	repoErr := errors.New("query timeout")
	uc := NewListEntriesUseCase(&fakeStore{err: repoErr})

	_, err := uc.Execute(context.Background(), ListEntriesInput{UserID: uuid.New()})
	if !errors.Is(err, repoErr) {
		t.Fatalf("Execute() error = %v, want wrapped repository error", err)
	}
}
