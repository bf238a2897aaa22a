package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/daily-ledger/backend/internal/application/adapter"
	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

func TestEntryRepository_CreateAndFind(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	repo := NewEntryRepository(db)

	entry := entity.NewEntry(user.ID, date("2026-03-10"), "Hiking", "Went up the hill.", "happy",
		[]string{"photo1.jpg"}, []string{"outdoors", "exercise"})
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByIDAndUser(context.Background(), entry.ID, user.ID)
	if err != nil {
		t.Fatalf("FindByIDAndUser() error = %v", err)
	}
	if found.Title != "Hiking" || found.Mood != "happy" {
		t.Errorf("found = %+v, want Hiking/happy", found)
	}
	if len(found.Photos) != 1 || len(found.Tags) != 2 {
		t.Errorf("Photos = %v, Tags = %v; want round-tripped JSON lists", found.Photos, found.Tags)
	}
}

func TestEntryRepository_FindScopedToUser(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	other := testUser(t, db)
	repo := NewEntryRepository(db)

	entry := entity.NewEntry(owner.ID, date("2026-03-10"), "Private", "", "", nil, nil)
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := repo.FindByIDAndUser(context.Background(), entry.ID, other.ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("FindByIDAndUser() with other user error = %v, want ErrEntryNotFound", err)
	}
}

func TestEntryRepository_FindByFilter(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	repo := NewEntryRepository(db)

	for _, day := range []string{"2026-01-01", "2026-01-15", "2026-02-01"} {
		entry := entity.NewEntry(user.ID, date(day), day, "", "", nil, nil)
		if err := repo.Create(context.Background(), entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	result, err := repo.FindByFilter(context.Background(), adapter.EntryFilter{UserID: user.ID}, adapter.EntryPagination{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("FindByFilter() error = %v", err)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(result.Entries))
	}
	if result.Entries[0].Title != "2026-02-01" {
		t.Errorf("first entry = %q, want newest date first", result.Entries[0].Title)
	}

	start := date("2026-01-01")
	end := date("2026-01-31")
	result, err = repo.FindByFilter(context.Background(), adapter.EntryFilter{
		UserID:    user.ID,
		StartDate: &start,
		EndDate:   &end,
	}, adapter.EntryPagination{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("FindByFilter() error = %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total with date range = %d, want 2", result.Total)
	}
}

func TestEntryRepository_Update(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	repo := NewEntryRepository(db)

	entry := entity.NewEntry(user.ID, date("2026-03-10"), "Before", "", "", nil, nil)
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	entry.Title = "After"
	entry.Tags = []string{"edited"}
	if err := repo.Update(context.Background(), entry); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.FindByIDAndUser(context.Background(), entry.ID, user.ID)
	if err != nil {
		t.Fatalf("FindByIDAndUser() error = %v", err)
	}
	if found.Title != "After" || len(found.Tags) != 1 {
		t.Errorf("found = %+v, want updated title and tags", found)
	}
}

func TestEntryRepository_DeleteCascadesToTransactions(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	repo := NewEntryRepository(db)
	transactionRepo := NewTransactionRepository(db)

	entry := entity.NewEntry(user.ID, date("2026-03-10"), "Market", "", "", nil, nil)
	transactions := []*entity.Transaction{
		entity.NewTransaction(user.ID, &entry.ID, entry.Date, entity.TransactionTypeExpense, "groceries", money("32.40"), "", ""),
		entity.NewTransaction(user.ID, &entry.ID, entry.Date, entity.TransactionTypeExpense, "home", money("120.00"), "", ""),
	}
	if err := repo.CreateWithTransactions(context.Background(), entry, transactions); err != nil {
		t.Fatalf("CreateWithTransactions() error = %v", err)
	}

	linked, err := transactionRepo.FindByEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("FindByEntry() error = %v", err)
	}
	if len(linked) != 2 {
		t.Fatalf("len(linked) = %d, want 2", len(linked))
	}

	if err := repo.Delete(context.Background(), entry.ID, user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	linked, err = transactionRepo.FindByEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("FindByEntry() after delete error = %v", err)
	}
	if len(linked) != 0 {
		t.Errorf("len(linked) after delete = %d, want 0", len(linked))
	}
}

func TestEntryRepository_DeleteNotFound(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	repo := NewEntryRepository(db)

	if err := repo.Delete(context.Background(), uuid.New(), user.ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("Delete() error = %v, want ErrEntryNotFound", err)
	}
}
