package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/toys"
)

func day(s string) time.Time {
	t, _ := time.Parse(feedings.DateLayout, s)
	return t
}

func TestCatRepo_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	catRepo := NewCatRepo(st)
	feedRepo := NewFeedingRepo(st)
	toyRepo := NewToyRepo(st)

	if err := catRepo.Create(ctx, cats.Cat{ID: "cat-1", OwnerUserID: "alice", Name: "Tom"}); err != nil {
		t.Fatalf("create cat: %v", err)
	}
	if err := toyRepo.Create(ctx, toys.Toy{ID: "toy-1", Name: "Ball", Color: "red"}); err != nil {
		t.Fatalf("create toy: %v", err)
	}
	if err := feedRepo.Create(ctx, feedings.Feeding{ID: "f-1", CatID: "cat-1", Date: day("2024-01-01"), Meal: feedings.MealBreakfast}); err != nil {
		t.Fatalf("create feeding: %v", err)
	}
	if err := catRepo.AddToy(ctx, "cat-1", "toy-1"); err != nil {
		t.Fatalf("add toy: %v", err)
	}

	if err := catRepo.Delete(ctx, "cat-1"); err != nil {
		t.Fatalf("delete cat: %v", err)
	}

	fs, _ := feedRepo.ListByCat(ctx, "cat-1")
	if len(fs) != 0 {
		t.Fatalf("expected feedings to cascade, got %d", len(fs))
	}
	ids, _ := catRepo.ListToyIDs(ctx, "cat-1")
	if len(ids) != 0 {
		t.Fatalf("expected toy associations to cascade, got %v", ids)
	}
	// el toy compartido sobrevive
	if _, err := toyRepo.GetByID(ctx, "toy-1"); err != nil {
		t.Fatalf("toy should survive cat deletion: %v", err)
	}
	if err := catRepo.Delete(ctx, "cat-1"); !errors.Is(err, cats.ErrNotFound) {
		t.Fatalf("expected cats.ErrNotFound on second delete, got %v", err)
	}
}

func TestToyRepo_DeleteRemovesAssociations(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	catRepo := NewCatRepo(st)
	toyRepo := NewToyRepo(st)

	_ = catRepo.Create(ctx, cats.Cat{ID: "cat-1", OwnerUserID: "alice"})
	_ = toyRepo.Create(ctx, toys.Toy{ID: "toy-1"})
	_ = toyRepo.Create(ctx, toys.Toy{ID: "toy-2"})
	_ = catRepo.AddToy(ctx, "cat-1", "toy-2")
	_ = catRepo.AddToy(ctx, "cat-1", "toy-1")
	// idempotente
	_ = catRepo.AddToy(ctx, "cat-1", "toy-1")

	ids, _ := catRepo.ListToyIDs(ctx, "cat-1")
	if len(ids) != 2 || ids[0] != "toy-1" || ids[1] != "toy-2" {
		t.Fatalf("expected [toy-1 toy-2] in toy insertion order, got %v", ids)
	}

	if err := toyRepo.Delete(ctx, "toy-1"); err != nil {
		t.Fatalf("delete toy: %v", err)
	}
	ids, _ = catRepo.ListToyIDs(ctx, "cat-1")
	if len(ids) != 1 || ids[0] != "toy-2" {
		t.Fatalf("expected [toy-2], got %v", ids)
	}

	if err := catRepo.AddToy(ctx, "cat-1", "toy-1"); !errors.Is(err, cats.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted toy, got %v", err)
	}
}

func TestFeedingRepo_OrderDateDescThenInsertion(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	_ = NewCatRepo(st).Create(ctx, cats.Cat{ID: "cat-1", OwnerUserID: "alice"})
	repo := NewFeedingRepo(st)

	in := []feedings.Feeding{
		{ID: "a", CatID: "cat-1", Date: day("2024-01-01"), Meal: feedings.MealBreakfast},
		{ID: "b", CatID: "cat-1", Date: day("2024-01-02"), Meal: feedings.MealLunch},
		{ID: "c", CatID: "cat-1", Date: day("2024-01-01"), Meal: feedings.MealDinner},
	}
	for _, f := range in {
		if err := repo.Create(ctx, f); err != nil {
			t.Fatalf("create %s: %v", f.ID, err)
		}
	}

	got, err := repo.ListByCat(ctx, "cat-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d feedings, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}

	if err := repo.Create(ctx, feedings.Feeding{ID: "x", CatID: "missing"}); !errors.Is(err, cats.ErrNotFound) {
		t.Fatalf("expected FK violation as cats.ErrNotFound, got %v", err)
	}
}

func TestCatRepo_UpdateKeepsOwnerAndName(t *testing.T) {
	ctx := context.Background()
	repo := NewCatRepo(NewStore())
	_ = repo.Create(ctx, cats.Cat{ID: "cat-1", OwnerUserID: "alice", Name: "Tom", Age: 1})

	if err := repo.Update(ctx, cats.Cat{ID: "cat-1", OwnerUserID: "bob", Name: "Jerry", Age: 3}); err != nil {
		t.Fatalf("update: %v", err)
	}
	c, _ := repo.GetByID(ctx, "cat-1")
	if c.OwnerUserID != "alice" || c.Name != "Tom" || c.Age != 3 {
		t.Fatalf("unexpected cat after update: %+v", c)
	}
}

func TestAccountRepo_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepo(NewStore())

	if err := repo.Create(ctx, accounts.Account{ID: "1", Username: "alice"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, accounts.Account{ID: "2", Username: "alice"}); !errors.Is(err, accounts.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	a, err := repo.GetByUsername(ctx, "alice")
	if err != nil || a.ID != "1" {
		t.Fatalf("get by username: %+v %v", a, err)
	}
	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, accounts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
