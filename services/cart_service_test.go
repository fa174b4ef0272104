package services

import (
	"errors"
	"testing"

	"github.com/anantkataria/Anant-Restaurant-API/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestCartAddAndList(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice", false)
	cat := createCategory(t, db)
	salad := createItem(t, db, "Greek Salad", "9.50", cat.ID)
	tea := createItem(t, db, "Iced Tea", "2.50", cat.ID)

	if err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 2}); err != nil {
		t.Fatalf("add salad: %v", err)
	}
	if err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: tea.ID, Quantity: 1}); err != nil {
		t.Fatalf("add tea: %v", err)
	}

	lines, err := svc.List(alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// insertion order, item title resolved, line price = qty x unit
	if lines[0].MenuItem != "Greek Salad" || lines[1].MenuItem != "Iced Tea" {
		t.Fatalf("unexpected line order: %q, %q", lines[0].MenuItem, lines[1].MenuItem)
	}
	if !lines[0].Price.Equal(decimal.RequireFromString("19.00")) {
		t.Fatalf("expected line price 19.00, got %s", lines[0].Price)
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice", false)

	err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: 999, Quantity: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartDuplicateLineRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice", false)
	cat := createCategory(t, db)
	salad := createItem(t, db, "Greek Salad", "9.50", cat.ID)

	if err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 3})
	if !errors.Is(err, ErrDuplicateLine) {
		t.Fatalf("expected ErrDuplicateLine, got %v", err)
	}

	// the original line is untouched
	lines, err := svc.List(alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected single line qty 1, got %+v", lines)
	}
}

func TestCartSameItemDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	cat := createCategory(t, db)
	salad := createItem(t, db, "Greek Salad", "9.50", cat.ID)

	if err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1}); err != nil {
		t.Fatalf("alice add: %v", err)
	}
	// uniqueness is per (user, item), not per item
	if err := svc.Add(bob.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1}); err != nil {
		t.Fatalf("bob add: %v", err)
	}
}

func TestCartClearIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice", false)
	cat := createCategory(t, db)
	salad := createItem(t, db, "Greek Salad", "9.50", cat.ID)

	if err := svc.Clear(alice.ID); err != nil {
		t.Fatalf("clear empty cart: %v", err)
	}

	if err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(alice.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := svc.Clear(alice.ID); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	lines, err := svc.List(alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}

	// clearing one user's cart leaves the unique slot free again
	if err := svc.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 2}); err != nil {
		t.Fatalf("re-add after clear: %v", err)
	}
}
