package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory store with the schema migrated and
// the role groups seeded. One connection keeps sqlite happy under the
// shared-cache DSN.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		if err := db.Create(&entity.Group{Name: name}).Error; err != nil {
			t.Fatalf("seed group %s: %v", name, err)
		}
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, admin bool, groups ...string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		IsAdmin:  admin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}

	repo := repository.NewUserRepository(db)
	for _, g := range groups {
		if err := repo.AddToGroup(user, g); err != nil {
			t.Fatalf("add %s to %s: %v", username, g, err)
		}
	}
	return user
}

func createCategory(t *testing.T, db *gorm.DB) *entity.Category {
	t.Helper()
	cat := &entity.Category{Slug: "mains", Title: "Mains"}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return cat
}

func createItem(t *testing.T, db *gorm.DB, title, price string, categoryID uint) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create item %s: %v", title, err)
	}
	return item
}

// callerFor resolves roles through the real resolver so tests also
// cover the group-to-role mapping.
func callerFor(t *testing.T, db *gorm.DB, user *entity.User) *Caller {
	t.Helper()
	caller, err := NewRoleService(repository.NewUserRepository(db)).Resolve(user.ID)
	if err != nil {
		t.Fatalf("resolve roles for %s: %v", user.Username, err)
	}
	return caller
}

func strPtr(s string) *string { return &s }
