package configs

import (
	"log"

	"github.com/anantkataria/Anant-Restaurant-API/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the superuser once, from env.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: username,
		Password: string(hash),
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}

// SeedLookups creates the role groups and a starter catalog.
func SeedLookups(db *gorm.DB) error {
	db.FirstOrCreate(&entity.Group{}, entity.Group{Name: entity.GroupManager})
	db.FirstOrCreate(&entity.Group{}, entity.Group{Name: entity.GroupDeliveryCrew})

	var mains, desserts, drinks entity.Category
	db.FirstOrCreate(&mains, entity.Category{Slug: "mains", Title: "Mains"})
	db.FirstOrCreate(&desserts, entity.Category{Slug: "desserts", Title: "Desserts"})
	db.FirstOrCreate(&drinks, entity.Category{Slug: "drinks", Title: "Drinks"})

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count == 0 {
		items := []entity.MenuItem{
			{Title: "Greek Salad", Price: decimal.RequireFromString("7.50"), Featured: true, CategoryID: mains.ID},
			{Title: "Bruschetta", Price: decimal.RequireFromString("5.00"), CategoryID: mains.ID},
			{Title: "Lemon Dessert", Price: decimal.RequireFromString("4.00"), CategoryID: desserts.ID},
			{Title: "Iced Tea", Price: decimal.RequireFromString("2.50"), CategoryID: drinks.ID},
		}
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}
