package configs

import (
	"github.com/anantkataria/Anant-Restaurant-API/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite store. TranslateError turns driver
// unique-constraint failures into gorm.ErrDuplicatedKey, which the
// cart uniqueness rule depends on.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
	)
}
