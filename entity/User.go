package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"-"`

	// Relations, preloaded only when needed
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`
	Orders []Order `json:"-"`
}
