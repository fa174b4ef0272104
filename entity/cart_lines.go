package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLine is a pending quantity of one menu item for one user. The
// composite unique index keeps at most one line per (user, item) pair;
// duplicates are rejected by the store, not merged.
type CartLine struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
}
