package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order completion state. Two values only; kept as a string column so a
// later state can be added without a schema rewrite.
const (
	StatusUnfulfilled = "unfulfilled"
	StatusFulfilled   = "fulfilled"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"` // immutable after creation
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status string          `gorm:"not null;default:'unfulfilled'" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"` // fixed at conversion time

	OrderLines []OrderLine `json:"orderLines"`
}
