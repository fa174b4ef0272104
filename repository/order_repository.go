package repository

import (
	"github.com/anantkataria/Anant-Restaurant-API/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateLine(tx *gorm.DB, line *entity.OrderLine) error {
	return tx.Create(line).Error
}

func (r *OrderRepository) SetTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("total", total).Error
}

// visibleScope restricts a query to the orders the caller may see:
// staff see everything, delivery crew see owned plus assigned, plain
// customers see owned only.
func (r *OrderRepository) visibleScope(tx *gorm.DB, userID uint, staff, crew bool) *gorm.DB {
	switch {
	case staff:
		return tx
	case crew:
		return tx.Where("user_id = ? OR delivery_crew_id = ?", userID, userID)
	default:
		return tx.Where("user_id = ?", userID)
	}
}

func (r *OrderRepository) ListVisible(userID uint, staff, crew bool) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.visibleScope(r.DB.Preload("OrderLines"), userID, staff, crew).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

// GetVisible applies the same scope as ListVisible so an order outside
// the caller's set reads as a missing record, not a forbidden one.
func (r *OrderRepository) GetVisible(orderID, userID uint, staff, crew bool) (*entity.Order, error) {
	var order entity.Order
	err := r.visibleScope(r.DB.Preload("OrderLines"), userID, staff, crew).
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetForUpdate(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var order entity.Order
	if err := tx.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateFields touches only the mutable columns; total, owner and
// creation time are never part of the map.
func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *OrderRepository) Delete(orderID uint) (int64, error) {
	res := r.DB.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}
