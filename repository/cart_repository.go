package repository

import (
	"github.com/anantkataria/Anant-Restaurant-API/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// InsertLine relies on the (user_id, menu_item_id) unique index: a
// second line for the same item fails with gorm.ErrDuplicatedKey even
// under concurrent inserts.
func (r *CartRepository) InsertLine(tx *gorm.DB, line *entity.CartLine) error {
	return tx.Create(line).Error
}

// FindLines returns the user's cart in insertion order with the menu
// item resolved for display.
func (r *CartRepository) FindLines(userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

// LinesForOrder reads the cart inside the conversion transaction.
func (r *CartRepository) LinesForOrder(tx *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&lines).Error
	return lines, err
}

// ClearLines removes every cart line the user owns. Deleting an empty
// cart is not an error. Unscoped: a soft-deleted row would still hold
// the (user_id, menu_item_id) unique slot and block re-adding the item.
func (r *CartRepository) ClearLines(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartLine{}).Error
}
