package services

import (
	"errors"
	"fmt"

	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// CartLineOut is one pending line with the item title resolved.
type CartLineOut struct {
	ID         uint            `json:"id"`
	MenuItem   string          `json:"menuItem"`
	MenuItemID uint            `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Price      decimal.Decimal `json:"price"`
}

// Add snapshots the current catalog price into a new cart line. A line
// already present for the same item is rejected, never merged.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	item, err := s.MenuRepo.FindItemByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	line := &entity.CartLine{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.InsertLine(tx, line)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateLine
	}
	return err
}

func (s *CartService) List(userID uint) ([]CartLineOut, error) {
	lines, err := s.CartRepo.FindLines(userID)
	if err != nil {
		return nil, err
	}
	out := make([]CartLineOut, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineOut{
			ID:         l.ID,
			MenuItem:   l.MenuItem.Title,
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Price:      l.Price,
		})
	}
	return out, nil
}

// Clear empties the cart; clearing an already empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearLines(tx, userID)
	})
}
