package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

type PlaceOrderRes struct {
	ID    uint            `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// Place converts the user's cart into an order. The read, the order and
// line writes, the total and the cart clear run as one transaction, so
// duplicate submissions cannot consume the same lines twice and no
// failure leaves a partial order behind.
func (s *OrderService) Place(userID uint) (*PlaceOrderRes, error) {
	var out PlaceOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.LinesForOrder(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.StatusUnfulfilled,
			Total:  decimal.Zero,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total := decimal.Zero
		for _, l := range lines {
			ol := entity.OrderLine{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateLine(tx, &ol); err != nil {
				return err
			}
			total = total.Add(l.Price)
		}

		if err := s.Repo.SetTotal(tx, order.ID, total); err != nil {
			return err
		}
		if err := s.CartRepo.ClearLines(tx, userID); err != nil {
			return err
		}

		out = PlaceOrderRes{ID: order.ID, Total: total}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return nil, ErrEmptyCart
		}
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}
	return &out, nil
}

// List returns the orders visible to the caller, id ascending.
func (s *OrderService) List(caller *Caller) ([]entity.Order, error) {
	return s.Repo.ListVisible(caller.ID, caller.Roles.Staff(), caller.Roles.DeliveryCrew)
}

// Get applies the same visibility filter as List; an order outside the
// caller's set is a NotFound, not a Forbidden.
func (s *OrderService) Get(caller *Caller, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetVisible(orderID, caller.ID, caller.Roles.Staff(), caller.Roles.DeliveryCrew)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

// UpdateOrderIn carries the two mutable order fields. A nil pointer
// means the field was absent from the request body.
type UpdateOrderIn struct {
	Status       *string `json:"status"`
	DeliveryCrew *string `json:"deliveryCrewUsername"`
}

// Update applies role-gated changes to status and crew assignment.
//
// Gate: admin, manager, or the delivery-crew member currently assigned
// to this order. Crew reassignment is staff-only; an assigned crew
// caller sending the field at all is rejected. Status is coerced from
// a case-insensitive "true" and applied unconditionally once the gate
// passes. Any other value, absent included, resets to unfulfilled.
func (s *OrderService) Update(caller *Caller, orderID uint, in *UpdateOrderIn) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetForUpdate(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		assigned := caller.Roles.DeliveryCrew &&
			order.DeliveryCrewID != nil && *order.DeliveryCrewID == caller.ID
		if !caller.Roles.Staff() && !assigned {
			return ErrForbidden
		}

		fields := map[string]any{}

		if caller.Roles.Staff() {
			if in.DeliveryCrew != nil && *in.DeliveryCrew != "" {
				crew, err := s.UserRepo.FindByUsername(tx, *in.DeliveryCrew)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrNotFound
					}
					return err
				}
				ok, err := s.UserRepo.InGroup(tx, crew.ID, entity.GroupDeliveryCrew)
				if err != nil {
					return err
				}
				if !ok {
					return ErrInvalidAssignee
				}
				fields["delivery_crew_id"] = crew.ID
			} else {
				// Omitting the field clears the assignee. Kept from the
				// source system; see DESIGN.md.
				fields["delivery_crew_id"] = nil
			}
		} else if in.DeliveryCrew != nil {
			return ErrForbidden
		}

		fields["status"] = coerceStatus(in.Status)
		return s.Repo.UpdateFields(tx, order.ID, fields)
	})
}

// coerceStatus treats anything other than "true" (any case) as
// unfulfilled, absent values included.
func coerceStatus(v *string) string {
	if v != nil && strings.EqualFold(*v, "true") {
		return entity.StatusFulfilled
	}
	return entity.StatusUnfulfilled
}

// Delete is staff-only.
func (s *OrderService) Delete(caller *Caller, orderID uint) error {
	if !caller.Roles.Staff() {
		return ErrForbidden
	}
	affected, err := s.Repo.Delete(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
