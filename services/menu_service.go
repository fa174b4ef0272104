// services/menu_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

type CategoryIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) ListItems(q repository.MenuItemQuery) ([]entity.MenuItem, int64, error) {
	return s.Repo.FindItems(q)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItemByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) CreateItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if _, err := s.Repo.FindCategoryByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.FindCategoryByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Title = in.Title
	item.Price = in.Price
	item.Featured = in.Featured
	item.CategoryID = in.CategoryID
	if err := s.Repo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(id uint) error {
	affected, err := s.Repo.DeleteItem(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.Repo.FindCategories()
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.Repo.CreateCategory(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug already exists", ErrInvalidInput)
		}
		return nil, err
	}
	return cat, nil
}
