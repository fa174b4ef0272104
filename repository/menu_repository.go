// repository/menu_repository.go
package repository

import (
	"github.com/anantkataria/Anant-Restaurant-API/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuItemQuery carries the list filters taken from the query string.
type MenuItemQuery struct {
	Category string // category title
	Search   string // substring of item title
	Ordering string // price|-price|title|-title
	Page     int
	Limit    int
}

// Qualified column names: the category join would otherwise make
// "title" ambiguous.
var menuOrderings = map[string]string{
	"price":  "menu_items.price ASC",
	"-price": "menu_items.price DESC",
	"title":  "menu_items.title ASC",
	"-title": "menu_items.title DESC",
}

func (r *MenuRepository) FindItems(q MenuItemQuery) ([]entity.MenuItem, int64, error) {
	tx := r.DB.Model(&entity.MenuItem{})
	if q.Category != "" {
		tx = tx.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title = ?", q.Category)
	}
	if q.Search != "" {
		tx = tx.Where("menu_items.title LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := menuOrderings[q.Ordering]
	if !ok {
		order = "menu_items.id ASC"
	}

	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	var items []entity.MenuItem
	err := tx.Order(order).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) SaveItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteItem(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) FindCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id ASC").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindCategoryByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}
