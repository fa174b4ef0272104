package repository

import (
	"github.com/anantkataria/Anant-Restaurant-API/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.DB
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername runs on tx when one is in progress, nil otherwise.
func (r *UserRepository) FindByUsername(tx *gorm.DB, username string) (*entity.User, error) {
	var user entity.User
	if err := r.conn(tx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GroupNames returns the names of every role group the user belongs to.
func (r *UserRepository) GroupNames(userID uint) ([]string, error) {
	var names []string
	err := r.DB.Table("groups").
		Joins("JOIN user_groups ON user_groups.group_id = groups.id").
		Where("user_groups.user_id = ?", userID).
		Pluck("groups.name", &names).Error
	return names, err
}

// InGroup runs on tx when one is in progress, nil otherwise.
func (r *UserRepository) InGroup(tx *gorm.DB, userID uint, group string) (bool, error) {
	var count int64
	err := r.conn(tx).Table("user_groups").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.name = ?", userID, group).
		Count(&count).Error
	return count > 0, err
}

// GroupMembers lists members of one role group, id ascending.
func (r *UserRepository) GroupMembers(group string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", group).
		Order("users.id ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) AddToGroup(user *entity.User, group string) error {
	g, err := r.findGroup(group)
	if err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Append(g)
}

// RemoveFromGroup drops the membership only, never the user row.
func (r *UserRepository) RemoveFromGroup(user *entity.User, group string) error {
	g, err := r.findGroup(group)
	if err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Delete(g)
}

func (r *UserRepository) findGroup(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
