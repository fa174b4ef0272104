package services

import (
	"errors"

	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/repository"

	"gorm.io/gorm"
)

// GroupService manages the Manager and Delivery Crew memberships.
type GroupService struct {
	Users *repository.UserRepository
}

func NewGroupService(users *repository.UserRepository) *GroupService {
	return &GroupService{Users: users}
}

type GroupMemberIn struct {
	Username string `json:"username" binding:"required"`
}

func (s *GroupService) Members(group string) ([]entity.User, error) {
	return s.Users.GroupMembers(group)
}

func (s *GroupService) Add(group, username string) error {
	user, err := s.Users.FindByUsername(nil, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	member, err := s.Users.InGroup(nil, user.ID, group)
	if err != nil {
		return err
	}
	if member {
		return ErrAlreadyMember
	}
	return s.Users.AddToGroup(user, group)
}

// Remove drops the membership by user id; the user record itself is
// untouched.
func (s *GroupService) Remove(group string, userID uint) error {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Users.RemoveFromGroup(user, group)
}
