package services

import (
	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/repository"
)

// Roles are independent facts about a caller, not exclusive states: an
// admin may also sit in an operational group.
type Roles struct {
	Admin        bool
	Manager      bool
	DeliveryCrew bool
}

// Staff reports whether the caller holds full order administration
// rights.
func (r Roles) Staff() bool { return r.Admin || r.Manager }

// Caller is the resolved identity of the current request. It is built
// once per request and passed explicitly into every operation that
// needs it.
type Caller struct {
	ID       uint
	Username string
	Roles    Roles
}

type RoleService struct {
	Users *repository.UserRepository
}

func NewRoleService(users *repository.UserRepository) *RoleService {
	return &RoleService{Users: users}
}

// Resolve loads the admin flag and group memberships for userID.
func (s *RoleService) Resolve(userID uint) (*Caller, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	names, err := s.Users.GroupNames(user.ID)
	if err != nil {
		return nil, err
	}

	roles := Roles{Admin: user.IsAdmin}
	for _, n := range names {
		switch n {
		case entity.GroupManager:
			roles.Manager = true
		case entity.GroupDeliveryCrew:
			roles.DeliveryCrew = true
		}
	}

	return &Caller{ID: user.ID, Username: user.Username, Roles: roles}, nil
}
