package services

import (
	"errors"
	"testing"
	"time"

	"github.com/anantkataria/Anant-Restaurant-API/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	user, err := svc.Register("alice", "Alice@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email must be normalized, got %s", user.Email)
	}
	if user.Password == "s3cret-pass" {
		t.Fatal("password must be stored hashed")
	}

	token, _, err := svc.Login("alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("alice", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login("nobody", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register("alice", "other@example.com", "s3cret-pass")
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestRoleResolver(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name   string
		admin  bool
		groups []string
		want   Roles
	}{
		{"customer", false, nil, Roles{}},
		{"manager", false, []string{"Manager"}, Roles{Manager: true}},
		{"crew", false, []string{"Delivery Crew"}, Roles{DeliveryCrew: true}},
		{"admin", true, nil, Roles{Admin: true}},
		{"admin crew", true, []string{"Delivery Crew"}, Roles{Admin: true, DeliveryCrew: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := createUser(t, db, "user-"+tc.name, tc.admin, tc.groups...)
			caller := callerFor(t, db, user)
			if caller.Roles != tc.want {
				t.Fatalf("roles = %+v, want %+v", caller.Roles, tc.want)
			}
			if caller.Username != user.Username {
				t.Fatalf("username = %s, want %s", caller.Username, user.Username)
			}
		})
	}

	t.Run("staff shorthand", func(t *testing.T) {
		if (Roles{Manager: true}).Staff() != true || (Roles{Admin: true}).Staff() != true {
			t.Fatal("manager and admin are staff")
		}
		if (Roles{DeliveryCrew: true}).Staff() {
			t.Fatal("crew alone is not staff")
		}
	})
}
