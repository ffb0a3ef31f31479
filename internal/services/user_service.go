// Package services – UserService
//
// This file implements the UserService, which manages customer accounts. It
// normalizes identity fields (username and email are case-folded so lookups
// are case-insensitive), validates status values, and coordinates repository
// operations for creating, reading, listing, updating and deleting users.
//
// Service-level errors (e.g., ErrUserNotFound, ErrDuplicateUser) are returned
// for predictable cases so handlers can map them to API errors consistently.
package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error
	GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error)
	CountUsers(ctx context.Context, db *gorm.DB) (int64, error)
	ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error)
	UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error
	DeleteUser(ctx context.Context, db *gorm.DB, id string) error
}

// UserInput carries the writable user attributes. On update, nil pointers
// leave the stored value unchanged.
type UserInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Status    *string
}

// UserService provides account operations.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Create validates in and inserts a new user. Username and email are
// required.
func (s *UserService) Create(ctx context.Context, in UserInput) (*domain.User, error) {
	u := &domain.User{}
	if err := s.apply(u, in); err != nil {
		return nil, err
	}
	if u.Username == "" || u.Email == "" {
		return nil, ErrInvalidUser
	}
	if err := s.Repo.CreateUser(ctx, s.DB, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.Repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListPage returns a page of users and the total count.
func (s *UserService) ListPage(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	return listPage(page, pageSize,
		func() (int64, error) { return s.Repo.CountUsers(ctx, s.DB) },
		func(offset, limit int) ([]domain.User, error) {
			return s.Repo.ListUsersPage(ctx, s.DB, offset, limit)
		},
	)
}

// Update applies the non-nil fields of in to user id and returns the stored
// result.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (*domain.User, error) {
	var patch domain.User
	if err := s.apply(&patch, in); err != nil {
		return nil, err
	}
	if (in.Username != nil && patch.Username == "") || (in.Email != nil && patch.Email == "") {
		return nil, ErrInvalidUser
	}

	fields := map[string]any{}
	set := func(col string, present bool, v string) {
		if present {
			fields[col] = v
		}
	}
	set("username", in.Username != nil, patch.Username)
	set("first_name", in.FirstName != nil, patch.FirstName)
	set("last_name", in.LastName != nil, patch.LastName)
	set("email", in.Email != nil, patch.Email)
	set("phone", in.Phone != nil, patch.Phone)
	set("status", in.Status != nil, patch.Status)

	if len(fields) > 0 {
		if err := s.Repo.UpdateUser(ctx, s.DB, id, fields); err != nil {
			switch {
			case errors.Is(err, repo.ErrNotFound):
				return nil, ErrUserNotFound
			case errors.Is(err, repo.ErrDuplicate):
				return nil, ErrDuplicateUser
			}
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes user id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteUser(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// apply copies normalized values of in onto u.
func (s *UserService) apply(u *domain.User, in UserInput) error {
	if in.Username != nil {
		u.Username = foldCase(strings.TrimSpace(*in.Username))
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != "" {
			addr, err := mail.ParseAddress(email)
			if err != nil || addr.Address != email {
				return ErrInvalidUser
			}
		}
		u.Email = foldCase(email)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Status != nil {
		st := strings.ToUpper(strings.TrimSpace(*in.Status))
		if st != domain.UserActive && st != domain.UserInactive {
			return ErrInvalidStatus
		}
		u.Status = st
	}
	return nil
}

// foldCase case-folds s. A Caser may keep state, so each call gets its own.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
