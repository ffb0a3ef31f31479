package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
)

// ----- Fake repo -----

type fakeUserRepo struct {
	created   *domain.User
	createErr error

	getID   string
	getUser *domain.User
	getErr  error

	updateID     string
	updateFields map[string]any
	updateErr    error

	deleteID  string
	deleteErr error

	countTotal int64
	countErr   error

	pageOffset int
	pageLimit  int
	pageItems  []domain.User
	pageErr    error
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.ID = "u1"
	r.created = u
	return nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	r.getID = id
	return r.getUser, r.getErr
}

func (r *fakeUserRepo) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return r.countTotal, r.countErr
}

func (r *fakeUserRepo) ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	r.pageOffset, r.pageLimit = offset, limit
	return r.pageItems, r.pageErr
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	r.updateID, r.updateFields = id, fields
	return r.updateErr
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	r.deleteID = id
	return r.deleteErr
}

// ----- Tests -----

func TestUserService_Create_NormalizesIdentity(t *testing.T) {
	fr := &fakeUserRepo{}
	svc := NewUserService(nil, fr)

	u, err := svc.Create(context.Background(), UserInput{
		Username:  ptr("  Ada.L  "),
		Email:     ptr("Ada@Example.COM"),
		FirstName: ptr(" Ada "),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Username != "ada.l" || u.Email != "ada@example.com" || u.FirstName != "Ada" {
		t.Fatalf("unexpected normalization: %+v", u)
	}
	if fr.created != u {
		t.Fatalf("repo did not receive the user")
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(nil, &fakeUserRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   UserInput
		want error
	}{
		{"missing username", UserInput{Email: ptr("a@b.c")}, ErrInvalidUser},
		{"blank email", UserInput{Username: ptr("a"), Email: ptr("  ")}, ErrInvalidUser},
		{"malformed email", UserInput{Username: ptr("a"), Email: ptr("not-an-email")}, ErrInvalidUser},
		{"display-name email", UserInput{Username: ptr("a"), Email: ptr("Ada <a@b.c>")}, ErrInvalidUser},
		{"bad status", UserInput{Username: ptr("a"), Email: ptr("a@b.c"), Status: ptr("gone")}, ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc := NewUserService(nil, &fakeUserRepo{createErr: repo.ErrDuplicate})
	_, err := svc.Create(context.Background(), UserInput{Username: ptr("a"), Email: ptr("a@b.c")})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("want ErrDuplicateUser, got %v", err)
	}
}

func TestUserService_Get_MapsNotFound(t *testing.T) {
	fr := &fakeUserRepo{getErr: repo.ErrNotFound}
	svc := NewUserService(nil, fr)
	if _, err := svc.Get(context.Background(), "x"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}

	boom := errors.New("db down")
	fr.getErr = boom
	if _, err := svc.Get(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("unexpected error passthrough: %v", err)
	}
}

func TestUserService_ListPage_DefaultsAndEmpty(t *testing.T) {
	fr := &fakeUserRepo{}
	svc := NewUserService(nil, fr)

	items, total, err := svc.ListPage(context.Background(), 0, 0)
	if err != nil || total != 0 || items == nil || len(items) != 0 {
		t.Fatalf("empty list: items=%v total=%d err=%v", items, total, err)
	}

	fr.countTotal = 45
	fr.pageItems = []domain.User{{ID: "a"}}
	_, total, err = svc.ListPage(context.Background(), 3, 500)
	if err != nil || total != 45 {
		t.Fatalf("total=%d err=%v", total, err)
	}
	if fr.pageLimit != maxPageSize || fr.pageOffset != 2*maxPageSize {
		t.Fatalf("unexpected window offset=%d limit=%d", fr.pageOffset, fr.pageLimit)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	fr := &fakeUserRepo{getUser: &domain.User{ID: "u1", Status: domain.UserInactive}}
	svc := NewUserService(nil, fr)

	u, err := svc.Update(context.Background(), "u1", UserInput{Status: ptr("inactive"), Phone: ptr(" 555 ")})
	if err != nil || u.ID != "u1" {
		t.Fatalf("Update: %+v err=%v", u, err)
	}
	want := map[string]any{"status": domain.UserInactive, "phone": "555"}
	if len(fr.updateFields) != len(want) {
		t.Fatalf("fields=%v", fr.updateFields)
	}
	for k, v := range want {
		if fr.updateFields[k] != v {
			t.Fatalf("field %s=%v want %v", k, fr.updateFields[k], v)
		}
	}

	fr.updateErr = repo.ErrNotFound
	if _, err := svc.Update(context.Background(), "u1", UserInput{Phone: ptr("1")}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
	fr.updateErr = repo.ErrDuplicate
	if _, err := svc.Update(context.Background(), "u1", UserInput{Email: ptr("b@c.d")}); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("want ErrDuplicateUser, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "u1", UserInput{Username: ptr(" ")}); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("want ErrInvalidUser for blank username, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	fr := &fakeUserRepo{}
	svc := NewUserService(nil, fr)
	if err := svc.Delete(context.Background(), "u1"); err != nil || fr.deleteID != "u1" {
		t.Fatalf("Delete: err=%v id=%q", err, fr.deleteID)
	}
	fr.deleteErr = repo.ErrNotFound
	if err := svc.Delete(context.Background(), "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

// dbUserRepo backs UserService with the real repository functions.
type dbUserRepo struct{}

func (dbUserRepo) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return repo.CreateUser(ctx, db, u)
}

func (dbUserRepo) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}

func (dbUserRepo) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountUsers(ctx, db)
}

func (dbUserRepo) ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	return repo.ListUsersPage(ctx, db, offset, limit)
}

func (dbUserRepo) UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateUser(ctx, db, id, fields)
}

func (dbUserRepo) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteUser(ctx, db, id)
}

func TestUserService_RecreateAfterDelete(t *testing.T) {
	svc := NewUserService(newTestDB(t), dbUserRepo{})
	ctx := context.Background()
	in := UserInput{Username: ptr("Ada"), Email: ptr("Ada@Example.com")}

	u, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("want ErrDuplicateUser while live, got %v", err)
	}
	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound after delete, got %v", err)
	}
	again, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
	if again.Username != "ada" || again.Email != "ada@example.com" {
		t.Fatalf("identity not normalized: %+v", again)
	}
}

func TestFoldCase_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := foldCase("Straße@Example.COM"); got != "strasse@example.com" {
					t.Errorf("foldCase = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
