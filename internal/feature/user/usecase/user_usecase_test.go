package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
)

func storedUser() *entity.User {
	return &entity.User{
		ID:       7,
		Email:    "a@x.com",
		Name:     "Alice Smith",
		Age:      25,
		Roles:    entity.RoleList{entity.RoleUser},
		Password: "stored-hash",
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUserUsecase_List(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.User, error) {
			return []entity.User{*storedUser()}, nil
		},
	}

	uc := NewUserUsecase(mockRepo, &mockHasher{})
	users, err := uc.List(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].ID != 7 {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestUserUsecase_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		user, err := uc.Get(context.Background(), 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "a@x.com" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{}, &mockHasher{})
		_, err := uc.Get(context.Background(), 404)

		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUsecase_Update(t *testing.T) {
	t.Run("partial update leaves absent fields unchanged", func(t *testing.T) {
		var saved *entity.User
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				saved = user
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		user, err := uc.Update(context.Background(), 7, UpdateInput{Name: strPtr("Alicia Smith")})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("expected update to be persisted")
		}
		if user.Name != "Alicia Smith" {
			t.Errorf("expected updated name, got %q", user.Name)
		}
		if user.Email != "a@x.com" || user.Age != 25 || user.Password != "stored-hash" {
			t.Errorf("unchanged fields were modified: %+v", user)
		}
	})

	t.Run("supplied password is rehashed before persisting", func(t *testing.T) {
		var saved *entity.User
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				saved = user
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo, bcryptTestHasher{})
		_, err := uc.Update(context.Background(), 7, UpdateInput{Password: strPtr("newsecret")})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Password == "newsecret" || saved.Password == "stored-hash" {
			t.Error("expected password to be rehashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("newsecret")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("multiple fields at once", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		user, err := uc.Update(context.Background(), 7, UpdateInput{
			Email: strPtr("b@x.com"),
			Age:   intPtr(30),
			Roles: entity.RoleList{entity.RoleAdmin},
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "b@x.com" || user.Age != 30 {
			t.Errorf("unexpected updated user: %+v", user)
		}
		if len(user.Roles) != 1 || user.Roles[0] != entity.RoleAdmin {
			t.Errorf("unexpected roles: %v", user.Roles)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{}, &mockHasher{})
		_, err := uc.Update(context.Background(), 404, UpdateInput{Name: strPtr("Nobody Here")})

		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		deleted := uint(0)
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		if err := uc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 7 {
			t.Errorf("expected user 7 to be deleted, got %d", deleted)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return domain.ErrUserNotFound
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		err := uc.Delete(context.Background(), 404)

		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
