package usecase

import (
	"context"
	"fmt"

	"user_backend/internal/feature/user/domain/entity"
)

// UpdateInput はユーザー部分更新の入力です。nilのフィールドは変更されません。
type UpdateInput struct {
	Email    *string
	Name     *string
	Age      *int
	Roles    entity.RoleList
	Password *string
}

// userUsecase はユーザープロファイルのCRUDロジックを実装します。
type userUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, hasher PasswordHasher) *userUsecase {
	return &userUsecase{users: users, hasher: hasher}
}

// List はすべてのユーザーを取得します。
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get はIDでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update は指定されたフィールドのみを変更して永続化します。
// パスワードが指定された場合は平文を保存せず、再ハッシュ化してから保存します。
func (u *userUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Roles != nil {
		user.Roles = in.Roles
	}
	if in.Password != nil {
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete はIDでユーザーを削除します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
