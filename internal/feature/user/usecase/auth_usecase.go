// Package usecase はuserフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
)

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// ログイン時にbcrypt比較が常に実行されることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll はすべてのユーザーを取得します。
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update は既存ユーザーの変更を永続化します。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードのソルト付きハッシュを生成します。
	Hash(plaintext string) (string, error)
	// Verify は平文パスワードがハッシュと一致するかを返します。
	Verify(plaintext, hash string) bool
}

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, ttl time.Duration) (string, error)
}

// TokenPolicy は発行されるトークンの有効期間を定義します。
// 登録時（24h）とログイン時（1h）で意図的に異なる値を持ちます。
type TokenPolicy struct {
	RegisterTTL time.Duration
	LoginTTL    time.Duration
}

// RegisterInput は新規ユーザー登録の入力です。
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Age      int
	Roles    entity.RoleList
}

// PublicUser はAPIレスポンスに公開されるユーザーの射影です。
// パスワードハッシュは含まれません。
type PublicUser struct {
	ID    uint
	Email string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenGenerator
	policy TokenPolicy
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenGenerator, policy TokenPolicy) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		policy: policy,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、トークンを発行します。
// メールアドレスの事前チェックはハッシュ化コストを節約するためのもので、
// 最終的な一意性の保証はストアのユニーク制約（Create時のdomain.ErrEmailAlreadyExists）が担います。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*PublicUser, string, error) {
	// 事前チェック: 既存メールアドレスならハッシュ化前に失敗させる
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    in.Email,
		Name:     in.Name,
		Age:      in.Age,
		Roles:    in.Roles,
		Password: hashed,
	}
	// 同時登録のレースでは事前チェックを両者が通過し得るため、
	// ここで返るdomain.ErrEmailAlreadyExistsが正式な競合シグナルとなる
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, u.policy.RegisterTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return &PublicUser{ID: user.ID, Email: user.Email}, token, nil
}

// Login はユーザーを認証し、成功時に公開射影とJWTトークンを返します。
// 「ユーザー不在」と「パスワード不一致」は呼び出し側の契約上区別されますが、
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*PublicUser, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// 応答時間がメールアドレスの存在を漏らさないようダミーハッシュと比較
			u.hasher.Verify(password, dummyPasswordHash)
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if !u.hasher.Verify(password, user.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, u.policy.LoginTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return &PublicUser{ID: user.ID, Email: user.Email}, token, nil
}
