package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"user_backend/internal/feature/user/domain/entity"
)

// mockUserRepository はテスト用のUserRepositoryモック実装です。
type mockUserRepository struct {
	createFn      func(ctx context.Context, u *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn    func(ctx context.Context, id uint) (*entity.User, error)
	findAllFn     func(ctx context.Context) ([]entity.User, error)
	updateFn      func(ctx context.Context, u *entity.User) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func cachedTestUser() *entity.User {
	return &entity.User{
		ID:       7,
		Email:    "a@x.com",
		Name:     "Alice Smith",
		Age:      25,
		Roles:    entity.RoleList{entity.RoleUser},
		Password: "stored-hash",
	}
}

// TestNewCachingUserRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingUserRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "users",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingUserRepository(nil, tt.ttl, &mockUserRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingUserRepository_FindByID_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部リポジトリを直接呼び出すことを検証します。
func TestCachingUserRepository_FindByID_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return cachedTestUser(), nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingUserRepository(nil, 5*time.Minute, inner, "users")

	user, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected user 7, got %d", user.ID)
	}
}

// TestCachingUserRepository_FindByID_CacheHit はキャッシュヒット時にRedisからデータを返し、内部リポジトリを呼ばないことを検証します。
func TestCachingUserRepository_FindByID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(cachedTestUser())
	mock.ExpectGet("users:id:7").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	user, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if user.Email != "a@x.com" {
		t.Errorf("unexpected user from cache: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingUserRepository_FindByID_CacheMiss はキャッシュミス時にDBからデータを取得し、キャッシュに保存することを検証します。
func TestCachingUserRepository_FindByID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := cachedTestUser()
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("users:id:7").RedisNil()
	// Set cache after fetching from inner
	mock.ExpectSet("users:id:7", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	user, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected user 7, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingUserRepository_FindByID_InnerError は内部リポジトリがエラーを返した場合にそのエラーが伝播されることを検証します。
func TestCachingUserRepository_FindByID_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	mock.ExpectGet("users:id:7").RedisNil()

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	_, err := repo.FindByID(context.Background(), 7)

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingUserRepository_FindAll_CacheMiss は一覧取得のキャッシュミス時にDBへフォールバックすることを検証します。
func TestCachingUserRepository_FindAll_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.User{*cachedTestUser()}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("users:all").RedisNil()
	mock.ExpectSet("users:all", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findAllFn: func(ctx context.Context) ([]entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	users, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user, got %d", len(users))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingUserRepository_FindByEmail_Passthrough は認証経路のメール検索がキャッシュを経由しないことを検証します。
func TestCachingUserRepository_FindByEmail_Passthrough(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	innerCalled := false
	inner := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			innerCalled = true
			return cachedTestUser(), nil
		},
	}

	// No redis expectations: any cache access would fail the test
	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("expected inner repository to be called")
	}
	if user.ID != 7 {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingUserRepository_Update_Invalidates は更新時に関連キャッシュエントリが削除されることを検証します。
func TestCachingUserRepository_Update_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("users:id:7", "users:all").SetVal(2)

	repo := NewCachingUserRepository(rdb, 5*time.Minute, &mockUserRepository{}, "users")
	if err := repo.Update(context.Background(), cachedTestUser()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingUserRepository_Delete_Invalidates は削除時に関連キャッシュエントリが削除されることを検証します。
func TestCachingUserRepository_Delete_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("users:id:7", "users:all").SetVal(2)

	repo := NewCachingUserRepository(rdb, 5*time.Minute, &mockUserRepository{}, "users")
	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingUserRepository_Update_InnerErrorSkipsInvalidation は内部更新が失敗した場合に
// キャッシュ削除が行われないことを検証します。
func TestCachingUserRepository_Update_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	inner := &mockUserRepository{
		updateFn: func(ctx context.Context, u *entity.User) error {
			return expectedErr
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	err := repo.Update(context.Background(), cachedTestUser())

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}
