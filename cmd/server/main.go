package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"user_backend/internal/app/router"
	useradapters "user_backend/internal/feature/user/adapters"
	userhandler "user_backend/internal/feature/user/transport/handler"
	userusecase "user_backend/internal/feature/user/usecase"
	"user_backend/internal/platform/config"
	infradb "user_backend/internal/platform/db"
	jwtmw "user_backend/internal/platform/jwt"
	"user_backend/internal/platform/password"
	infraredis "user_backend/internal/platform/redis"
)

func main() {
	// 設定は起動時に一度だけ読み込む（シークレットを含む）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DatabaseDSN)

	// Redis（未設定・接続不可ならキャッシュなしで稼働）
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := useradapters.NewUserGorm(db)
	cachedUserRepo := useradapters.NewCachingUserRepository(rdb, cfg.CacheTTL, userRepo, "users")

	// Platform services
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	generator := jwtmw.NewGenerator(cfg.JWTSecret)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Usecase
	authUC := userusecase.NewAuthUsecase(cachedUserRepo, hasher, generator, userusecase.TokenPolicy{
		RegisterTTL: cfg.RegisterTokenTTL,
		LoginTTL:    cfg.LoginTokenTTL,
	})
	userUC := userusecase.NewUserUsecase(cachedUserRepo, hasher)

	// Handler
	authH := userhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)

	// ルータ生成
	r := router.NewRouter(authH, userH, verifier)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
