package router

import (
	"github.com/gin-gonic/gin"

	userhandler "user_backend/internal/feature/user/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
	jwtmw "user_backend/internal/platform/jwt"
)

// NewRouter はすべてのルートを配線したginエンジンを生成します。
func NewRouter(authHandler *userhandler.AuthHandler, userHandler *userhandler.UserHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/", platformhandler.Home)
	r.GET("/healthz", platformhandler.Health)

	users := r.Group("/users")
	// 新規ユーザー登録
	users.POST("/register", authHandler.Register)
	// ログイン（JWT 発行）
	users.POST("/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := users.Group("")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("", userHandler.List)
		auth.GET("/:id", userHandler.Get)
		auth.PUT("/:id", userHandler.Update)
		auth.DELETE("/:id", userHandler.Delete)
	}

	return r
}
