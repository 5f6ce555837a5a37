// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/transport/http/dto"
	"user_backend/internal/feature/user/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、公開射影とJWTトークンを返します。
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.PublicUser, string, error)
	// Login はユーザーを認証し、成功時に公開射影とJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*usecase.PublicUser, string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - メール重複・バリデーション違反時は400を返却
// - 成功時は公開射影とトークン付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Roles:    req.Roles,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email already in use"})
		case errors.Is(err, domain.ErrValidation):
			slog.Warn("register failed: invalid fields", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		default:
			// 内部障害の詳細は呼び出し側に公開しない
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.PublicUser{ID: user.ID, Email: user.Email},
		Token: token,
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - ユーザー不在時は404、パスワード不一致時は401を返却
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			slog.Warn("login failed: unknown user", "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			slog.Warn("login failed: bad credentials", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.PublicUser{ID: user.ID, Email: user.Email},
		Token: token,
	})
}
