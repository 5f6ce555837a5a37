package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/transport/http/dto"
	"user_backend/internal/feature/user/usecase"
)

// UserUsecase はユーザープロファイル操作のユースケースを定義します。
type UserUsecase interface {
	// List はすべてのユーザーを取得します。
	List(ctx context.Context) ([]entity.User, error)
	// Get はIDでユーザーを取得します。
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Update は指定されたフィールドのみを変更して永続化します。
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.User, error)
	// Delete はIDでユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザープロファイルCRUDのHTTPリクエストを処理します。
// これらのルートはすべてJWTミドルウェアの背後に配置されます。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// parseID はパスパラメータ:idをuintに変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// List はGET /usersを処理します。パスワードハッシュは射影で除外されます。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	res := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, dto.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Get はGET /users/:idを処理します。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		slog.Error("failed to get user", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update はPUT /users/:idを処理します。部分更新で、パスワードが
// 指定された場合は再ハッシュ化されてから保存されます。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "user_id", id)
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateInput{
		Email:    req.Email,
		Name:     req.Name,
		Age:      req.Age,
		Roles:    req.Roles,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email already in use"})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		default:
			slog.Error("failed to update user", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	slog.Info("user updated", "user_id", id)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete はDELETE /users/:idを処理します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		slog.Error("failed to delete user", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	slog.Info("user deleted", "user_id", id)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
