package auth

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/VivXwan/astrology-app/internal/domain"
	authUsecase "github.com/VivXwan/astrology-app/internal/usecases/auth"

	"github.com/VivXwan/astrology-app/internal/ports/usecase"
)

type Controller struct {
	Auth usecase.IAuthUsecase
	Log  *slog.Logger
}

func New(auth usecase.IAuthUsecase, log *slog.Logger) *Controller {
	return &Controller{
		Auth: auth,
		Log:  log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/users", c.register)
	router.POST("/login", c.login)
	router.POST("/refresh", c.refresh)
	router.POST("/logout", c.logout)
}

func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := c.Auth.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := c.Auth.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, pair)
}

func (c *Controller) refresh(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := c.Auth.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, pair)
}

func (c *Controller) logout(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := c.Auth.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// writeError транслирует ошибки usecase в HTTP-статусы.
// Детали внутренних ошибок клиенту не отдаются.
func (c *Controller) writeError(ctx *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, authUsecase.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.Log.Error("auth request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
