package chart

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VivXwan/astrology-app/internal/adapters/primary/http/middlewares"
	"github.com/VivXwan/astrology-app/internal/domain"
	"github.com/VivXwan/astrology-app/internal/ports/usecase"
)

type Controller struct {
	Charts usecase.IChartUsecase
	AuthMW gin.HandlerFunc
	Log    *slog.Logger
}

func New(charts usecase.IChartUsecase, authMW gin.HandlerFunc, log *slog.Logger) *Controller {
	return &Controller{
		Charts: charts,
		AuthMW: authMW,
		Log:    log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/charts", c.AuthMW)
	group.POST("", c.generate)
	group.GET("/:id", c.getByID)
}

// generate рассчитывает полную карту по данным рождения
func (c *Controller) generate(ctx *gin.Context) {
	userID, ok := middlewares.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req domain.ChartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind chart request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := c.Charts.Generate(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// getByID возвращает ранее рассчитанную карту владельца
func (c *Controller) getByID(ctx *gin.Context) {
	userID, ok := middlewares.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	chartID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart id"})
		return
	}

	data, err := c.Charts.GetByID(ctx.Request.Context(), userID, chartID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// writeError транслирует ошибки usecase в HTTP-статусы.
// Причины ошибок расчёта и хранилища клиенту не отдаются.
func (c *Controller) writeError(ctx *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
	case domain.IsCalculationError(err):
		c.Log.Error("chart calculation failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed"})
	default:
		c.Log.Error("chart request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
