package handler

import (
	"log/slog"
	"net/http"

	"sagedo/internal/delivery/http/response"
	"sagedo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the back-office aggregate handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stats returns the back-office dashboard numbers.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	ordersByStatus := make(map[string]int64, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		ordersByStatus[string(status)] = count
	}

	recentUsers := make([]userView, 0, len(stats.RecentUsers))
	for _, user := range stats.RecentUsers {
		recentUsers = append(recentUsers, toUserView(user))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"totalUsers":     stats.TotalUsers,
		"signupsToday":   stats.SignupsToday,
		"totalLogins":    stats.TotalLogins,
		"ordersByStatus": ordersByStatus,
		"tokensEarned":   stats.TokensEarned,
		"recentUsers":    recentUsers,
	}, "")
}
