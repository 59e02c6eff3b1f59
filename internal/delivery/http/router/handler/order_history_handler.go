package handler

import (
	"log/slog"
	"net/http"

	"weavewhisper/internal/delivery/http/response"
	"weavewhisper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHistoryHandler holds dependencies for customer order history handlers.
type OrderHistoryHandler struct {
	uc     usecase.OrderHistoryUsecase
	logger *slog.Logger
}

// NewOrderHistoryHandler is the constructor for OrderHistoryHandler, injected by Fx.
func NewOrderHistoryHandler(uc usecase.OrderHistoryUsecase, logger *slog.Logger) *OrderHistoryHandler {
	return &OrderHistoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCustomerOrderHistory returns all orders of the customer, newest first.
func (h *OrderHistoryHandler) GetCustomerOrderHistory(c echo.Context) error {
	customerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	views, err := h.uc.GetCustomerOrderHistory(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}
