// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"weavewhisper/internal/delivery/http/response"
	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ManufacturerHandler holds dependencies for manufacturer-related handlers.
type ManufacturerHandler struct {
	uc     usecase.ManufacturerUsecase
	logger *slog.Logger
}

// NewManufacturerHandler is the constructor for ManufacturerHandler, injected by Fx.
func NewManufacturerHandler(uc usecase.ManufacturerUsecase, logger *slog.Logger) *ManufacturerHandler {
	return &ManufacturerHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerManufacturerRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	BrandName string `json:"brand_name" validate:"required,max=100"`
	TaxNumber string `json:"tax_number" validate:"required,max=64"`
}

type changeOrderStatusRequest struct {
	OrderID        uuid.UUID `json:"order_id" validate:"required"`
	ManufacturerID uuid.UUID `json:"manufacturer_id" validate:"required"`
	ProductID      uuid.UUID `json:"product_id" validate:"required"`
	NewStatus      string    `json:"new_status" validate:"required"`
}

type changeReturnStatusRequest struct {
	OrderID        uuid.UUID `json:"order_id" validate:"required"`
	ManufacturerID uuid.UUID `json:"manufacturer_id" validate:"required"`
	ProductID      uuid.UUID `json:"product_id" validate:"required"`
}

// Register handles the manufacturer registration request.
func (h *ManufacturerHandler) Register(c echo.Context) error {
	var req registerManufacturerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.RegisterManufacturer(c.Request().Context(), &usecase.RegisterManufacturerInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		BrandName: req.BrandName,
		TaxNumber: req.TaxNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Manufacturer registered successfully")
}

// Delete handles account deletion; the manufacturer's listings go with it.
func (h *ManufacturerHandler) Delete(c echo.Context) error {
	manufacturerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteManufacturer(c.Request().Context(), manufacturerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Manufacturer deleted successfully")
}

// DeleteListings removes every product of the manufacturer.
func (h *ManufacturerHandler) DeleteListings(c echo.Context) error {
	manufacturerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteManufacturerListings(c.Request().Context(), manufacturerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listings deleted successfully")
}

// ListProducts returns the manufacturer's current listings.
func (h *ManufacturerHandler) ListProducts(c echo.Context) error {
	manufacturerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	views, err := h.uc.ListProducts(c.Request().Context(), manufacturerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListBrandNames returns every registered brand name.
func (h *ManufacturerHandler) ListBrandNames(c echo.Context) error {
	names, err := h.uc.ListBrandNames(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, names, "")
}

// ListSoldProducts returns the manufacturer's in-flight orders.
func (h *ManufacturerHandler) ListSoldProducts(c echo.Context) error {
	manufacturerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	views, err := h.uc.ListSoldProducts(c.Request().Context(), manufacturerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListReturnRequests returns delivered orders awaiting a return decision.
func (h *ManufacturerHandler) ListReturnRequests(c echo.Context) error {
	manufacturerID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	views, err := h.uc.ListReturnRequests(c.Request().Context(), manufacturerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ChangeOrderStatus moves an order to a new fulfilment status.
func (h *ManufacturerHandler) ChangeOrderStatus(c echo.Context) error {
	var req changeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangeOrderStatus(c.Request().Context(), &usecase.ChangeOrderStatusInput{
		OrderID:        req.OrderID,
		ManufacturerID: req.ManufacturerID,
		ProductID:      req.ProductID,
		NewStatus:      entity.OrderStatus(req.NewStatus),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status changed successfully")
}

// ChangeReturnStatus accepts a requested return.
func (h *ManufacturerHandler) ChangeReturnStatus(c echo.Context) error {
	var req changeReturnStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangeReturnStatus(c.Request().Context(), &usecase.ChangeReturnStatusInput{
		OrderID:        req.OrderID,
		ManufacturerID: req.ManufacturerID,
		ProductID:      req.ProductID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Return status changed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return id, nil
}
