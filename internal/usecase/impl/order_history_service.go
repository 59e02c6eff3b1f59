package impl

import (
	"context"
	"log/slog"

	"weavewhisper/config"
	"weavewhisper/internal/domain/entity"
	domainerrors "weavewhisper/internal/domain/errors"
	"weavewhisper/internal/domain/repository"
	"weavewhisper/internal/domain/service"
	"weavewhisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderHistoryService implements the OrderHistoryUsecase interface.
type orderHistoryService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	cfg       *config.Config
	logger    *slog.Logger
}

// NewOrderHistoryService is the constructor for orderHistoryService.
func NewOrderHistoryService(
	txManager repository.TransactionManager,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderHistoryUsecase {
	return &orderHistoryService{
		txManager: txManager,
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetCustomerOrderHistory returns all orders of the customer newest first. Each
// row carries the brand name when the product's manufacturer still exists, the
// delivery date for delivered orders, and whether the return window is open.
func (srv *orderHistoryService) GetCustomerOrderHistory(ctx context.Context, customerID uuid.UUID) ([]*usecase.OrderHistoryView, error) {
	srv.logger.Debug("Getting customer order history", "customerID", customerID)

	var views []*usecase.OrderHistoryView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CustomerRepo().FindByID(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		// Repository returns orders sorted created_at descending.
		orders, err := repoFactory.OrderRepo().FindByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list customer orders")
		}

		now := srv.clock.Now()
		window := srv.cfg.Marketplace.ReturnWindow()
		productRepo := repoFactory.ProductRepo()
		manufacturerRepo := repoFactory.ManufacturerRepo()

		views = make([]*usecase.OrderHistoryView, 0, len(orders))
		for _, order := range orders {
			view := &usecase.OrderHistoryView{
				OrderID:          order.ID,
				ProductID:        order.ProductID,
				SoldAtPriceMinor: order.SoldAtPriceMinor,
				OrderStatus:      order.OrderStatus,
				ReturnStatus:     order.ReturnStatus,
				OrderDate:        order.CreatedAt,
				ReturnAvailable:  order.ReturnAvailable(now, window),
			}

			if order.OrderStatus == entity.OrderStatusDelivered {
				view.DeliveryDate = order.DeliveredAt
			}

			product, err := productRepo.FindByID(ctx, order.ProductID)
			if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(err, "failed to load product for order")
			}
			if product != nil {
				view.Name = product.Name
				view.ImageName = product.DisplayImage()

				// Brand name only while the manufacturer account still exists.
				manufacturer, err := manufacturerRepo.FindByID(ctx, product.ManufacturerID)
				if err != nil && !errors.Is(err, repository.ErrManufacturerNotFound) {
					return errors.Wrap(err, "failed to load manufacturer for order")
				}
				if manufacturer != nil {
					view.BrandName = manufacturer.BrandName
				}
			}

			views = append(views, view)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer order history")
	}

	return views, nil
}
