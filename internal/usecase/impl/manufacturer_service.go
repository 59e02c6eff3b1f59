// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"weavewhisper/internal/domain/entity"
	domainerrors "weavewhisper/internal/domain/errors"
	"weavewhisper/internal/domain/repository"
	"weavewhisper/internal/domain/service"
	"weavewhisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// manufacturerService implements the ManufacturerUsecase interface.
type manufacturerService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	clock     service.Clock
	logger    *slog.Logger
}

// NewManufacturerService is the constructor for manufacturerService.
func NewManufacturerService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ManufacturerUsecase {
	return &manufacturerService{
		txManager: txManager,
		hasher:    hasher,
		clock:     clock,
		logger:    logger,
	}
}

// RegisterManufacturer creates a new seller account after the uniqueness checks
// pass. Checks short-circuit in priority order: email (across customer and
// manufacturer accounts), then brand name, then tax number.
func (srv *manufacturerService) RegisterManufacturer(ctx context.Context, input *usecase.RegisterManufacturerInput) (*usecase.ManufacturerView, error) {
	srv.logger.Info("Registering manufacturer", "email", input.Email, "brandName", input.BrandName)

	var view *usecase.ManufacturerView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		manufacturerRepo := repoFactory.ManufacturerRepo()
		customerRepo := repoFactory.CustomerRepo()

		// 1. Email must be free across every account kind.
		emailTaken, err := customerRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check customer email")
		}
		if !emailTaken {
			emailTaken, err = manufacturerRepo.ExistsByEmail(ctx, input.Email)
			if err != nil {
				return errors.Wrap(err, "failed to check manufacturer email")
			}
		}
		if emailTaken {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}

		// 2. Brand name must be unique among manufacturers.
		brandTaken, err := manufacturerRepo.ExistsByBrandName(ctx, input.BrandName)
		if err != nil {
			return errors.Wrap(err, "failed to check brand name")
		}
		if brandTaken {
			return domainerrors.ErrDuplicateBrandName.WrapMessage("brand name already registered")
		}

		// 3. Tax number must be unique among manufacturers.
		taxTaken, err := manufacturerRepo.ExistsByTaxNumber(ctx, input.TaxNumber)
		if err != nil {
			return errors.Wrap(err, "failed to check tax number")
		}
		if taxTaken {
			return domainerrors.ErrDuplicateTaxNumber.WrapMessage("tax number already registered")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}

		manufacturer := &entity.Manufacturer{
			Email:        input.Email,
			Name:         input.Name,
			BrandName:    input.BrandName,
			TaxNumber:    input.TaxNumber,
			PasswordHash: hash,
		}

		if err := manufacturerRepo.Create(ctx, manufacturer); err != nil {
			return errors.Wrap(err, "failed to create manufacturer")
		}

		view = toManufacturerView(manufacturer)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to register manufacturer")
	}

	return view, nil
}

// DeleteManufacturer removes the manufacturer account. Listings go in the same
// transaction; orders stay behind as the audit trail.
func (srv *manufacturerService) DeleteManufacturer(ctx context.Context, manufacturerID uuid.UUID) error {
	srv.logger.Info("Deleting manufacturer", "manufacturerID", manufacturerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		manufacturerRepo := repoFactory.ManufacturerRepo()

		if _, err := manufacturerRepo.FindByID(ctx, manufacturerID); err != nil {
			if errors.Is(err, repository.ErrManufacturerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "manufacturer not found")
			}

			return errors.Wrap(err, "failed to find manufacturer")
		}

		if _, err := repoFactory.ProductRepo().DeleteByManufacturer(ctx, manufacturerID); err != nil {
			return errors.Wrap(err, "failed to delete manufacturer listings")
		}

		if err := manufacturerRepo.DeleteByID(ctx, manufacturerID); err != nil {
			return errors.Wrap(err, "failed to delete manufacturer")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete manufacturer")
	}

	return nil
}

// DeleteManufacturerListings removes every product of the manufacturer while
// keeping the account.
func (srv *manufacturerService) DeleteManufacturerListings(ctx context.Context, manufacturerID uuid.UUID) error {
	srv.logger.Info("Deleting manufacturer listings", "manufacturerID", manufacturerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ManufacturerRepo().FindByID(ctx, manufacturerID); err != nil {
			if errors.Is(err, repository.ErrManufacturerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "manufacturer not found")
			}

			return errors.Wrap(err, "failed to find manufacturer")
		}

		deleted, err := repoFactory.ProductRepo().DeleteByManufacturer(ctx, manufacturerID)
		if err != nil {
			return errors.Wrap(err, "failed to delete listings")
		}
		srv.logger.Debug("deleted listings", "manufacturerID", manufacturerID, "count", deleted)

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete manufacturer listings")
	}

	return nil
}

// ListProducts returns short views of the manufacturer's current listings.
func (srv *manufacturerService) ListProducts(ctx context.Context, manufacturerID uuid.UUID) ([]*usecase.ProductShortView, error) {
	srv.logger.Debug("Listing products", "manufacturerID", manufacturerID)

	var views []*usecase.ProductShortView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ManufacturerRepo().FindByID(ctx, manufacturerID); err != nil {
			if errors.Is(err, repository.ErrManufacturerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "manufacturer not found")
			}

			return errors.Wrap(err, "failed to find manufacturer")
		}

		products, err := repoFactory.ProductRepo().FindByManufacturer(ctx, manufacturerID)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		views = make([]*usecase.ProductShortView, 0, len(products))
		for _, product := range products {
			views = append(views, toProductShortView(product))
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return views, nil
}

// ListBrandNames returns every registered brand name.
func (srv *manufacturerService) ListBrandNames(ctx context.Context) ([]string, error) {
	var brandNames []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		names, err := repoFactory.ManufacturerRepo().ListBrandNames(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list brand names")
		}
		brandNames = names

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list brand names")
	}

	return brandNames, nil
}

// ListSoldProducts returns the manufacturer's in-flight orders: everything that
// has not reached DELIVERED or CANCELLED yet.
func (srv *manufacturerService) ListSoldProducts(ctx context.Context, manufacturerID uuid.UUID) ([]*usecase.SoldProductView, error) {
	return srv.listManufacturerOrders(ctx, manufacturerID, func(order *entity.Order) bool {
		return order.InFlight()
	})
}

// ListReturnRequests returns delivered orders awaiting a return decision.
func (srv *manufacturerService) ListReturnRequests(ctx context.Context, manufacturerID uuid.UUID) ([]*usecase.SoldProductView, error) {
	return srv.listManufacturerOrders(ctx, manufacturerID, func(order *entity.Order) bool {
		return order.ReturnPending()
	})
}

// listManufacturerOrders loads the manufacturer's orders, keeps those matching
// the filter and enriches each row with the product's name and display image.
func (srv *manufacturerService) listManufacturerOrders(ctx context.Context, manufacturerID uuid.UUID, keep func(*entity.Order) bool) ([]*usecase.SoldProductView, error) {
	var views []*usecase.SoldProductView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ManufacturerRepo().FindByID(ctx, manufacturerID); err != nil {
			if errors.Is(err, repository.ErrManufacturerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "manufacturer not found")
			}

			return errors.Wrap(err, "failed to find manufacturer")
		}

		orders, err := repoFactory.OrderRepo().FindByManufacturer(ctx, manufacturerID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		productRepo := repoFactory.ProductRepo()
		views = make([]*usecase.SoldProductView, 0, len(orders))
		for _, order := range orders {
			if !keep(order) {
				continue
			}

			view := toSoldProductView(order)

			// The product may have been deleted since the sale; the order row
			// still shows, just without name and image.
			product, err := productRepo.FindByID(ctx, order.ProductID)
			if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(err, "failed to load product for order")
			}
			if product != nil {
				view.Name = product.Name
				view.ImageName = product.DisplayImage()
			}

			views = append(views, view)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list manufacturer orders")
	}

	return views, nil
}

// ChangeOrderStatus moves an order owned by the manufacturer to a new
// fulfilment status. A mismatched order/product/manufacturer triple surfaces as
// NotFound, same as a missing entity.
func (srv *manufacturerService) ChangeOrderStatus(ctx context.Context, input *usecase.ChangeOrderStatusInput) error {
	srv.logger.Info("Changing order status",
		"orderID", input.OrderID, "manufacturerID", input.ManufacturerID, "newStatus", input.NewStatus)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := srv.loadOwnedOrder(ctx, repoFactory, input.OrderID, input.ProductID, input.ManufacturerID)
		if err != nil {
			return err
		}

		if err := order.ChangeStatus(input.NewStatus, srv.clock.Now()); err != nil {
			switch {
			case errors.Is(err, entity.ErrOrderDelivered):
				return domainerrors.ErrIllegalStatusChange.WrapMessage("cannot change status of delivered products")
			case errors.Is(err, entity.ErrOrderCancelled):
				return domainerrors.ErrIllegalStatusChange.WrapMessage("cannot change status of cancelled products")
			case errors.Is(err, entity.ErrUnknownOrderStatus):
				return domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
			default:
				return errors.Wrap(err, "failed to change order status")
			}
		}

		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order status")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to change order status")
	}

	return nil
}

// ChangeReturnStatus accepts a requested return. Flipping the return status and
// crediting the refund are one transaction: either both commit or neither does.
func (srv *manufacturerService) ChangeReturnStatus(ctx context.Context, input *usecase.ChangeReturnStatusInput) error {
	srv.logger.Info("Changing return status",
		"orderID", input.OrderID, "manufacturerID", input.ManufacturerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := srv.loadOwnedOrder(ctx, repoFactory, input.OrderID, input.ProductID, input.ManufacturerID)
		if err != nil {
			return err
		}

		if err := order.AcceptReturn(); err != nil {
			return domainerrors.ErrIllegalStatusChange.WrapMessage("cannot change return status of undelivered or unrequested products")
		}

		customerRepo := repoFactory.CustomerRepo()
		customer, err := customerRepo.FindByID(ctx, order.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		customer.CreditBalance(order.SoldAtPriceMinor)

		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist return status")
		}
		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to credit customer balance")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to change return status")
	}

	return nil
}

// loadOwnedOrder resolves the order/product/manufacturer triple and verifies
// the order actually references both the product and the manufacturer. Any
// missing entity or a mismatched triple yields NotFound.
func (srv *manufacturerService) loadOwnedOrder(ctx context.Context, repoFactory repository.RepositoryFactory, orderID, productID, manufacturerID uuid.UUID) (*entity.Order, error) {
	if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if _, err := repoFactory.ManufacturerRepo().FindByID(ctx, manufacturerID); err != nil {
		if errors.Is(err, repository.ErrManufacturerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "manufacturer not found")
		}

		return nil, errors.Wrap(err, "failed to find manufacturer")
	}

	orderRepo := repoFactory.OrderRepo()

	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	owned, err := orderRepo.ExistsByIDProductManufacturer(ctx, orderID, productID, manufacturerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify order ownership")
	}
	if !owned {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "no order exists with that id for this product and manufacturer")
	}

	return order, nil
}

// --- Mapper functions ---
// Explicit projections per response shape; no reflective mapping.

func toManufacturerView(manufacturer *entity.Manufacturer) *usecase.ManufacturerView {
	return &usecase.ManufacturerView{
		ID:        manufacturer.ID,
		Name:      manufacturer.Name,
		Email:     manufacturer.Email,
		BrandName: manufacturer.BrandName,
		TaxNumber: manufacturer.TaxNumber,
		CreatedAt: manufacturer.CreatedAt,
	}
}

func toProductShortView(product *entity.Product) *usecase.ProductShortView {
	return &usecase.ProductShortView{
		ID:         product.ID,
		Name:       product.Name,
		PriceMinor: product.PriceMinor,
		ImageName:  product.DisplayImage(),
	}
}

func toSoldProductView(order *entity.Order) *usecase.SoldProductView {
	return &usecase.SoldProductView{
		OrderID:          order.ID,
		ProductID:        order.ProductID,
		SoldAtPriceMinor: order.SoldAtPriceMinor,
		OrderStatus:      order.OrderStatus,
		ReturnStatus:     order.ReturnStatus,
		OrderDate:        order.CreatedAt,
	}
}
