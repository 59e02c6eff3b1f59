package postgres

import (
	"context"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/domain/repository"
	"weavewhisper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByManufacturer retrieves all orders referencing the manufacturer, newest first.
func (repo *orderRepository) FindByManufacturer(ctx context.Context, manufacturerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("manufacturer_id = ?", manufacturerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by manufacturer")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindByCustomer retrieves all orders placed by the customer, newest first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderDomainSlice(orderModels), nil
}

// ExistsByIDProductManufacturer reports whether the order exists and references
// both the product and the manufacturer.
func (repo *orderRepository) ExistsByIDProductManufacturer(ctx context.Context, orderID, productID, manufacturerID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND product_id = ? AND manufacturer_id = ?", orderID, productID, manufacturerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check order ownership")
	}

	return count > 0, nil
}

// Update persists the order's lifecycle fields.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"order_status":  string(order.OrderStatus),
			"return_status": string(order.ReturnStatus),
			"delivered_at":  order.DeliveredAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:               data.ID,
		ProductID:        data.ProductID,
		CustomerID:       data.CustomerID,
		ManufacturerID:   data.ManufacturerID,
		SoldAtPriceMinor: data.SoldAtPriceMinor,
		OrderStatus:      entity.OrderStatus(data.OrderStatus),
		ReturnStatus:     entity.ReturnStatus(data.ReturnStatus),
		CreatedAt:        data.CreatedAt,
		DeliveredAt:      data.DeliveredAt,
	}
}

func toOrderDomainSlice(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}
