package impl

import (
	"context"
	"testing"
	"time"

	"weavewhisper/internal/domain/entity"
	domainerrors "weavewhisper/internal/domain/errors"
	"weavewhisper/internal/domain/repository"
	mockRepo "weavewhisper/internal/mocks/repository"
	"weavewhisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func registerInput() *usecase.RegisterManufacturerInput {
	return &usecase.RegisterManufacturerInput{
		Name:      "Ada Weaver",
		Email:     "ada@looms.example",
		Password:  "Password123!",
		BrandName: "Looms & Co",
		TaxNumber: "TAX-4711",
	}
}

func TestManufacturerService_RegisterManufacturer_EmailTakenByCustomer(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	input := registerInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)
	})

	view, err := fx.service.RegisterManufacturer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestManufacturerService_RegisterManufacturer_EmailTakenByManufacturer(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	input := registerInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)
	})

	view, err := fx.service.RegisterManufacturer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestManufacturerService_RegisterManufacturer_DuplicateBrandName(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	input := registerInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByBrandName(ctx, input.BrandName).Return(true, nil)
	})

	view, err := fx.service.RegisterManufacturer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateBrandName))
}

func TestManufacturerService_RegisterManufacturer_DuplicateTaxNumber(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	input := registerInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByBrandName(ctx, input.BrandName).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByTaxNumber(ctx, input.TaxNumber).Return(true, nil)
	})

	view, err := fx.service.RegisterManufacturer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateTaxNumber))
}

func TestManufacturerService_RegisterManufacturer_HashError(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	input := registerInput()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByBrandName(ctx, input.BrandName).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByTaxNumber(ctx, input.TaxNumber).Return(false, nil)

		fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))
	})

	view, err := fx.service.RegisterManufacturer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestManufacturerService_DeleteManufacturer_NotFound(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(nil, repository.ErrManufacturerNotFound)
	})

	err := fx.service.DeleteManufacturer(ctx, manufacturerID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestManufacturerService_ListSoldProducts_ManufacturerNotFound(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(nil, repository.ErrManufacturerNotFound)
	})

	views, err := fx.service.ListSoldProducts(ctx, manufacturerID)

	assert.Error(t, err)
	assert.Nil(t, views)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

// ownedOrderMocks wires the happy path of the ownership resolution so status
// change tests only vary the order itself.
func ownedOrderMocks(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory, order *entity.Order) {
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
	factory.EXPECT().ProductRepo().Return(mockProductRepo)
	factory.EXPECT().OrderRepo().Return(mockOrderRepo)

	mockProductRepo.EXPECT().
		FindByID(ctx, order.ProductID).
		Return(&entity.Product{ID: order.ProductID, ManufacturerID: order.ManufacturerID}, nil)
	mockManufacturerRepo.EXPECT().
		FindByID(ctx, order.ManufacturerID).
		Return(&entity.Manufacturer{ID: order.ManufacturerID}, nil)
	mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mockOrderRepo.EXPECT().
		ExistsByIDProductManufacturer(ctx, order.ID, order.ProductID, order.ManufacturerID).
		Return(true, nil)
}

func TestManufacturerService_ChangeOrderStatus_DeliveredIsTerminal(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	deliveredAt := testNow.Add(-time.Hour)
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		ManufacturerID: uuid.New(),
		OrderStatus:    entity.OrderStatusDelivered,
		ReturnStatus:   entity.ReturnStatusNone,
		DeliveredAt:    &deliveredAt,
	}
	input := &usecase.ChangeOrderStatusInput{
		OrderID:        order.ID,
		ManufacturerID: order.ManufacturerID,
		ProductID:      order.ProductID,
		NewStatus:      entity.OrderStatusShipped,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		ownedOrderMocks(t, ctx, factory, order)
	})

	err := fx.service.ChangeOrderStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalStatusChange))
	assert.Contains(t, err.Error(), "cannot change status of delivered products")
}

func TestManufacturerService_ChangeOrderStatus_CancelledIsTerminal(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		ManufacturerID: uuid.New(),
		OrderStatus:    entity.OrderStatusCancelled,
		ReturnStatus:   entity.ReturnStatusNone,
	}
	input := &usecase.ChangeOrderStatusInput{
		OrderID:        order.ID,
		ManufacturerID: order.ManufacturerID,
		ProductID:      order.ProductID,
		NewStatus:      entity.OrderStatusShipped,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		ownedOrderMocks(t, ctx, factory, order)
	})

	err := fx.service.ChangeOrderStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalStatusChange))
	assert.Contains(t, err.Error(), "cannot change status of cancelled products")
}

func TestManufacturerService_ChangeOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		ManufacturerID: uuid.New(),
		OrderStatus:    entity.OrderStatusPlaced,
		ReturnStatus:   entity.ReturnStatusNone,
	}
	input := &usecase.ChangeOrderStatusInput{
		OrderID:        order.ID,
		ManufacturerID: order.ManufacturerID,
		ProductID:      order.ProductID,
		NewStatus:      entity.OrderStatus("TELEPORTED"),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		ownedOrderMocks(t, ctx, factory, order)
	})

	err := fx.service.ChangeOrderStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestManufacturerService_ChangeOrderStatus_OwnershipMismatch(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		ManufacturerID: uuid.New(),
		OrderStatus:    entity.OrderStatusPlaced,
		ReturnStatus:   entity.ReturnStatusNone,
	}
	otherManufacturerID := uuid.New()
	input := &usecase.ChangeOrderStatusInput{
		OrderID:        order.ID,
		ManufacturerID: otherManufacturerID,
		ProductID:      order.ProductID,
		NewStatus:      entity.OrderStatusShipped,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockProductRepo.EXPECT().
			FindByID(ctx, order.ProductID).
			Return(&entity.Product{ID: order.ProductID, ManufacturerID: order.ManufacturerID}, nil)
		mockManufacturerRepo.EXPECT().
			FindByID(ctx, otherManufacturerID).
			Return(&entity.Manufacturer{ID: otherManufacturerID}, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		mockOrderRepo.EXPECT().
			ExistsByIDProductManufacturer(ctx, order.ID, order.ProductID, otherManufacturerID).
			Return(false, nil)
	})

	err := fx.service.ChangeOrderStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestManufacturerService_ChangeOrderStatus_OrderNotFound(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	input := &usecase.ChangeOrderStatusInput{
		OrderID:        orderID,
		ManufacturerID: manufacturerID,
		ProductID:      productID,
		NewStatus:      entity.OrderStatusShipped,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)

		mockProductRepo.EXPECT().
			FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, ManufacturerID: manufacturerID}, nil)
		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	err := fx.service.ChangeOrderStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestManufacturerService_ChangeReturnStatus_NotRequested(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	deliveredAt := testNow.Add(-time.Hour)
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		CustomerID:     uuid.New(),
		ManufacturerID: uuid.New(),
		OrderStatus:    entity.OrderStatusDelivered,
		ReturnStatus:   entity.ReturnStatusNone,
		DeliveredAt:    &deliveredAt,
	}
	input := &usecase.ChangeReturnStatusInput{
		OrderID:        order.ID,
		ManufacturerID: order.ManufacturerID,
		ProductID:      order.ProductID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		ownedOrderMocks(t, ctx, factory, order)
	})

	err := fx.service.ChangeReturnStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalStatusChange))
	assert.Equal(t, entity.ReturnStatusNone, order.ReturnStatus)
}

func TestManufacturerService_ChangeReturnStatus_NotDelivered(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		CustomerID:     uuid.New(),
		ManufacturerID: uuid.New(),
		OrderStatus:    entity.OrderStatusShipped,
		ReturnStatus:   entity.ReturnStatusRequested,
	}
	input := &usecase.ChangeReturnStatusInput{
		OrderID:        order.ID,
		ManufacturerID: order.ManufacturerID,
		ProductID:      order.ProductID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		ownedOrderMocks(t, ctx, factory, order)
	})

	err := fx.service.ChangeReturnStatus(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalStatusChange))
	assert.Equal(t, entity.ReturnStatusRequested, order.ReturnStatus)
}
