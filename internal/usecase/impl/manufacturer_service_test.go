package impl

import (
	"context"
	"testing"
	"time"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/domain/repository"
	mockRepo "weavewhisper/internal/mocks/repository"
	mockSvc "weavewhisper/internal/mocks/service"
	"weavewhisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testNow is the instant every fixture clock reports.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// manufacturerServiceFixtures holds all test dependencies for manufacturer service tests.
type manufacturerServiceFixtures struct {
	t         *testing.T
	service   usecase.ManufacturerUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
}

func createTestManufacturerService(t *testing.T) manufacturerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := newDiscardLogger()

	service := NewManufacturerService(txManager, hasher, newFixedClock(testNow), logger)

	return manufacturerServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

// onExecute stubs the transaction manager to run the transactional closure
// against a factory prepared by setup, propagating the closure's error.
func (fx manufacturerServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestManufacturerService_RegisterManufacturer_Success(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	input := &usecase.RegisterManufacturerInput{
		Name:      "Ada Weaver",
		Email:     "ada@looms.example",
		Password:  "Password123!",
		BrandName: "Looms & Co",
		TaxNumber: "TAX-4711",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockCustomerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByBrandName(ctx, input.BrandName).Return(false, nil)
		mockManufacturerRepo.EXPECT().ExistsByTaxNumber(ctx, input.TaxNumber).Return(false, nil)

		fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

		mockManufacturerRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Manufacturer")).
			Run(func(ctx context.Context, manufacturer *entity.Manufacturer) {
				manufacturer.ID = uuid.New()
				manufacturer.CreatedAt = testNow
			}).
			Return(nil)
	})

	view, err := fx.service.RegisterManufacturer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, input.Email, view.Email)
	assert.Equal(t, input.BrandName, view.BrandName)
	assert.Equal(t, input.TaxNumber, view.TaxNumber)
	assert.NotEqual(t, uuid.Nil, view.ID)
}

func TestManufacturerService_DeleteManufacturer_Success(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockProductRepo.EXPECT().DeleteByManufacturer(ctx, manufacturerID).Return(int64(3), nil)
		mockManufacturerRepo.EXPECT().DeleteByID(ctx, manufacturerID).Return(nil)
	})

	err := fx.service.DeleteManufacturer(ctx, manufacturerID)

	require.NoError(t, err)
}

func TestManufacturerService_DeleteManufacturerListings_Success(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockProductRepo.EXPECT().DeleteByManufacturer(ctx, manufacturerID).Return(int64(5), nil)
	})

	err := fx.service.DeleteManufacturerListings(ctx, manufacturerID)

	require.NoError(t, err)
}

func TestManufacturerService_ListProducts_Success(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	products := []*entity.Product{
		{
			ID:             uuid.New(),
			ManufacturerID: manufacturerID,
			Name:           "Wool Scarf",
			PriceMinor:     2599,
			Images: []entity.ProductImage{
				{ImageName: "scarf-front.webp", Position: 0},
				{ImageName: "scarf-back.webp", Position: 1},
			},
		},
		{
			ID:             uuid.New(),
			ManufacturerID: manufacturerID,
			Name:           "Linen Towel",
			PriceMinor:     1250,
		},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockProductRepo.EXPECT().FindByManufacturer(ctx, manufacturerID).Return(products, nil)
	})

	views, err := fx.service.ListProducts(ctx, manufacturerID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Wool Scarf", views[0].Name)
	assert.Equal(t, "scarf-front.webp", views[0].ImageName)
	assert.Equal(t, int64(2599), views[0].PriceMinor)
	assert.Empty(t, views[1].ImageName)
}

func TestManufacturerService_ListBrandNames_Success(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	brandNames := []string{"Looms & Co", "Northern Threads"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		mockManufacturerRepo.EXPECT().ListBrandNames(ctx).Return(brandNames, nil)
	})

	names, err := fx.service.ListBrandNames(ctx)

	require.NoError(t, err)
	assert.Equal(t, brandNames, names)
}

func TestManufacturerService_ListSoldProducts_FiltersTerminalOrders(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	product := &entity.Product{
		ID:             uuid.New(),
		ManufacturerID: manufacturerID,
		Name:           "Wool Scarf",
		Images:         []entity.ProductImage{{ImageName: "scarf.webp"}},
	}
	deliveredAt := testNow.Add(-24 * time.Hour)
	orders := []*entity.Order{
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusPlaced, ReturnStatus: entity.ReturnStatusNone, SoldAtPriceMinor: 2599},
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusShipped, ReturnStatus: entity.ReturnStatusNone, SoldAtPriceMinor: 2599},
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusDelivered, ReturnStatus: entity.ReturnStatusNone, DeliveredAt: &deliveredAt},
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusCancelled, ReturnStatus: entity.ReturnStatusNone},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockOrderRepo.EXPECT().FindByManufacturer(ctx, manufacturerID).Return(orders, nil)
		mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	})

	views, err := fx.service.ListSoldProducts(ctx, manufacturerID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, entity.OrderStatusPlaced, views[0].OrderStatus)
	assert.Equal(t, entity.OrderStatusShipped, views[1].OrderStatus)
	assert.Equal(t, "Wool Scarf", views[0].Name)
	assert.Equal(t, "scarf.webp", views[0].ImageName)
}

func TestManufacturerService_ListSoldProducts_ProductDeleted(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	productID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), ProductID: productID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusPlaced, ReturnStatus: entity.ReturnStatusNone},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockOrderRepo.EXPECT().FindByManufacturer(ctx, manufacturerID).Return(orders, nil)
		mockProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
	})

	views, err := fx.service.ListSoldProducts(ctx, manufacturerID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Name)
	assert.Empty(t, views[0].ImageName)
}

func TestManufacturerService_ListReturnRequests_OnlyPendingReturns(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), ManufacturerID: manufacturerID, Name: "Wool Scarf"}
	deliveredAt := testNow.Add(-48 * time.Hour)
	orders := []*entity.Order{
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusDelivered, ReturnStatus: entity.ReturnStatusRequested, DeliveredAt: &deliveredAt},
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusDelivered, ReturnStatus: entity.ReturnStatusNone, DeliveredAt: &deliveredAt},
		{ID: uuid.New(), ProductID: product.ID, ManufacturerID: manufacturerID, OrderStatus: entity.OrderStatusShipped, ReturnStatus: entity.ReturnStatusNone},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)

		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockOrderRepo.EXPECT().FindByManufacturer(ctx, manufacturerID).Return(orders, nil)
		mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	})

	views, err := fx.service.ListReturnRequests(ctx, manufacturerID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, orders[0].ID, views[0].OrderID)
	assert.Equal(t, entity.ReturnStatusRequested, views[0].ReturnStatus)
}

func TestManufacturerService_ChangeOrderStatus_StampsDeliveredAt(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:             uuid.New(),
		ProductID:      productID,
		ManufacturerID: manufacturerID,
		OrderStatus:    entity.OrderStatusOutForDelivery,
		ReturnStatus:   entity.ReturnStatusNone,
	}
	input := &usecase.ChangeOrderStatusInput{
		OrderID:        order.ID,
		ManufacturerID: manufacturerID,
		ProductID:      productID,
		NewStatus:      entity.OrderStatusDelivered,
	}

	var updated *entity.Order

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
		mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		mockOrderRepo.EXPECT().
			ExistsByIDProductManufacturer(ctx, order.ID, productID, manufacturerID).
			Return(true, nil)
		mockOrderRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, o *entity.Order) {
				updated = o
			}).
			Return(nil)
	})

	err := fx.service.ChangeOrderStatus(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusDelivered, updated.OrderStatus)
	require.NotNil(t, updated.DeliveredAt)
	assert.Equal(t, testNow, *updated.DeliveredAt)
}

func TestManufacturerService_ChangeReturnStatus_CreditsCustomerBalance(t *testing.T) {
	fx := createTestManufacturerService(t)

	ctx := context.Background()
	manufacturerID := uuid.New()
	productID := uuid.New()
	customerID := uuid.New()
	deliveredAt := testNow.Add(-72 * time.Hour)
	order := &entity.Order{
		ID:               uuid.New(),
		ProductID:        productID,
		CustomerID:       customerID,
		ManufacturerID:   manufacturerID,
		SoldAtPriceMinor: 2599,
		OrderStatus:      entity.OrderStatusDelivered,
		ReturnStatus:     entity.ReturnStatusRequested,
		DeliveredAt:      &deliveredAt,
	}
	customer := &entity.Customer{ID: customerID, BalanceMinor: 1000}
	input := &usecase.ChangeReturnStatusInput{
		OrderID:        order.ID,
		ManufacturerID: manufacturerID,
		ProductID:      productID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

		factory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		factory.EXPECT().CustomerRepo().Return(mockCustomerRepo)

		mockProductRepo.EXPECT().
			FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, ManufacturerID: manufacturerID}, nil)
		mockManufacturerRepo.EXPECT().
			FindByID(ctx, manufacturerID).
			Return(&entity.Manufacturer{ID: manufacturerID}, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		mockOrderRepo.EXPECT().
			ExistsByIDProductManufacturer(ctx, order.ID, productID, manufacturerID).
			Return(true, nil)
		mockCustomerRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)
		mockOrderRepo.EXPECT().Update(ctx, order).Return(nil)
		mockCustomerRepo.EXPECT().Update(ctx, customer).Return(nil)
	})

	err := fx.service.ChangeReturnStatus(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ReturnStatusReturned, order.ReturnStatus)
	assert.Equal(t, int64(3599), customer.BalanceMinor)
}
