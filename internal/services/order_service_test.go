package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/mocks"
)

var orderNumberRe = regexp.MustCompile(`^FM[A-Z0-9]+$`)

func TestOrderService_Create_Validation(t *testing.T) {
	tests := []struct {
		name          string
		info          domain.CustomerInfo
		expectedField string
	}{
		{
			name: "missing name",
			info: domain.CustomerInfo{
				Phone:          "0612345678",
				DeliveryMethod: domain.DeliveryMethodPickup,
			},
			expectedField: "name",
		},
		{
			name: "invalid phone",
			info: domain.CustomerInfo{
				Name:           "Bilal",
				Phone:          "123",
				DeliveryMethod: domain.DeliveryMethodPickup,
			},
			expectedField: "phone",
		},
		{
			name: "delivery without address",
			info: domain.CustomerInfo{
				Name:           "Bilal",
				Phone:          "0612345678",
				DeliveryMethod: domain.DeliveryMethodDelivery,
			},
			expectedField: "address",
		},
		{
			name: "unknown delivery method",
			info: domain.CustomerInfo{
				Name:  "Bilal",
				Phone: "0612345678",
			},
			expectedField: "delivery_method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			service := NewOrderService(mockStore, nil)

			items := []SubmittedItem{{ProductID: 1, Quantity: 1}}
			result, err := service.Create(context.Background(), tt.info, items, 45)

			assert.Nil(t, result)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedField, vErr.Field)
			// no partial order may be created
			mockStore.AssertNotCalled(t, "CreateOrder", mock.Anything)
		})
	}
}

func TestOrderService_Create_AcceptsPickupWithoutAddress(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindProductByID", TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, TestProductPrice), nil)
	mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, nil)

	service := NewOrderService(mockStore, nil)
	order, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodPickup),
		[]SubmittedItem{{ProductID: TestProductID, Quantity: 1}}, 45)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Empty(t, order.CustomerInfo.Address)
	mockStore.AssertExpectations(t)
}

func TestOrderService_Create_RejectsEmptyCart(t *testing.T) {
	mockStore := new(mocks.MockStore)
	service := NewOrderService(mockStore, nil)

	_, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodPickup), nil, 0)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items", vErr.Field)
}

func TestOrderService_Create_NormalizesPhone(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindProductByID", TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, TestProductPrice), nil)
	mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, nil)

	service := NewOrderService(mockStore, nil)
	order, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodPickup),
		[]SubmittedItem{{ProductID: TestProductID, Quantity: 1}}, 45)

	require.NoError(t, err)
	assert.Equal(t, "+212612345678", order.CustomerInfo.Phone)
}

func TestOrderService_Create_AlreadyPrefixedPhonePassesThrough(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindProductByID", TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, TestProductPrice), nil)
	mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, nil)

	info := CreateMockCustomer(domain.DeliveryMethodPickup)
	info.Phone = "+212612345678"

	service := NewOrderService(mockStore, nil)
	order, err := service.Create(context.Background(), info,
		[]SubmittedItem{{ProductID: TestProductID, Quantity: 1}}, 45)

	require.NoError(t, err)
	assert.Equal(t, "+212612345678", order.CustomerInfo.Phone)
}

func TestOrderService_Create_RecomputesTamperedTotal(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindProductByID", TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, TestProductPrice), nil)
	mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, nil)

	service := NewOrderService(mockStore, nil)
	// client under-reports both the unit price and the total
	order, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodDelivery),
		[]SubmittedItem{{ProductID: TestProductID, Quantity: 2, UnitPrice: 1}}, 2)

	require.NoError(t, err)
	assert.Equal(t, float64(90), order.TotalPrice)
	require.Len(t, order.Items, 1)
	assert.Equal(t, TestProductPrice, order.Items[0].UnitPrice)
	assert.Equal(t, float64(90), order.Items[0].Subtotal)
	assert.False(t, order.Items[0].Placeholder)
}

func TestOrderService_Create_PlaceholderForVanishedProduct(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockStore)
	}{
		{
			name: "product deleted",
			setupMocks: func(mockStore *mocks.MockStore) {
				mockStore.On("FindProductByID", int64(999)).Return(nil, nil)
			},
		},
		{
			name: "store read failure",
			setupMocks: func(mockStore *mocks.MockStore) {
				mockStore.On("FindProductByID", int64(999)).Return(nil, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			tt.setupMocks(mockStore)
			mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, nil)

			service := NewOrderService(mockStore, nil)
			order, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodPickup),
				[]SubmittedItem{{ProductID: 999, Quantity: 2, UnitPrice: 30}}, 60)

			require.NoError(t, err)
			require.Len(t, order.Items, 1)
			line := order.Items[0]
			assert.True(t, line.Placeholder)
			assert.Equal(t, "Unknown Product", line.Product.Name)
			assert.Equal(t, float64(30), line.UnitPrice)
			assert.Empty(t, line.Product.Ingredients)
			assert.Equal(t, float64(60), order.TotalPrice)
		})
	}
}

func TestOrderService_Create_EndToEnd(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindProductByID", TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, TestProductPrice), nil)
	mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 7
	})
	mockPublisher := new(mocks.MockPublisher)
	mockPublisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil)

	service := NewOrderService(mockStore, mockPublisher)
	order, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodDelivery),
		[]SubmittedItem{{
			ProductID:      TestProductID,
			Quantity:       2,
			Customizations: map[string]string{"With fries": "Yes"},
			UnitPrice:      45,
		}}, 104)

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, float64(104), order.TotalPrice)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "cash", order.PaymentMethod)
	assert.Regexp(t, orderNumberRe, order.OrderNumber)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Second)

	// publish is fired asynchronously after the write
	time.Sleep(100 * time.Millisecond)
	mockStore.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_Create_BackendFailure(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindProductByID", TestProductID).Return(CreateMockProduct(TestProductID, TestProductName, TestProductPrice), nil)
	mockStore.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil, errors.New("database error"))

	service := NewOrderService(mockStore, nil)
	order, err := service.Create(context.Background(), CreateMockCustomer(domain.DeliveryMethodPickup),
		[]SubmittedItem{{ProductID: TestProductID, Quantity: 1}}, 45)

	assert.Nil(t, order)
	assert.ErrorContains(t, err, "database error")
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		current       domain.OrderStatus
		target        domain.OrderStatus
		expectedError error
		expectPersist bool
	}{
		{name: "pending to confirmed", current: domain.StatusPending, target: domain.StatusConfirmed, expectPersist: true},
		{name: "confirmed to preparing", current: domain.StatusConfirmed, target: domain.StatusPreparing, expectPersist: true},
		{name: "preparing to ready", current: domain.StatusPreparing, target: domain.StatusReady, expectPersist: true},
		{name: "ready to delivered", current: domain.StatusReady, target: domain.StatusDelivered, expectPersist: true},
		{name: "cancel from pending", current: domain.StatusPending, target: domain.StatusCancelled, expectPersist: true},
		{name: "cancel from ready", current: domain.StatusReady, target: domain.StatusCancelled, expectPersist: true},
		{name: "skip a step", current: domain.StatusPending, target: domain.StatusPreparing, expectedError: domain.ErrInvalidTransition},
		{name: "backwards", current: domain.StatusPreparing, target: domain.StatusConfirmed, expectedError: domain.ErrInvalidTransition},
		{name: "delivered is terminal", current: domain.StatusDelivered, target: domain.StatusCancelled, expectedError: domain.ErrInvalidTransition},
		{name: "cancelled is terminal", current: domain.StatusCancelled, target: domain.StatusPending, expectedError: domain.ErrInvalidTransition},
		{name: "unknown status", current: domain.StatusPending, target: domain.OrderStatus("shipped"), expectedError: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			if tt.target.Valid() {
				mockStore.On("FindOrderByID", int64(1)).Return(&domain.Order{ID: 1, Status: tt.current}, nil)
			}
			if tt.expectPersist {
				mockStore.On("UpdateOrderStatus", int64(1), tt.target).Return(nil)
			}

			service := NewOrderService(mockStore, nil)
			err := service.UpdateStatus(context.Background(), 1, tt.target)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockStore.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("FindOrderByID", int64(42)).Return(nil, nil)

	service := NewOrderService(mockStore, nil)
	err := service.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockStore)
		expectedError error
	}{
		{
			name: "found",
			setupMocks: func(mockStore *mocks.MockStore) {
				mockStore.On("FindOrderByID", int64(1)).Return(&domain.Order{ID: 1, Status: domain.StatusPending}, nil)
			},
		},
		{
			name: "missing",
			setupMocks: func(mockStore *mocks.MockStore) {
				mockStore.On("FindOrderByID", int64(1)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "backend failure",
			setupMocks: func(mockStore *mocks.MockStore) {
				mockStore.On("FindOrderByID", int64(1)).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(mocks.MockStore)
			tt.setupMocks(mockStore)

			service := NewOrderService(mockStore, nil)
			order, err := service.GetByID(context.Background(), 1)

			if tt.expectedError != nil {
				assert.Nil(t, order)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), order.ID)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestOrderService_List_DegradesToEmpty(t *testing.T) {
	mockStore := new(mocks.MockStore)
	mockStore.On("ListOrders").Return(nil, errors.New("database error"))

	service := NewOrderService(mockStore, nil)
	orders := service.List(context.Background())

	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
