package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	orderRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/order"
	"github.com/illapa-dev/TourOperatorService/internal/service/orders/models"
	"github.com/illapa-dev/TourOperatorService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeOrderRepo repositorio en memoria sobre un único registro
type fakeOrderRepo struct {
	order         *domain.Order
	listed        []*domain.Order
	total         int64
	statusUpdates []domain.OrderStatus
	updated       *domain.Order
	deleted       []int64
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return order, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, orderRepo.ErrOrderNotFound
	}
	copied := *f.order
	return &copied, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, int64, error) {
	return f.listed, f.total, nil
}

func (f *fakeOrderRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	return f.listed, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	if f.order == nil || f.order.ID != order.ID {
		return orderRepo.ErrOrderNotFound
	}
	copied := *order
	f.order = &copied
	f.updated = &copied
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if f.order == nil || f.order.ID != id {
		return orderRepo.ErrOrderNotFound
	}
	f.order.Status = status
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	if f.order == nil || f.order.ID != id {
		return orderRepo.ErrOrderNotFound
	}
	f.deleted = append(f.deleted, id)
	f.order = nil
	return nil
}

type fakePublisher struct {
	statusChanged []*domain.Order
	cancelled     []*domain.Order
}

func (f *fakePublisher) PublishStatusChanged(ctx context.Context, order *domain.Order) error {
	f.statusChanged = append(f.statusChanged, order)
	return nil
}

func (f *fakePublisher) PublishCancelled(ctx context.Context, order *domain.Order) error {
	f.cancelled = append(f.cancelled, order)
	return nil
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID: 1,
		Customer: domain.Customer{
			FullName: "Ana Quispe",
			Email:    "ana@example.com",
		},
		Tour: domain.TourSnapshot{
			TourID:   5,
			Title:    "Machu Picchu Full Day",
			Price:    400,
			Region:   "Cusco",
			Duration: "1 día",
		},
		People:        2,
		TotalPrice:    ptr.Ptr(800.0),
		Status:        domain.StatusCreated,
		PaymentMethod: "card",
	}
}

func newTestService(repo *fakeOrderRepo) (*Service, *fakePublisher) {
	pub := &fakePublisher{}
	return NewService(repo, pub, nopLogger{}), pub
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(&fakeOrderRepo{order: sampleOrder()})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Ana Quispe", resp.Customer.FullName)
	assert.Equal(t, "800", resp.TotalPriceFormatted)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeOrderRepo{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListInvalidStatus(t *testing.T) {
	svc, _ := newTestService(&fakeOrderRepo{})

	_, err := svc.List(context.Background(), &models.ListOrdersRequest{
		Status: ptr.Ptr("pending"),
		Page:   1,
		Limit:  10,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats(t *testing.T) {
	repo := &fakeOrderRepo{listed: []*domain.Order{
		{Status: domain.StatusConfirmed, TotalPrice: ptr.Ptr(1500.0)},
		{Status: domain.StatusConfirmed, TotalPrice: ptr.Ptr(500.0)},
		{Status: domain.StatusCreated, TotalPrice: nil},
		{Status: domain.StatusCancelled, TotalPrice: ptr.Ptr(200.0)},
	}}
	svc, _ := newTestService(repo)

	resp, err := svc.Stats(context.Background(), &models.ListOrdersRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.ConfirmedOrders)
	assert.Equal(t, 1, resp.CreatedOrders)
	assert.Equal(t, 1, resp.CancelledOrders)
	assert.Equal(t, 2200.0, resp.TotalRevenue)
	assert.Equal(t, "2,200", resp.TotalRevenueFormatted)
}

func TestUpdateRecalculatesTotal(t *testing.T) {
	repo := &fakeOrderRepo{order: sampleOrder()}
	svc, _ := newTestService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateOrderRequest{
		Customer:      models.CustomerPayload{FullName: "Ana Quispe", Email: "ana@example.com"},
		People:        5,
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.People)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 2000.0, *resp.TotalPrice) // precio congelado 400 x 5

	// El snapshot del tour no se toca
	assert.Equal(t, "Machu Picchu Full Day", repo.updated.Tour.Title)
	assert.Equal(t, 400.0, repo.updated.Tour.Price)
}

func TestUpdateClearsDateWithEmptyString(t *testing.T) {
	order := sampleOrder()
	start := time.Date(2030, time.May, 10, 0, 0, 0, 0, time.UTC)
	order.StartDate = &start

	repo := &fakeOrderRepo{order: order}
	svc, _ := newTestService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateOrderRequest{
		Customer:  models.CustomerPayload{FullName: "Ana Quispe", Email: "ana@example.com"},
		StartDate: ptr.Ptr(""),
		People:    2,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.StartDate)
}

func TestUpdateKeepsDateWhenAbsent(t *testing.T) {
	order := sampleOrder()
	start := time.Date(2030, time.May, 10, 0, 0, 0, 0, time.UTC)
	order.StartDate = &start

	repo := &fakeOrderRepo{order: order}
	svc, _ := newTestService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateOrderRequest{
		Customer: models.CustomerPayload{FullName: "Ana Quispe", Email: "ana@example.com"},
		People:   2,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2030-05-10", *resp.StartDate)
}

func TestUpdateInvalidPeople(t *testing.T) {
	svc, _ := newTestService(&fakeOrderRepo{order: sampleOrder()})

	_, err := svc.Update(context.Background(), 1, &models.UpdateOrderRequest{
		Customer: models.CustomerPayload{FullName: "Ana Quispe"},
		People:   0,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeOrderRepo{order: sampleOrder()}
	svc, pub := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, "confirmed")

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []domain.OrderStatus{domain.StatusConfirmed}, repo.statusUpdates)
	require.Len(t, pub.statusChanged, 1)
	assert.Equal(t, domain.StatusConfirmed, pub.statusChanged[0].Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	repo := &fakeOrderRepo{order: sampleOrder()}
	svc, pub := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, "pending")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, repo.statusUpdates)
	assert.Empty(t, pub.statusChanged)
}

func TestCancel(t *testing.T) {
	repo := &fakeOrderRepo{order: sampleOrder()}
	svc, pub := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.Len(t, pub.cancelled, 1)
}

func TestCancelFinishedOrder(t *testing.T) {
	order := sampleOrder()
	order.Status = domain.StatusCompleted

	repo := &fakeOrderRepo{order: order}
	svc, pub := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.statusUpdates)
	assert.Empty(t, pub.cancelled)
}

func TestDelete(t *testing.T) {
	repo := &fakeOrderRepo{order: sampleOrder()}
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrOrderNotFound)
}
