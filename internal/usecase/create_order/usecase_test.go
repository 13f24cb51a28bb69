package create_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	tourRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/tour"
	"github.com/illapa-dev/TourOperatorService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeOrderRepo struct {
	created *domain.Order
	err     error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *order
	created.ID = 101
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakeTourRepo struct {
	tour *domain.Tour
	err  error
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tour, nil
}

type fakePublisher struct {
	published []*domain.Order
	err       error
}

func (f *fakePublisher) PublishCreated(ctx context.Context, order *domain.Order) error {
	f.published = append(f.published, order)
	return f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func testTour() *domain.Tour {
	return &domain.Tour{
		ID:       5,
		Title:    domain.LocalizedText{ES: "Laguna Humantay", EN: ptr.Ptr("Humantay Lake")},
		Price:    350,
		Region:   "Cusco",
		Duration: "1 día",
	}
}

func validRequest() *Request {
	return &Request{
		FullName:      "Carlos Mamani",
		Email:         "carlos@example.com",
		Phone:         "+51 999 888 777",
		Nationality:   "PE",
		TourID:        5,
		StartDate:     ptr.Ptr("2030-06-15"),
		People:        2,
		PaymentMethod: "card",
	}
}

func newTestUseCase(orders *fakeOrderRepo, tours *fakeTourRepo, pub *fakePublisher, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(orders, tours, pub, tx, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	orders := &fakeOrderRepo{}
	tours := &fakeTourRepo{tour: testTour()}
	pub := &fakePublisher{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(orders, tours, pub, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, "Carlos Mamani", resp.FullName)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 700.0, *resp.TotalPrice) // 350 x 2
	assert.Equal(t, "700", resp.TotalPriceFormatted)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2030-06-15", *resp.StartDate)

	// El snapshot congela el tour resuelto en español por defecto
	assert.Equal(t, "Laguna Humantay", orders.created.Tour.Title)
	assert.Equal(t, 350.0, orders.created.Tour.Price)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, pub.published, 1)
	assert.Equal(t, int64(101), pub.published[0].ID)
}

func TestExecuteResolvesSnapshotLanguage(t *testing.T) {
	orders := &fakeOrderRepo{}
	uc := newTestUseCase(orders, &fakeTourRepo{tour: testTour()}, &fakePublisher{}, &fakeTxManager{})

	req := validRequest()
	req.Lang = domain.LangEnglish

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Humantay Lake", orders.created.Tour.Title)
}

func TestExecuteWithoutStartDate(t *testing.T) {
	orders := &fakeOrderRepo{}
	uc := newTestUseCase(orders, &fakeTourRepo{tour: testTour()}, &fakePublisher{}, &fakeTxManager{})

	req := validRequest()
	req.StartDate = nil

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.StartDate)
	assert.Nil(t, orders.created.StartDate)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing full name", func(r *Request) { r.FullName = "  " }, ErrInvalidInput},
		{"invalid email", func(r *Request) { r.Email = "not-an-email" }, ErrInvalidInput},
		{"missing tour id", func(r *Request) { r.TourID = 0 }, ErrInvalidInput},
		{"zero people", func(r *Request) { r.People = 0 }, ErrInvalidInput},
		{"too many people", func(r *Request) { r.People = domain.MaxPeoplePerBooking + 1 }, ErrInvalidInput},
		{"malformed date", func(r *Request) { r.StartDate = ptr.Ptr("15/06/2030") }, ErrInvalidDate},
		{"past date", func(r *Request) { r.StartDate = ptr.Ptr("2030-05-31") }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &fakeOrderRepo{}
			uc := newTestUseCase(orders, &fakeTourRepo{tour: testTour()}, &fakePublisher{}, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, orders.created)
		})
	}
}

func TestExecuteAcceptsToday(t *testing.T) {
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeTourRepo{tour: testTour()}, &fakePublisher{}, &fakeTxManager{})

	req := validRequest()
	req.StartDate = ptr.Ptr("2030-06-01") // hoy según el reloj fijado

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecuteTourNotFound(t *testing.T) {
	tours := &fakeTourRepo{err: tourRepo.ErrTourNotFound}
	uc := newTestUseCase(&fakeOrderRepo{}, tours, &fakePublisher{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestExecuteRepositoryError(t *testing.T) {
	orders := &fakeOrderRepo{err: errors.New("db down")}
	pub := &fakePublisher{}
	uc := newTestUseCase(orders, &fakeTourRepo{tour: testTour()}, pub, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	// Sin reserva confirmada no se publica ningún evento
	assert.Empty(t, pub.published)
}

func TestExecutePublisherFailureIsNotFatal(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeTourRepo{tour: testTour()}, pub, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}
