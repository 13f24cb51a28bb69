package checkout_cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCartStore struct {
	cart    *domain.Cart
	getErr  error
	deleted []int64
}

func (f *fakeCartStore) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cart, nil
}

func (f *fakeCartStore) Delete(ctx context.Context, userID int64) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeOrderRepo struct {
	created []*domain.Order
	failAt  int // falla en la n-ésima creación (1-based), 0 = nunca
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return nil, errors.New("db down")
	}
	saved := *order
	saved.ID = int64(100 + len(f.created))
	f.created = append(f.created, &saved)
	return &saved, nil
}

type fakePublisher struct {
	published []*domain.Order
}

func (f *fakePublisher) PublishCreated(ctx context.Context, order *domain.Order) error {
	f.published = append(f.published, order)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testCart() *domain.Cart {
	date := time.Date(2030, time.July, 10, 0, 0, 0, 0, time.UTC)
	cart := domain.NewCart(7)
	cart.Items = []domain.CartItem{
		{
			ID:             "item-1",
			Tour:           domain.TourSnapshot{TourID: 1, Title: "Machu Picchu", Price: 400},
			StartDate:      &date,
			People:         2,
			PricePerPerson: 400,
		},
		{
			ID:             "item-2",
			Tour:           domain.TourSnapshot{TourID: 2, Title: "Valle Sagrado", Price: 150},
			People:         3,
			PricePerPerson: 150,
		},
	}
	cart.Recalculate()
	return cart
}

func validRequest() *Request {
	return &Request{
		UserID:        7,
		FullName:      "Lucía Torres",
		Email:         "lucia@example.com",
		Phone:         "+51 987 654 321",
		Nationality:   "PE",
		PaymentMethod: "card",
	}
}

func TestExecute(t *testing.T) {
	store := &fakeCartStore{cart: testCart()}
	repo := &fakeOrderRepo{}
	pub := &fakePublisher{}
	uc := NewUseCase(store, repo, pub, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)

	// Una reserva por línea, con el total derivado del precio congelado
	first := resp.Orders[0]
	assert.Equal(t, int64(1), first.TourID)
	assert.Equal(t, "Machu Picchu", first.TourTitle)
	require.NotNil(t, first.TotalPrice)
	assert.Equal(t, 800.0, *first.TotalPrice) // 400 x 2
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2030-07-10", *first.StartDate)

	second := resp.Orders[1]
	require.NotNil(t, second.TotalPrice)
	assert.Equal(t, 450.0, *second.TotalPrice) // 150 x 3
	assert.Nil(t, second.StartDate)

	assert.Equal(t, 1250.0, resp.TotalPrice)
	assert.Equal(t, "1,250", resp.TotalPriceFormatted)

	// Todas las reservas comparten los datos de contacto del checkout
	for _, order := range repo.created {
		assert.Equal(t, "Lucía Torres", order.Customer.FullName)
		assert.Equal(t, domain.StatusCreated, order.Status)
		assert.Equal(t, "card", order.PaymentMethod)
	}

	// El carrito se vacía y se publica un evento por reserva
	assert.Equal(t, []int64{7}, store.deleted)
	assert.Len(t, pub.published, 2)
}

func TestExecuteEmptyCart(t *testing.T) {
	store := &fakeCartStore{cart: domain.NewCart(7)}
	repo := &fakeOrderRepo{}
	uc := NewUseCase(store, repo, &fakePublisher{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, repo.created)
	assert.Empty(t, store.deleted)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing user", func(r *Request) { r.UserID = 0 }},
		{"missing full name", func(r *Request) { r.FullName = " " }},
		{"invalid email", func(r *Request) { r.Email = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeCartStore{cart: testCart()}, &fakeOrderRepo{}, &fakePublisher{}, fakeTxManager{}, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteFailureKeepsCart(t *testing.T) {
	store := &fakeCartStore{cart: testCart()}
	repo := &fakeOrderRepo{failAt: 2}
	pub := &fakePublisher{}
	uc := NewUseCase(store, repo, pub, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	// Con la transacción fallida el carrito sigue intacto y no hay eventos
	assert.Empty(t, store.deleted)
	assert.Empty(t, pub.published)
}

func TestExecuteCartStoreError(t *testing.T) {
	store := &fakeCartStore{getErr: errors.New("redis down")}
	uc := NewUseCase(store, &fakeOrderRepo{}, &fakePublisher{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
