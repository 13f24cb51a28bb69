package carts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	tourRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/tour"
	"github.com/illapa-dev/TourOperatorService/internal/service/carts/models"
	"github.com/illapa-dev/TourOperatorService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeCartStore guarda los carritos en memoria y cuenta los Save
type fakeCartStore struct {
	carts map[int64]*domain.Cart
	saves int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[int64]*domain.Cart)}
}

func (f *fakeCartStore) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	return domain.NewCart(userID), nil
}

func (f *fakeCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	f.saves++
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartStore) Delete(ctx context.Context, userID int64) error {
	delete(f.carts, userID)
	return nil
}

type fakeTourRepo struct {
	tours map[int64]*domain.Tour
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	if tour, ok := f.tours[id]; ok {
		return tour, nil
	}
	return nil, tourRepo.ErrTourNotFound
}

func newTestService() (*Service, *fakeCartStore) {
	store := newFakeCartStore()
	tours := &fakeTourRepo{tours: map[int64]*domain.Tour{
		5: {
			ID:       5,
			Title:    domain.LocalizedText{ES: "Laguna Humantay", EN: ptr.Ptr("Humantay Lake")},
			Price:    350,
			Region:   "Cusco",
			Duration: "1 día",
		},
	}}
	return NewService(store, tours, nopLogger{}), store
}

func TestGetReturnsEmptyCartForNewUser(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.TotalPrice)
}

func TestAddItem(t *testing.T) {
	svc, store := newTestService()

	resp, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{
		TourID:    5,
		StartDate: ptr.Ptr("2030-08-20"),
		People:    2,
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Laguna Humantay", item.Tour.Title)
	assert.Equal(t, 350.0, item.PricePerPerson)
	assert.Equal(t, 700.0, item.Total)
	assert.Equal(t, "700", item.TotalFormatted)
	require.NotNil(t, item.StartDate)
	assert.Equal(t, "2030-08-20", *item.StartDate)

	assert.Equal(t, 700.0, resp.TotalPrice)
	assert.Equal(t, 1, store.saves)
}

func TestAddItemResolvesLanguage(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{
		TourID: 5,
		People: 1,
		Lang:   domain.LangEnglish,
	})

	require.NoError(t, err)
	assert.Equal(t, "Humantay Lake", resp.Items[0].Tour.Title)
}

func TestAddItemValidatesBeforeStore(t *testing.T) {
	tests := []struct {
		name string
		req  *models.AddItemRequest
	}{
		{"zero people", &models.AddItemRequest{TourID: 5, People: 0}},
		{"too many people", &models.AddItemRequest{TourID: 5, People: domain.MaxPeoplePerBooking + 1}},
		{"notes too long", &models.AddItemRequest{TourID: 5, People: 2, Notes: ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))}},
		{"malformed date", &models.AddItemRequest{TourID: 5, People: 2, StartDate: ptr.Ptr("20/08/2030")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService()

			_, err := svc.AddItem(context.Background(), 7, tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			// La validación corta antes de tocar el almacén
			assert.Equal(t, 0, store.saves)
		})
	}
}

func TestAddItemTourNotFound(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{TourID: 999, People: 2})

	assert.ErrorIs(t, err, ErrTourNotFound)
	assert.Equal(t, 0, store.saves)
}

func TestUpdateItem(t *testing.T) {
	svc, _ := newTestService()

	added, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{
		TourID: 5,
		People: 2,
		Notes:  ptr.Ptr("ventana, por favor"),
	})
	require.NoError(t, err)
	itemID := added.Items[0].ID

	resp, err := svc.UpdateItem(context.Background(), 7, itemID, &models.UpdateItemRequest{
		People: ptr.Ptr(4),
	})

	require.NoError(t, err)
	item := resp.Items[0]
	assert.Equal(t, 4, item.People)
	assert.Equal(t, 1400.0, item.Total) // recalculado: 350 x 4
	assert.Equal(t, 1400.0, resp.TotalPrice)

	// Los campos no enviados conservan su valor
	require.NotNil(t, item.Notes)
	assert.Equal(t, "ventana, por favor", *item.Notes)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateItem(context.Background(), 7, "missing", &models.UpdateItemRequest{People: ptr.Ptr(3)})

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateItemInvalidPeople(t *testing.T) {
	svc, store := newTestService()

	added, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{TourID: 5, People: 2})
	require.NoError(t, err)
	savesAfterAdd := store.saves

	_, err = svc.UpdateItem(context.Background(), 7, added.Items[0].ID, &models.UpdateItemRequest{
		People: ptr.Ptr(0),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, savesAfterAdd, store.saves)
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newTestService()

	added, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{TourID: 5, People: 2})
	require.NoError(t, err)

	resp, err := svc.RemoveItem(context.Background(), 7, added.Items[0].ID)

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.TotalPrice)
}

func TestRemoveItemNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RemoveItem(context.Background(), 7, "missing")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestClear(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.AddItem(context.Background(), 7, &models.AddItemRequest{TourID: 5, People: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), 7))

	_, exists := store.carts[7]
	assert.False(t, exists)

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
