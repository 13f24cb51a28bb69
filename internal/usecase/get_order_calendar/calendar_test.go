package get_order_calendar

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

type fakeOrderRepo struct {
	orders []*domain.Order
	err    error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeOrderRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.orders, f.err
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func pricePtr(v float64) *float64 { return &v }

func TestMonthRange(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	from, to := monthRange(march)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthRangeFebruary(t *testing.T) {
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	from, to := monthRange(feb)

	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 29, to.Day()) // 2024 es bisiesto
}

func TestBuildCalendar(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	orders := []*domain.Order{
		{
			ID:         1,
			Customer:   domain.Customer{FullName: "Ana Quispe"},
			Tour:       domain.TourSnapshot{Title: "Machu Picchu Full Day"},
			StartDate:  datePtr(2025, time.March, 15),
			People:     2,
			Status:     domain.StatusConfirmed,
			TotalPrice: pricePtr(1500),
		},
		{
			ID:        2,
			StartDate: datePtr(2025, time.March, 15),
			People:    4,
			Status:    domain.StatusCreated,
		},
		{
			ID:        3,
			StartDate: datePtr(2025, time.March, 2),
			People:    1,
			Status:    domain.StatusCreated,
		},
		// Sin fecha: no entra en ningún día
		{ID: 4, StartDate: nil},
		// Fuera del mes: tampoco
		{ID: 5, StartDate: datePtr(2025, time.April, 1)},
	}

	resp := buildCalendar(march, orders)

	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Days, 2)

	// Días ordenados cronológicamente
	assert.Equal(t, "2025-03-02", resp.Days[0].Date)
	assert.Equal(t, 1, resp.Days[0].Count)
	assert.Equal(t, "2025-03-15", resp.Days[1].Date)
	assert.Equal(t, 2, resp.Days[1].Count)

	entry := resp.Days[1].Entries[0]
	assert.Equal(t, int64(1), entry.OrderID)
	assert.Equal(t, "Ana Quispe", entry.CustomerName)
	assert.Equal(t, "Machu Picchu Full Day", entry.TourTitle)
	assert.Equal(t, "confirmed", entry.Status)
	assert.Equal(t, "1,500", entry.TotalPriceFormatted)
}

func TestBuildCalendarEmptyMonth(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	resp := buildCalendar(march, nil)

	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Days)
}

func TestExecute(t *testing.T) {
	repo := &fakeOrderRepo{
		orders: []*domain.Order{
			{ID: 1, StartDate: datePtr(2025, time.March, 10), Status: domain.StatusCreated},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-03"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), repo.gotTo)
}

func TestExecuteInvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Month: "marzo-2025"})

	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestExecuteRepositoryError(t *testing.T) {
	repo := &fakeOrderRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Month: "2025-03"})

	assert.ErrorIs(t, err, ErrInternal)
}
