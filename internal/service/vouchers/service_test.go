package vouchers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	orderRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/order"
	"github.com/illapa-dev/TourOperatorService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeOrderRepo struct {
	order *domain.Order
	err   error
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return f.order, f.err
}

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:          "Illapa Tours",
		PublicBaseURL: "https://illapatours.pe",
		WhatsAppPhone: "+51 984 123 456",
	}
}

func voucherOrder() *domain.Order {
	return &domain.Order{
		ID: 42,
		Customer: domain.Customer{
			FullName: "Ana Quispe",
			Email:    "ana@example.com",
		},
		Tour: domain.TourSnapshot{
			TourID:   5,
			Title:    "Machu Picchu Full Day",
			Region:   "Cusco",
			Duration: "1 día",
			Price:    400,
		},
		People:     2,
		TotalPrice: ptr.Ptr(800.0),
		Status:     domain.StatusConfirmed,
	}
}

func TestGenerate(t *testing.T) {
	svc := NewService(&fakeOrderRepo{order: voucherOrder()}, testCompany(), nopLogger{})

	pdf, err := svc.Generate(context.Background(), 42)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	// Cualquier PDF válido empieza con la firma %PDF
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateWithoutCompanyLinks(t *testing.T) {
	// Sin URL pública ni teléfono el voucher se genera igual, sin QR
	svc := NewService(&fakeOrderRepo{order: voucherOrder()},
		CompanyInfo{Name: "Illapa Tours"}, nopLogger{})

	pdf, err := svc.Generate(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateOrderNotFound(t *testing.T) {
	svc := NewService(&fakeOrderRepo{err: orderRepo.ErrOrderNotFound}, testCompany(), nopLogger{})

	_, err := svc.Generate(context.Background(), 99)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGenerateRepositoryError(t *testing.T) {
	svc := NewService(&fakeOrderRepo{err: errors.New("connection refused")}, testCompany(), nopLogger{})

	_, err := svc.Generate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestBookingURL(t *testing.T) {
	svc := NewService(&fakeOrderRepo{}, testCompany(), nopLogger{})
	assert.Equal(t, "https://illapatours.pe/reservas/42", svc.bookingURL(42))

	// La barra final de la base no duplica el separador
	svc = NewService(&fakeOrderRepo{},
		CompanyInfo{PublicBaseURL: "https://illapatours.pe/"}, nopLogger{})
	assert.Equal(t, "https://illapatours.pe/reservas/7", svc.bookingURL(7))
}
