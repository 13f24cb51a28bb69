package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTransportRepo struct {
	options []*domain.TransportOption
	err     error
	gotIDs  []int64
}

func (f *fakeTransportRepo) Create(ctx context.Context, option *domain.TransportOption) (*domain.TransportOption, error) {
	return option, f.err
}

func (f *fakeTransportRepo) GetByID(ctx context.Context, id int64) (*domain.TransportOption, error) {
	for _, opt := range f.options {
		if opt.ID == id {
			return opt, nil
		}
	}
	return nil, f.err
}

// GetByIDs imita al repositorio real: devuelve por id ascendente,
// ignorando el orden pedido
func (f *fakeTransportRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.TransportOption, error) {
	f.gotIDs = ids
	return f.options, f.err
}

func (f *fakeTransportRepo) List(ctx context.Context, page, limit int64, optionType *domain.PackageType) ([]*domain.TransportOption, int64, error) {
	return f.options, int64(len(f.options)), f.err
}

func (f *fakeTransportRepo) Update(ctx context.Context, option *domain.TransportOption) error {
	return f.err
}

func (f *fakeTransportRepo) Delete(ctx context.Context, id int64) error {
	return f.err
}

func basicOption(id int64, vehicle string) *domain.TransportOption {
	return &domain.TransportOption{
		ID:      id,
		Type:    domain.PackageBasico,
		Vehicle: vehicle,
	}
}

func TestGetForTourKeepsConfiguredOrder(t *testing.T) {
	// El repositorio devuelve por id ascendente, el tour pide 3, 1, 2
	repo := &fakeTransportRepo{options: []*domain.TransportOption{
		basicOption(1, "Minivan"),
		basicOption(2, "Bus turistico"),
		basicOption(3, "Auto privado"),
	}}
	svc := NewService(repo, nopLogger{})

	tour := &domain.Tour{
		ID:                 9,
		PackageType:        domain.PackageBasico,
		TransportOptionIDs: []int64{3, 1, 2},
	}

	options, err := svc.GetForTour(context.Background(), tour)

	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{options[0].ID, options[1].ID, options[2].ID})
	assert.Equal(t, []int64{3, 1, 2}, repo.gotIDs)
}

func TestGetForTourFiltersByPackageType(t *testing.T) {
	premium := basicOption(2, "Sprinter")
	premium.Type = domain.PackagePremium

	repo := &fakeTransportRepo{options: []*domain.TransportOption{
		basicOption(1, "Minivan"),
		premium,
		basicOption(3, "Auto privado"),
	}}
	svc := NewService(repo, nopLogger{})

	tour := &domain.Tour{
		PackageType:        domain.PackagePremium,
		TransportOptionIDs: []int64{3, 2, 1},
	}

	options, err := svc.GetForTour(context.Background(), tour)

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, int64(2), options[0].ID)
}

func TestGetForTourSkipsMissingIDs(t *testing.T) {
	// Un id configurado que ya no existe en la BD simplemente se omite
	repo := &fakeTransportRepo{options: []*domain.TransportOption{
		basicOption(1, "Minivan"),
	}}
	svc := NewService(repo, nopLogger{})

	tour := &domain.Tour{
		PackageType:        domain.PackageBasico,
		TransportOptionIDs: []int64{99, 1},
	}

	options, err := svc.GetForTour(context.Background(), tour)

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, int64(1), options[0].ID)
}

func TestGetForTourRepositoryError(t *testing.T) {
	repo := &fakeTransportRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetForTour(context.Background(), &domain.Tour{TransportOptionIDs: []int64{1}})

	assert.ErrorIs(t, err, ErrInternal)
}
