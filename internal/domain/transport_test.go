package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTransportByType(t *testing.T) {
	options := []*TransportOption{
		{ID: 1, Type: PackageBasico, Vehicle: "Minivan"},
		{ID: 2, Type: PackagePremium, Vehicle: "Sprinter"},
		{ID: 3, Type: PackageBasico, Vehicle: "Bus"},
	}

	basico := FilterTransportByType(options, PackageBasico)
	require.Len(t, basico, 2)
	// Conserva el orden de entrada
	assert.Equal(t, int64(1), basico[0].ID)
	assert.Equal(t, int64(3), basico[1].ID)

	premium := FilterTransportByType(options, PackagePremium)
	require.Len(t, premium, 1)
	assert.Equal(t, "Sprinter", premium[0].Vehicle)

	assert.Empty(t, FilterTransportByType(nil, PackageBasico))
}
