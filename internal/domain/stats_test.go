package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestComputeStats(t *testing.T) {
	nan := math.NaN()
	orders := []*Order{
		{Status: StatusCreated, TotalPrice: price(100)},
		{Status: StatusConfirmed, TotalPrice: price(250)},
		{Status: StatusConfirmed, TotalPrice: nil},
		{Status: StatusCompleted, TotalPrice: &nan},
		{Status: StatusCancelled, TotalPrice: price(999)},
	}

	stats := ComputeStats(orders)

	assert.Equal(t, 1, stats.CreatedOrders)
	assert.Equal(t, 2, stats.ConfirmedOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 1, stats.CancelledOrders)

	// nil y NaN aportan 0; la reserva cancelada sí suma su importe
	assert.Equal(t, 100.0+250.0+999.0, stats.TotalRevenue)
}

func TestComputeStatsClampsNegativePrices(t *testing.T) {
	orders := []*Order{
		{Status: StatusCreated, TotalPrice: price(-500)},
		{Status: StatusConfirmed, TotalPrice: price(300)},
	}

	stats := ComputeStats(orders)

	assert.Equal(t, 300.0, stats.TotalRevenue)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, DashboardStats{}, stats)
}
