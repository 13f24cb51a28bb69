package domain

import "github.com/illapa-dev/TourOperatorService/pkg/money"

// DashboardStats are the aggregate figures shown on the booking dashboard.
type DashboardStats struct {
	ConfirmedOrders int
	CreatedOrders   int
	CompletedOrders int
	CancelledOrders int
	TotalRevenue    float64
}

// ComputeStats derives the dashboard aggregates from scratch over one page
// of orders. No incremental counters: pages are capped at MaxPageSize rows
// and recomputing keeps the numbers trivially consistent with the list.
//
// A missing or malformed TotalPrice contributes 0 to revenue, so a broken
// price never breaks the aggregate. Negative prices are clamped to 0.
func ComputeStats(orders []*Order) DashboardStats {
	var stats DashboardStats

	for _, order := range orders {
		switch order.Status {
		case StatusConfirmed:
			stats.ConfirmedOrders++
		case StatusCreated:
			stats.CreatedOrders++
		case StatusCompleted:
			stats.CompletedOrders++
		case StatusCancelled:
			stats.CancelledOrders++
		}

		if price := money.Safe(order.TotalPrice); price > 0 {
			stats.TotalRevenue += price
		}
	}

	return stats
}
