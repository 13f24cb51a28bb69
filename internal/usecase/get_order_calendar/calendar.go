package get_order_calendar

import (
	"sort"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
)

// monthRange devuelve el primer y el último día del mes
func monthRange(month time.Time) (time.Time, time.Time) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

// buildCalendar agrupa las reservas por día dentro del mes dado.
// Las reservas sin fecha o fuera del mes no entran en ningún día.
// Los días se devuelven ordenados y solo aparecen los días con reservas.
func buildCalendar(month time.Time, orders []*domain.Order) *Response {
	byDay := make(map[string][]*CalendarEntry)
	total := 0

	for _, order := range orders {
		if order.StartDate == nil {
			continue
		}
		if order.StartDate.Year() != month.Year() || order.StartDate.Month() != month.Month() {
			continue
		}

		day := order.StartDate.Format(domain.DateFormat)
		byDay[day] = append(byDay[day], &CalendarEntry{
			OrderID:             order.ID,
			CustomerName:        order.Customer.FullName,
			TourTitle:           order.Tour.Title,
			People:              order.People,
			Status:              string(order.Status),
			TotalPriceFormatted: money.Format(order.TotalPrice),
		})
		total++
	}

	days := make([]*CalendarDay, 0, len(byDay))
	for date, entries := range byDay {
		days = append(days, &CalendarDay{
			Date:    date,
			Count:   len(entries),
			Entries: entries,
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return &Response{
		Month: month.Format(domain.MonthFormat),
		Days:  days,
		Total: total,
	}
}
