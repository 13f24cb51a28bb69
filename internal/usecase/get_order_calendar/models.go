package get_order_calendar

// Request parámetros del calendario mensual
type Request struct {
	Month string // "2025-03"
}

// CalendarEntry una reserva dentro de un día del calendario
type CalendarEntry struct {
	OrderID             int64  `json:"orderId"`
	CustomerName        string `json:"customerName"`
	TourTitle           string `json:"tourTitle"`
	People              int    `json:"people"`
	Status              string `json:"status"`
	TotalPriceFormatted string `json:"totalPriceFormatted"`
}

// CalendarDay un día del mes con sus reservas
type CalendarDay struct {
	Date    string           `json:"date"` // "2025-03-15"
	Count   int              `json:"count"`
	Entries []*CalendarEntry `json:"entries"`
}

// Response el calendario del mes pedido. Días sin reservas no aparecen.
type Response struct {
	Month string         `json:"month"`
	Days  []*CalendarDay `json:"days"`
	Total int            `json:"total"`
}
