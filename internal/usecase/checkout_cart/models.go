package checkout_cart

import (
	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
)

// Request datos del checkout: el usuario y sus datos de contacto. Las
// líneas salen del carrito guardado, no del cuerpo del request.
type Request struct {
	UserID int64 `json:"-"`

	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`

	PaymentMethod string `json:"paymentMethod"`
}

// CreatedOrder una reserva generada a partir de una línea del carrito
type CreatedOrder struct {
	OrderID             int64    `json:"orderId"`
	TourID              int64    `json:"tourId"`
	TourTitle           string   `json:"tourTitle"`
	StartDate           *string  `json:"startDate,omitempty"`
	People              int      `json:"people"`
	TotalPrice          *float64 `json:"totalPrice,omitempty"`
	TotalPriceFormatted string   `json:"totalPriceFormatted"`
}

// Response resultado del checkout
type Response struct {
	Orders              []*CreatedOrder `json:"orders"`
	TotalPrice          float64         `json:"totalPrice"`
	TotalPriceFormatted string          `json:"totalPriceFormatted"`
}

// FromDomainOrders convierte las reservas creadas en la respuesta
func FromDomainOrders(orders []*domain.Order) *Response {
	created := make([]*CreatedOrder, 0, len(orders))
	total := 0.0

	for _, order := range orders {
		entry := &CreatedOrder{
			OrderID:             order.ID,
			TourID:              order.Tour.TourID,
			TourTitle:           order.Tour.Title,
			People:              order.People,
			TotalPrice:          order.TotalPrice,
			TotalPriceFormatted: money.Format(order.TotalPrice),
		}

		if order.StartDate != nil {
			date := order.StartDate.Format(domain.DateFormat)
			entry.StartDate = &date
		}

		total += money.Safe(order.TotalPrice)
		created = append(created, entry)
	}

	return &Response{
		Orders:              created,
		TotalPrice:          total,
		TotalPriceFormatted: money.FormatValue(total),
	}
}
