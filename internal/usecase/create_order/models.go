package create_order

import (
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
)

// Request datos para crear una reserva
type Request struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`

	TourID    int64   `json:"tourId"`
	StartDate *string `json:"startDate,omitempty"` // "2025-10-15"
	People    int     `json:"people"`

	PaymentMethod string  `json:"paymentMethod"`
	Notes         *string `json:"notes,omitempty"`
	DiscountCode  *string `json:"discountCode,omitempty"`

	// Lang resuelve el idioma del snapshot del tour congelado en la reserva
	Lang string `json:"-"`
}

// Response datos de la reserva creada
type Response struct {
	ID int64 `json:"id"`

	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`

	TourID    int64   `json:"tourId"`
	TourTitle string  `json:"tourTitle"`
	StartDate *string `json:"startDate,omitempty"`
	People    int     `json:"people"`

	TotalPrice          *float64 `json:"totalPrice,omitempty"`
	TotalPriceFormatted string   `json:"totalPriceFormatted"`
	Status              string   `json:"status"`

	PaymentMethod string  `json:"paymentMethod"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainOrder convierte la reserva de dominio en la respuesta
func FromDomainOrder(order *domain.Order) *Response {
	resp := &Response{
		ID:                  order.ID,
		FullName:            order.Customer.FullName,
		Email:               order.Customer.Email,
		Phone:               order.Customer.Phone,
		Nationality:         order.Customer.Nationality,
		TourID:              order.Tour.TourID,
		TourTitle:           order.Tour.Title,
		People:              order.People,
		TotalPrice:          order.TotalPrice,
		TotalPriceFormatted: money.Format(order.TotalPrice),
		Status:              string(order.Status),
		PaymentMethod:       order.PaymentMethod,
		Notes:               order.Notes,
		CreatedAt:           order.CreatedAt,
	}

	if order.StartDate != nil {
		date := order.StartDate.Format(domain.DateFormat)
		resp.StartDate = &date
	}

	return resp
}
