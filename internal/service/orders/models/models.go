package models

import (
	"errors"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
)

var (
	// ErrInvalidStatus se devuelve con un estado de reserva desconocido
	ErrInvalidStatus = errors.New("invalid order status")
)

// Modelos de request

// CustomerPayload datos de contacto del cliente
type CustomerPayload struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}

// UpdateOrderRequest cuerpo de actualización de una reserva. La fecha
// llega como "YYYY-MM-DD"; una cadena vacía limpia la fecha.
type UpdateOrderRequest struct {
	Customer         CustomerPayload `json:"customer"`
	StartDate        *string         `json:"startDate,omitempty"`
	People           int             `json:"people"`
	PaymentMethod    string          `json:"paymentMethod"`
	Notes            *string         `json:"notes,omitempty"`
	DiscountCodeUsed *string         `json:"discountCodeUsed,omitempty"`
}

// UpdateStatusRequest cuerpo de cambio de estado
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListOrdersRequest parámetros del listado paginado
type ListOrdersRequest struct {
	Search *string
	Status *string
	Page   int64
	Limit  int64
}

// ToDomainFilter convierte el request en un filtro de dominio
func (r *ListOrdersRequest) ToDomainFilter() (domain.OrdersFilter, error) {
	filter := domain.OrdersFilter{
		Search: r.Search,
		Page:   r.Page,
		Limit:  r.Limit,
	}

	if r.Status != nil && *r.Status != "" {
		status := domain.OrderStatus(*r.Status)
		if !domain.IsValidStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Modelos de response

// TourSnapshotResponse datos del tour congelados en la reserva
type TourSnapshotResponse struct {
	TourID   int64   `json:"tourId"`
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
	Region   string  `json:"region"`
	Duration string  `json:"duration"`
}

// OrderResponse respuesta con los datos de una reserva
type OrderResponse struct {
	ID       int64                `json:"id"`
	Customer CustomerPayload      `json:"customer"`
	Tour     TourSnapshotResponse `json:"tour"`

	StartDate *string `json:"startDate,omitempty"` // "2025-10-15"

	People              int      `json:"people"`
	TotalPrice          *float64 `json:"totalPrice,omitempty"`
	TotalPriceFormatted string   `json:"totalPriceFormatted"`
	Status              string   `json:"status"`

	PaymentMethod    string  `json:"paymentMethod"`
	Notes            *string `json:"notes,omitempty"`
	DiscountCodeUsed *string `json:"discountCodeUsed,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta metadatos de paginación
type Meta struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// OrderListResponse listado paginado de reservas
type OrderListResponse struct {
	Data []*OrderResponse `json:"data"`
	Meta Meta             `json:"meta"`
}

// StatsResponse agregados del dashboard. Los contadores y la facturación
// se calculan sobre la página listada, no sobre toda la tabla.
type StatsResponse struct {
	ConfirmedOrders       int     `json:"confirmedOrders"`
	CreatedOrders         int     `json:"createdOrders"`
	CompletedOrders       int     `json:"completedOrders"`
	CancelledOrders       int     `json:"cancelledOrders"`
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalRevenueFormatted string  `json:"totalRevenueFormatted"`
}

// FromDomainOrder convierte una reserva de dominio en la respuesta
func FromDomainOrder(order *domain.Order) *OrderResponse {
	resp := &OrderResponse{
		ID: order.ID,
		Customer: CustomerPayload{
			FullName:    order.Customer.FullName,
			Email:       order.Customer.Email,
			Phone:       order.Customer.Phone,
			Nationality: order.Customer.Nationality,
		},
		Tour: TourSnapshotResponse{
			TourID:   order.Tour.TourID,
			Title:    order.Tour.Title,
			ImageURL: order.Tour.ImageURL,
			Price:    order.Tour.Price,
			Region:   order.Tour.Region,
			Duration: order.Tour.Duration,
		},
		People:              order.People,
		TotalPrice:          order.TotalPrice,
		TotalPriceFormatted: money.Format(order.TotalPrice),
		Status:              string(order.Status),
		PaymentMethod:       order.PaymentMethod,
		Notes:               order.Notes,
		DiscountCodeUsed:    order.DiscountCodeUsed,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}

	if order.StartDate != nil {
		date := order.StartDate.Format(domain.DateFormat)
		resp.StartDate = &date
	}

	return resp
}

// FromDomainOrderList convierte un slice de reservas en respuestas
func FromDomainOrderList(orders []*domain.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}

// FromDomainStats convierte los agregados de dominio en la respuesta
func FromDomainStats(stats domain.DashboardStats) *StatsResponse {
	return &StatsResponse{
		ConfirmedOrders:       stats.ConfirmedOrders,
		CreatedOrders:         stats.CreatedOrders,
		CompletedOrders:       stats.CompletedOrders,
		CancelledOrders:       stats.CancelledOrders,
		TotalRevenue:          stats.TotalRevenue,
		TotalRevenueFormatted: money.FormatValue(stats.TotalRevenue),
	}
}

// NewMeta construye los metadatos de paginación
func NewMeta(page, limit, total int64) Meta {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
