package models

import (
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	"github.com/illapa-dev/TourOperatorService/pkg/money"
)

// Modelos de request

// AddItemRequest cuerpo para añadir una línea al carrito
type AddItemRequest struct {
	TourID    int64   `json:"tourId"`
	StartDate *string `json:"startDate,omitempty"` // "2025-10-15"
	People    int     `json:"people"`
	Notes     *string `json:"notes,omitempty"`
	Lang      string  `json:"-"`
}

// UpdateItemRequest cuerpo para modificar una línea del carrito.
// Los campos nulos conservan el valor actual.
type UpdateItemRequest struct {
	StartDate *string `json:"startDate,omitempty"`
	People    *int    `json:"people,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Modelos de response

// CartItemResponse una línea del carrito
type CartItemResponse struct {
	ID             string               `json:"id"`
	Tour           TourSnapshotResponse `json:"tour"`
	StartDate      *string              `json:"startDate,omitempty"`
	People         int                  `json:"people"`
	PricePerPerson float64              `json:"pricePerPerson"`
	Total          float64              `json:"total"`
	TotalFormatted string               `json:"totalFormatted"`
	Notes          *string              `json:"notes,omitempty"`
}

// TourSnapshotResponse datos del tour congelados en la línea
type TourSnapshotResponse struct {
	TourID   int64   `json:"tourId"`
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
	Region   string  `json:"region"`
	Duration string  `json:"duration"`
}

// CartResponse el carrito completo de un usuario
type CartResponse struct {
	UserID              int64               `json:"userId"`
	Items               []*CartItemResponse `json:"items"`
	TotalPrice          float64             `json:"totalPrice"`
	TotalPriceFormatted string              `json:"totalPriceFormatted"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// FromDomainCart convierte un carrito de dominio en la respuesta
func FromDomainCart(cart *domain.Cart) *CartResponse {
	items := make([]*CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, fromDomainCartItem(&cart.Items[i]))
	}

	return &CartResponse{
		UserID:              cart.UserID,
		Items:               items,
		TotalPrice:          cart.TotalPrice,
		TotalPriceFormatted: money.FormatValue(cart.TotalPrice),
		UpdatedAt:           cart.UpdatedAt,
	}
}

func fromDomainCartItem(item *domain.CartItem) *CartItemResponse {
	resp := &CartItemResponse{
		ID: item.ID,
		Tour: TourSnapshotResponse{
			TourID:   item.Tour.TourID,
			Title:    item.Tour.Title,
			ImageURL: item.Tour.ImageURL,
			Price:    item.Tour.Price,
			Region:   item.Tour.Region,
			Duration: item.Tour.Duration,
		},
		People:         item.People,
		PricePerPerson: item.PricePerPerson,
		Total:          item.Total,
		TotalFormatted: money.FormatValue(item.Total),
		Notes:          item.Notes,
	}

	if item.StartDate != nil {
		date := item.StartDate.Format(domain.DateFormat)
		resp.StartDate = &date
	}

	return resp
}
