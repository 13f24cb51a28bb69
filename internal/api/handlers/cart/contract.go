package cart

import (
	"context"

	cartsModels "github.com/illapa-dev/TourOperatorService/internal/service/carts/models"
	checkoutCart "github.com/illapa-dev/TourOperatorService/internal/usecase/checkout_cart"
)

// CartsService interfaz del servicio de carritos
type CartsService interface {
	Get(ctx context.Context, userID int64) (*cartsModels.CartResponse, error)
	AddItem(ctx context.Context, userID int64, req *cartsModels.AddItemRequest) (*cartsModels.CartResponse, error)
	UpdateItem(ctx context.Context, userID int64, itemID string, req *cartsModels.UpdateItemRequest) (*cartsModels.CartResponse, error)
	RemoveItem(ctx context.Context, userID int64, itemID string) (*cartsModels.CartResponse, error)
	Clear(ctx context.Context, userID int64) error
}

// CheckoutUseCase interfaz del use case de checkout
type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkoutCart.Request) (*checkoutCart.Response, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
