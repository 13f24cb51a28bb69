package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// TTL del documento del carrito. Un carrito sin actividad durante
// 30 días se considera abandonado.
const cartTTL = 30 * 24 * time.Hour

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Store guarda los carritos como documentos JSON en Redis,
// un documento por usuario.
type Store struct {
	client *redis.Client
}

// NewStore crea una nueva instancia del almacén de carritos
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get obtiene el carrito del usuario. Si no existe, devuelve un
// carrito vacío.
func (s *Store) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrRedis, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrUnmarshal, err)
	}

	return &cart, nil
}

// Save guarda el carrito del usuario, reemplazando el documento completo
func (s *Store) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%w: Save - %v", ErrMarshal, err)
	}

	if err := s.client.Set(ctx, cartKey(cart.UserID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrRedis, err)
	}

	return nil
}

// Delete elimina el carrito del usuario
func (s *Store) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrRedis, err)
	}

	return nil
}
