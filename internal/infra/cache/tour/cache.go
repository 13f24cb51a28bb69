package tour

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

func topToursKey(lang string) string {
	return fmt.Sprintf("tours:top:%s", lang)
}

// Cache cachea la lista de tours destacados en Redis, con una clave
// por idioma. Un fallo de Redis nunca es fatal: el servicio degrada
// a la consulta directa a la BD.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache crea una nueva instancia del caché de tours destacados
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get obtiene la lista cacheada para el idioma dado. El segundo valor
// indica si hubo acierto de caché.
func (c *Cache) Get(ctx context.Context, lang string) ([]*domain.Tour, bool) {
	data, err := c.client.Get(ctx, topToursKey(lang)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}

	var tours []*domain.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, false
	}

	return tours, true
}

// Set guarda la lista para el idioma dado con el TTL configurado
func (c *Cache) Set(ctx context.Context, lang string, tours []*domain.Tour) error {
	data, err := json.Marshal(tours)
	if err != nil {
		return fmt.Errorf("tour.cache: Set - marshal tours: %v", err)
	}

	if err := c.client.Set(ctx, topToursKey(lang), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("tour.cache: Set - %v", err)
	}

	return nil
}

// Invalidate elimina las entradas cacheadas de todos los idiomas.
// Se llama al crear, actualizar o eliminar un tour.
func (c *Cache) Invalidate(ctx context.Context) error {
	keys := []string{
		topToursKey(domain.LangSpanish),
		topToursKey(domain.LangEnglish),
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("tour.cache: Invalidate - %v", err)
	}

	return nil
}
