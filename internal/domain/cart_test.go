package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRecalculate(t *testing.T) {
	cart := NewCart(7)
	cart.Items = []CartItem{
		{ID: "a", PricePerPerson: 250, People: 2, Total: 999}, // total almacenado corrupto
		{ID: "b", PricePerPerson: 100.5, People: 3},
	}

	cart.Recalculate()

	assert.Equal(t, 500.0, cart.Items[0].Total)
	assert.Equal(t, 301.5, cart.Items[1].Total)
	assert.Equal(t, 801.5, cart.TotalPrice)

	// Invariante: el total del carrito siempre es la suma de las líneas
	sum := 0.0
	for _, item := range cart.Items {
		assert.Equal(t, item.PricePerPerson*float64(item.People), item.Total)
		sum += item.Total
	}
	assert.Equal(t, sum, cart.TotalPrice)
}

func TestCartRecalculateEmpty(t *testing.T) {
	cart := NewCart(1)
	cart.TotalPrice = 123 // valor residual

	cart.Recalculate()

	assert.Equal(t, 0.0, cart.TotalPrice)
	assert.True(t, cart.IsEmpty())
}

func TestCartFindItem(t *testing.T) {
	cart := NewCart(1)
	cart.Items = []CartItem{{ID: "a", People: 2}, {ID: "b", People: 4}}

	item := cart.FindItem("b")
	require.NotNil(t, item)
	assert.Equal(t, 4, item.People)

	// El puntero devuelto apunta a la línea real del carrito
	item.People = 5
	assert.Equal(t, 5, cart.Items[1].People)

	assert.Nil(t, cart.FindItem("missing"))
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart(1)
	cart.Items = []CartItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.True(t, cart.RemoveItem("b"))
	require.Len(t, cart.Items, 2)
	// Conserva el orden de las líneas restantes
	assert.Equal(t, "a", cart.Items[0].ID)
	assert.Equal(t, "c", cart.Items[1].ID)

	assert.False(t, cart.RemoveItem("b"))
	assert.Len(t, cart.Items, 2)
}

func TestNewCart(t *testing.T) {
	cart := NewCart(42)

	assert.Equal(t, int64(42), cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.True(t, cart.IsEmpty())
}
